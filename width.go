package osmcqi

import (
	"math"
	"strings"
)

// resolveWidth derives the effective width in meters for the given way
// type. The second return value is false when no width could be resolved at
// all. Missing markers report defaulted inputs.
func resolveWidth(seg *Segment, wayType WayType, procOneway string, params *Params) (float64, bool, []string) {
	var missing []string

	if isCyclewayLikeType(wayType) && wayType != WAY_SEGREGATED_PATH {
		// width for cycle lanes and sidewalk geometries has already been
		// derived from the original tags by the offset stage
		if width, ok := seg.tagNumber("cycleway:width"); ok {
			return width, true, missing
		}
		if width, ok := seg.tagNumber("width"); ok {
			return width, true, missing
		}
		width := defaultWidthForWayType(wayType, params)
		if procOneway == "no" {
			width *= 1.6
		}
		missing = append(missing, "width")
		return width, true, missing
	}

	if wayType == WAY_SEGREGATED_PATH {
		return segregatedPathWidth(seg, procOneway, params)
	}

	if wayType.isSharedWithTraffic() {
		return sharedRoadWidth(seg, wayType, procOneway, params)
	}

	return 0, false, missing
}

func defaultWidthForWayType(wayType WayType, params *Params) float64 {
	switch wayType {
	case WAY_CYCLE_PATH, WAY_SHARED_PATH, WAY_CYCLE_LANE_PROTECTED:
		return params.DefaultHighwayWidth["path"]
	case WAY_SHARED_FOOTWAY:
		return params.DefaultHighwayWidth["footway"]
	}
	return params.DefaultHighwayWidth["cycleway"]
}

func segregatedPathWidth(seg *Segment, procOneway string, params *Params) (float64, bool, []string) {
	var missing []string
	var width float64
	var ok bool

	if seg.tag("highway") == "path" {
		if width, ok = seg.tagNumber("cycleway:width"); ok {
			return width, true, missing
		}
		// half the path width is assumed for cycling unless the foot part
		// is tagged explicitly
		width, ok = footwayRemainderWidth(seg)
		missing = append(missing, "width")
	} else {
		width, ok = seg.tagNumber("width")
	}

	if !ok {
		width = params.DefaultHighwayWidth["path"]
		if procOneway == "no" {
			width *= 1.6
		}
		missing = append(missing, "width")
	}
	return width, true, missing
}

func footwayRemainderWidth(seg *Segment) (float64, bool) {
	width, ok := seg.tagNumber("width")
	if !ok {
		return 0, false
	}
	if footwayWidth, ok := seg.tagNumber("footway:width"); ok {
		return width - footwayWidth, true
	}
	return width / 2, true
}

func sharedRoadWidth(seg *Segment, wayType WayType, procOneway string, params *Params) (float64, bool, []string) {
	var missing []string
	var procWidth float64
	ok := false

	// on shared traffic or bus lanes, width is based on the lane, not the
	// carriageway
	if wayType == WAY_SHARED_TRAFFIC_LANE || wayType == WAY_SHARED_BUS_LANE {
		widthLanes := seg.tag("width:lanes")
		widthLanesForward := seg.tag("width:lanes:forward")
		widthLanesBackward := seg.tag("width:lanes:backward")
		onewayish := strings.Contains(procOneway, "yes")

		switch {
		case (onewayish || wayType != WAY_SHARED_BUS_LANE) && strings.Contains(widthLanes, "|"):
			// the rightmost lane is assumed to be the relevant one
			procWidth, ok = parseNumber(widthLanes[strings.LastIndex(widthLanes, "|")+1:])
		case wayType == WAY_SHARED_BUS_LANE && !onewayish && seg.Side == "right" && strings.Contains(widthLanesForward, "|"):
			procWidth, ok = parseNumber(widthLanesForward[strings.LastIndex(widthLanesForward, "|")+1:])
		case wayType == WAY_SHARED_BUS_LANE && !onewayish && seg.Side == "left" && strings.Contains(widthLanesBackward, "|"):
			procWidth, ok = parseNumber(widthLanesBackward[strings.LastIndex(widthLanesBackward, "|")+1:])
		default:
			if wayType == WAY_SHARED_BUS_LANE {
				procWidth, ok = params.DefaultWidthBusLane, true
			} else {
				procWidth, ok = params.DefaultWidthTrafficLane, true
				missing = append(missing, "width:lanes")
			}
		}
	}
	if ok {
		return procWidth, true, missing
	}

	// effective width (usable width for flowing traffic) can be mapped
	// explicitly
	if procWidth, ok = seg.tagNumber("width:effective"); ok {
		return procWidth, true, missing
	}

	// lane count times a default lane width as a further fallback
	if _, hasWidth := seg.tagNumber("width"); !hasWidth {
		if lanes, hasLanes := seg.tagNumber("lanes"); hasLanes {
			return lanes * params.DefaultWidthTrafficLane, true, missing
		}
	}

	// derive the effective width from the carriageway width minus parking
	// lanes, cycle lanes and buffers
	parkingLeft, parkingRight := parkingStatus(seg)
	parkingLeftWidth, parkingRightWidth := parkingWidths(seg, params)
	lanes := resolveCyclewayLanes(seg, params)

	width, hasWidth := seg.tagNumber("width")
	if !hasWidth {
		width = assureDefaultWidth(seg, procOneway, params)
		missing = append(missing, "width")
	}

	bufferSum := 0.0
	if lanes.rightKind == "lane" {
		left, right := pickLaneBuffers(seg, "right")
		bufferSum += numberOrZero(left) + numberOrZero(right)
	}
	if lanes.leftKind == "lane" {
		left, right := pickLaneBuffers(seg, "left")
		bufferSum += numberOrZero(left) + numberOrZero(right)
	}

	procWidth = width - lanes.rightWidth - lanes.leftWidth - bufferSum

	if parkingLeft != "" || parkingRight != "" {
		procWidth -= parkingLeftWidth + parkingRightWidth
	} else if wayType == WAY_SHARED_ROAD {
		// without parking information, cap the usable width
		if !strings.Contains(procOneway, "yes") {
			procWidth = math.Min(procWidth, 5.5)
		} else {
			procWidth = math.Min(procWidth, 4)
		}
	}

	if procWidth < params.DefaultWidthTrafficLane && valueIn("width", missing) {
		procWidth = params.DefaultWidthTrafficLane
	}
	if procWidth == 0 {
		return 0, false, missing
	}
	return procWidth, true, missing
}

func parkingStatus(seg *Segment) (string, string) {
	return splitBothValue(seg.tag("parking:both"), seg.tag("parking:left"), seg.tag("parking:right"))
}

func parkingWidths(seg *Segment, params *Params) (float64, float64) {
	left, right := parkingStatus(seg)
	leftOrientation, rightOrientation := splitBothValue(seg.tag("parking:both:orientation"),
		seg.tag("parking:left:orientation"), seg.tag("parking:right:orientation"))
	leftWidthTag, rightWidthTag := splitBothValue(seg.tag("parking:both:width"),
		seg.tag("parking:left:width"), seg.tag("parking:right:width"))

	leftWidth := parkingLaneWidth(left, leftWidthTag, leftOrientation, params)
	rightWidth := parkingLaneWidth(right, rightWidthTag, rightOrientation, params)
	return leftWidth, rightWidth
}

func parkingLaneWidth(parking, widthTag, orientation string, params *Params) float64 {
	width, ok := parseNumber(widthTag)
	if (parking == "lane" || parking == "half_on_kerb") && !ok {
		switch orientation {
		case "diagonal":
			width = params.DefaultWidthParkingDiagonal
		case "perpendicular":
			width = params.DefaultWidthParkingPerpendicular
		default:
			width = params.DefaultWidthParkingParallel
		}
	}
	if parking == "half_on_kerb" {
		width /= 2
	}
	return width
}

type cyclewayLanes struct {
	leftKind   string
	rightKind  string
	leftWidth  float64
	rightWidth float64
}

// resolveCyclewayLanes expands the cycleway tag family into per-side lane
// kinds and widths, substituting the default cycle lane width where a lane
// is present without a width.
func resolveCyclewayLanes(seg *Segment, params *Params) cyclewayLanes {
	plain := seg.tag("cycleway")
	left := seg.tag("cycleway:left")
	right := seg.tag("cycleway:right")
	if plain != "" {
		if right == "" {
			right = plain
		}
		if left == "" {
			left = plain
		}
	}
	left, right = splitBothValue(seg.tag("cycleway:both"), left, right)

	leftWidthTag := seg.tag("cycleway:left:width")
	rightWidthTag := seg.tag("cycleway:right:width")
	if left == "lane" || right == "lane" {
		if plainWidth := seg.tag("cycleway:width"); plainWidth != "" {
			if rightWidthTag == "" {
				rightWidthTag = plainWidth
			}
			if leftWidthTag == "" {
				leftWidthTag = plainWidth
			}
		}
		leftWidthTag, rightWidthTag = splitBothValue(seg.tag("cycleway:both:width"), leftWidthTag, rightWidthTag)
	}

	lanes := cyclewayLanes{leftKind: left, rightKind: right}
	lanes.leftWidth = numberOrZero(leftWidthTag)
	lanes.rightWidth = numberOrZero(rightWidthTag)
	if left == "lane" && lanes.leftWidth == 0 {
		lanes.leftWidth = params.DefaultWidthCycleLane
	}
	if right == "lane" && lanes.rightWidth == 0 {
		lanes.rightWidth = params.DefaultWidthCycleLane
	}
	return lanes
}

// pickLaneBuffers resolves the buffer tags next to the cycle lane on the
// given side, most specific tag first.
func pickLaneBuffers(seg *Segment, side string) (string, string) {
	leftKeys := []string{
		"cycleway:" + side + ":buffer:left", "cycleway:" + side + ":buffer:both", "cycleway:" + side + ":buffer",
		"cycleway:both:buffer:left", "cycleway:both:buffer:both", "cycleway:both:buffer",
		"cycleway:buffer:left", "cycleway:buffer:both", "cycleway:buffer",
	}
	rightKeys := []string{
		"cycleway:" + side + ":buffer:right", "cycleway:" + side + ":buffer:both", "cycleway:" + side + ":buffer",
		"cycleway:both:buffer:right", "cycleway:both:buffer:both", "cycleway:both:buffer",
		"cycleway:buffer:right", "cycleway:buffer:both", "cycleway:buffer",
	}
	return firstNonEmptyTag(seg, leftKeys), firstNonEmptyTag(seg, rightKeys)
}

func firstNonEmptyTag(seg *Segment, keys []string) string {
	for _, key := range keys {
		if value := seg.tag(key); value != "" {
			return value
		}
	}
	return ""
}

func numberOrZero(value string) float64 {
	num, ok := parseNumber(value)
	if !ok {
		return 0
	}
	return num
}

// assureDefaultWidth falls back to an assumed carriageway width per highway
// class, narrowed for oneway roads.
func assureDefaultWidth(seg *Segment, procOneway string, params *Params) float64 {
	width, ok := params.DefaultHighwayWidth[seg.tag("highway")]
	if !ok {
		width = params.DefaultHighwayWidthFallback
	}
	if strings.Contains(procOneway, "yes") {
		width = math.Round(width/1.6*10) / 10
	}
	return width
}
