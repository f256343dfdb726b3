package osmcqi

import "strings"

// WayType describes how cycling traffic relates to a segment. Exactly one
// per surviving segment, assigned once.
type WayType uint16

const (
	WAY_BICYCLE_ROAD = WayType(iota + 1)
	WAY_LINK
	WAY_CROSSING
	WAY_SHARED_FOOTWAY
	WAY_SEGREGATED_PATH
	WAY_SHARED_PATH
	WAY_CYCLE_PATH
	WAY_CYCLE_TRACK
	WAY_CYCLE_LANE_ADVISORY
	WAY_CYCLE_LANE_EXCLUSIVE
	WAY_CYCLE_LANE_PROTECTED
	WAY_CYCLE_LANE_CENTRAL
	WAY_TRACK_OR_SERVICE
	WAY_SHARED_TRAFFIC_LANE
	WAY_SHARED_ROAD
	WAY_SHARED_BUS_LANE
)

func (iotaIdx WayType) String() string {
	return [...]string{"bicycle road", "link", "crossing", "shared footway", "segregated path", "shared path", "cycle path", "cycle track", "cycle lane (advisory)", "cycle lane (exclusive)", "cycle lane (protected)", "cycle lane (central)", "track or service", "shared traffic lane", "shared road", "shared bus lane"}[iotaIdx-1]
}

// isCycleLane covers the four cycle lane variants.
func (wayType WayType) isCycleLane() bool {
	switch wayType {
	case WAY_CYCLE_LANE_ADVISORY, WAY_CYCLE_LANE_EXCLUSIVE, WAY_CYCLE_LANE_PROTECTED, WAY_CYCLE_LANE_CENTRAL:
		return true
	}
	return false
}

// isSharedWithTraffic covers ways where cycling mixes with other traffic on
// the carriageway.
func (wayType WayType) isSharedWithTraffic() bool {
	switch wayType {
	case WAY_BICYCLE_ROAD, WAY_SHARED_ROAD, WAY_SHARED_TRAFFIC_LANE, WAY_SHARED_BUS_LANE, WAY_TRACK_OR_SERVICE:
		return true
	}
	return false
}

// isAccessRestrictable covers shared ways whose base index may be
// overridden by a motor vehicle access restriction.
func (wayType WayType) isAccessRestrictable() bool {
	switch wayType {
	case WAY_BICYCLE_ROAD, WAY_SHARED_ROAD, WAY_SHARED_TRAFFIC_LANE, WAY_TRACK_OR_SERVICE:
		return true
	}
	return false
}

var (
	allowedBicycleAccess  = []string{"yes", "permissive", "designated", "use_sidepath", "optional_sidepath", "discouraged"}
	linkAttributeKeys     = []string{"footway", "cycleway", "path", "bridleway"}
	sharedFootwayHighways = []string{"footway", "pedestrian", "bridleway", "steps"}
	footAccessValues      = []string{"yes", "designated", "permissive"}

	cyclewayFamilyKeys           = []string{"cycleway", "cycleway:both", "cycleway:left", "cycleway:right"}
	cyclewayLaneKindKeys         = []string{"cycleway:lane", "cycleway:both:lane", "cycleway:left:lane", "cycleway:right:lane"}
	cyclewayFootKeys             = []string{"cycleway:foot", "cycleway:both:foot", "cycleway:left:foot", "cycleway:right:foot"}
	cyclewaySegregatedKeys       = []string{"cycleway:segregated", "cycleway:both:segregated", "cycleway:left:segregated", "cycleway:right:segregated"}
	sidewalkBicycleKeys          = []string{"sidewalk:bicycle", "sidewalk:both:bicycle", "sidewalk:left:bicycle", "sidewalk:right:bicycle"}
	laneMarkingsHighwaysAll      = []string{"motorway", "trunk", "primary", "secondary"}
	laneMarkingsHighwaysSidepath = []string{"primary", "secondary"}
)

// separationIndicatesTrack: kerbs and tree rows separate a track, anything
// else substantial makes a protected lane.
func separationIndicatesTrack(separation string) bool {
	return strings.Contains(separation, "kerb") || strings.Contains(separation, "tree_row")
}

func nonTrivialSeparation(separation string) bool {
	return separation != "" && separation != "no" && separation != "none"
}

// classifyWayType assigns a way type, or reports that the segment is to be
// dropped (second return false). The cascade order is a contract: first
// match wins.
func classifyWayType(seg *Segment, params *Params) (WayType, bool) {
	// deletion rules
	if access := seg.access("bicycle"); access != "" && !valueIn(access, allowedBicycleAccess) {
		return 0, false
	}
	highway := seg.tag("highway")
	if highway == "path" && seg.tag("informal") == "yes" && seg.tag("bicycle") == "" {
		return 0, false
	}

	bicycle := seg.tag("bicycle")
	foot := seg.tag("foot")
	isSidepath := seg.tag("is_sidepath")

	if seg.tag("bicycle_road") == "yes" && seg.Side == "" {
		return WAY_BICYCLE_ROAD, true
	}
	if seg.anyTagEquals("link", linkAttributeKeys...) {
		return WAY_LINK, true
	}
	if seg.anyTagEquals("crossing", linkAttributeKeys...) {
		return WAY_CROSSING, true
	}

	if valueIn(highway, sharedFootwayHighways) {
		if valueIn(bicycle, footAccessValues) {
			return WAY_SHARED_FOOTWAY, true
		}
		// no implied bicycle access on foot infrastructure
		return 0, false
	}

	if highway == "path" {
		if foot == "designated" && bicycle != "designated" {
			return WAY_SHARED_FOOTWAY, true
		}
		if seg.tag("segregated") == "yes" {
			return WAY_SEGREGATED_PATH, true
		}
		return WAY_SHARED_PATH, true
	}

	if highway == "cycleway" {
		if valueIn(foot, footAccessValues) {
			return WAY_SHARED_PATH, true
		}
		if seg.separationFor(params, "foot") == "no" {
			return WAY_SEGREGATED_PATH, true
		}
		if isSidepath != "yes" && isSidepath != "no" {
			if seg.ProcSidepath == "yes" {
				return WAY_CYCLE_TRACK, true
			}
			return WAY_CYCLE_PATH, true
		}
		if isSidepath == "yes" {
			if motorSeparation := seg.separationFor(params, "motor_vehicle"); nonTrivialSeparation(motorSeparation) {
				if separationIndicatesTrack(motorSeparation) {
					return WAY_CYCLE_TRACK, true
				}
				return WAY_CYCLE_LANE_PROTECTED, true
			}
			return WAY_CYCLE_TRACK, true
		}
		return WAY_CYCLE_PATH, true
	}

	if highway == "service" || highway == "track" {
		return WAY_TRACK_OR_SERVICE, true
	}

	if seg.Side == "" {
		// centerline geometry
		if seg.tag("lane_markings") == "yes" || valueIn(highway, laneMarkingsHighwaysAll) {
			return WAY_SHARED_TRAFFIC_LANE, true
		}
		return WAY_SHARED_ROAD, true
	}

	// offset sub-geometry
	if seg.OffsetType == "sidewalk" {
		return WAY_SHARED_FOOTWAY, true
	}

	if seg.anyTagEquals("lane", cyclewayFamilyKeys...) {
		if strings.Contains(seg.tag("cycleway:lanes"), "no|lane|no") {
			return WAY_CYCLE_LANE_CENTRAL, true
		}
		if nonTrivialSeparation(seg.separationFor(params, "motor_vehicle")) {
			return WAY_CYCLE_LANE_PROTECTED, true
		}
		if seg.anyTagEquals("exclusive", cyclewayLaneKindKeys...) {
			return WAY_CYCLE_LANE_EXCLUSIVE, true
		}
		return WAY_CYCLE_LANE_ADVISORY, true
	}

	if seg.anyTagEquals("track", cyclewayFamilyKeys...) {
		if seg.anyTagIn(footAccessValues, cyclewayFootKeys...) {
			return WAY_SHARED_PATH, true
		}
		if seg.anyTagEquals("yes", cyclewaySegregatedKeys...) {
			return WAY_SEGREGATED_PATH, true
		}
		if seg.anyTagEquals("no", cyclewaySegregatedKeys...) {
			return WAY_SHARED_PATH, true
		}
		if seg.separationFor(params, "foot") == "no" {
			return WAY_SEGREGATED_PATH, true
		}
		if motorSeparation := seg.separationFor(params, "motor_vehicle"); nonTrivialSeparation(motorSeparation) {
			if separationIndicatesTrack(motorSeparation) {
				return WAY_CYCLE_TRACK, true
			}
			return WAY_CYCLE_LANE_PROTECTED, true
		}
		return WAY_CYCLE_TRACK, true
	}

	if seg.anyTagEquals("share_busway", cyclewayFamilyKeys...) {
		return WAY_SHARED_BUS_LANE, true
	}
	if seg.anyTagEquals("yes", sidewalkBicycleKeys...) {
		return WAY_SHARED_FOOTWAY, true
	}

	if seg.tag("lane_markings") == "yes" || valueIn(highway, laneMarkingsHighwaysSidepath) {
		return WAY_SHARED_TRAFFIC_LANE, true
	}
	return WAY_SHARED_ROAD, true
}
