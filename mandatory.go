package osmcqi

import "strings"

var sidepathTagValues = []string{"lane", "share_busway"}

// resolveMandatoryUse derives the legal-use status: whether an existing
// sidepath must be used, may be used, or cycling is prohibited entirely.
func resolveMandatoryUse(seg *Segment, wayType WayType, procOneway string, params *Params) string {
	mandatory := ""
	bicycle := seg.tag("bicycle")

	if wayType.isAccessRestrictable() {
		cycleway := seg.tag("cycleway")
		cyclewayBoth := seg.tag("cycleway:both")
		cyclewayRight := seg.tag("cycleway:right")
		onewayish := strings.Contains(procOneway, "yes")

		// cycle lanes next to the carriageway make the center line "use
		// sidepath", tracks make it optional
		if valueIn(cycleway, sidepathTagValues) || valueIn(cyclewayBoth, sidepathTagValues) ||
			(onewayish && valueIn(cyclewayRight, sidepathTagValues)) {
			mandatory = "use_sidepath"
		} else if cycleway == "track" || cyclewayBoth == "track" || (onewayish && cyclewayRight == "track") {
			mandatory = "optional_sidepath"
		}
		if bicycle == "use_sidepath" || bicycle == "optional_sidepath" {
			mandatory = bicycle
		}
	} else if seg.ProcSidepath == "yes" {
		// derive mandatory use from traffic signs; tokens are scanned in
		// tag order and the last match wins
		for _, sign := range splitDelimited(seg.tag("traffic_sign")) {
			for _, token := range params.NotMandatoryTrafficSigns {
				if strings.Contains(sign, token) {
					mandatory = "no"
				}
			}
			for _, token := range params.MandatoryTrafficSigns {
				if strings.Contains(sign, token) {
					mandatory = "yes"
				}
			}
		}
	}

	if valueIn(seg.tag("highway"), params.CyclingProhibitionHighways) || bicycle == "no" {
		mandatory = "prohibited"
	}
	return mandatory
}

// usabilityFilters derives the coarse filter attributes for downstream
// consumers.
func usabilityFilters(wayType WayType, mandatory string) (int, string) {
	usable := 1
	if mandatory == "prohibited" || mandatory == "use_sidepath" {
		usable = 0
	}

	filterWayType := ""
	switch wayType {
	case WAY_CYCLE_PATH, WAY_CYCLE_TRACK, WAY_SHARED_PATH, WAY_SEGREGATED_PATH, WAY_SHARED_FOOTWAY, WAY_CYCLE_LANE_PROTECTED:
		filterWayType = "separated"
	case WAY_CYCLE_LANE_ADVISORY, WAY_CYCLE_LANE_EXCLUSIVE, WAY_CYCLE_LANE_CENTRAL, WAY_LINK, WAY_CROSSING:
		filterWayType = "cycle lanes"
	case WAY_BICYCLE_ROAD:
		filterWayType = "bicycle road"
	case WAY_SHARED_ROAD, WAY_SHARED_TRAFFIC_LANE, WAY_SHARED_BUS_LANE, WAY_TRACK_OR_SERVICE:
		filterWayType = "shared traffic"
	}
	return usable, filterWayType
}
