package osmcqi

var onewayValues = []string{"yes", "no", "-1", "alternating", "reversible"}

func isCyclewayLikeType(wayType WayType) bool {
	switch wayType {
	case WAY_CYCLE_PATH, WAY_CYCLE_TRACK, WAY_SHARED_PATH, WAY_SEGREGATED_PATH, WAY_SHARED_FOOTWAY, WAY_CROSSING, WAY_LINK:
		return true
	}
	return wayType.isCycleLane()
}

// resolveOneway derives the effective oneway status for cycling. For shared
// ways a "_motor_vehicles" suffix marks a oneway restriction that does not
// apply to bicycles.
func resolveOneway(seg *Segment, wayType WayType, params *Params) string {
	oneway := seg.tag("oneway")
	onewayBicycle := seg.tag("oneway:bicycle")

	procOneway := ""
	switch {
	case isCyclewayLikeType(wayType):
		procOneway = cyclewayOneway(seg, wayType, oneway, onewayBicycle, params)
	case wayType == WAY_SHARED_BUS_LANE:
		procOneway = "yes"
	case wayType.isAccessRestrictable():
		procOneway = sharedRoadOneway(oneway, onewayBicycle)
	}
	if procOneway == "" {
		procOneway = "unknown"
	}
	return procOneway
}

func cyclewayOneway(seg *Segment, wayType WayType, oneway, onewayBicycle string, params *Params) string {
	if valueIn(oneway, onewayValues) {
		return oneway
	}
	if cyclewayOneway := seg.tag("cycleway:oneway"); valueIn(cyclewayOneway, onewayValues) {
		return cyclewayOneway
	}
	switch wayType {
	case WAY_CYCLE_TRACK, WAY_SHARED_PATH, WAY_SHARED_FOOTWAY:
		if seg.Side != "" {
			return params.DefaultOnewayCycleTrack
		}
	}
	if wayType.isCycleLane() {
		return params.DefaultOnewayCycleLane
	}
	if valueIn(onewayBicycle, onewayValues) {
		return onewayBicycle
	}
	return "no"
}

func sharedRoadOneway(oneway, onewayBicycle string) string {
	if onewayBicycle == "" || oneway == onewayBicycle {
		if valueIn(oneway, onewayValues) {
			return oneway
		}
		return "no"
	}
	if onewayBicycle == "no" {
		if valueIn(oneway, onewayValues) {
			return oneway + "_motor_vehicles"
		}
		return "no"
	}
	return "yes"
}
