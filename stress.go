package osmcqi

// classifyStress rates the segment on the Level of Traffic Stress scale
// from 1 (lowest stress) to 4. Way types without a rule produce no rating.
// Branch order and thresholds are a contract; do not reorder.
func classifyStress(seg *Segment, attrs *ProcessedAttributes, params *Params) (int, bool) {
	wayType := attrs.WayType
	hasMaxspeed := attrs.HasMaxspeed && attrs.Maxspeed != 0
	maxspeed := attrs.Maxspeed
	hasWidth := attrs.HasWidth && attrs.Width != 0
	width := attrs.Width

	switch wayType {
	case WAY_CYCLE_PATH, WAY_CYCLE_TRACK, WAY_SEGREGATED_PATH, WAY_CYCLE_LANE_PROTECTED:
		return 1, true

	case WAY_SHARED_PATH, WAY_SHARED_FOOTWAY:
		if !valueIn(attrs.Oneway, []string{"yes", "-1"}) && hasWidth && width < 3 && hasMaxspeed && maxspeed > 30 {
			return 3, true
		}
		return 1, true

	case WAY_CYCLE_LANE_ADVISORY, WAY_CYCLE_LANE_CENTRAL, WAY_SHARED_BUS_LANE, WAY_LINK, WAY_CROSSING:
		switch {
		case hasMaxspeed && maxspeed <= 10:
			return 1, true
		case hasMaxspeed && maxspeed <= 30:
			return 2, true
		case hasWidth && width >= 1.5:
			return 3, true
		}
		return 4, true

	case WAY_CYCLE_LANE_EXCLUSIVE:
		switch {
		case hasMaxspeed && maxspeed <= 10:
			return 1, true
		case hasMaxspeed && maxspeed <= 50 && hasWidth && width >= 1.85:
			return 2, true
		}
		return 3, true

	case WAY_BICYCLE_ROAD, WAY_SHARED_ROAD, WAY_SHARED_TRAFFIC_LANE:
		if wayType == WAY_BICYCLE_ROAD {
			if _, ok := params.MotorVehicleAccessIndex[seg.access("motor_vehicle")]; ok {
				return 1, true
			}
		}
		priorityRoad := seg.tag("priority_road")
		switch {
		case hasMaxspeed && maxspeed <= 10 &&
			valueIn(attrs.Highway, []string{"residential", "living_street"}) &&
			(priorityRoad == "" || priorityRoad == "no"):
			return 1, true
		case hasMaxspeed && maxspeed <= 30 &&
			valueIn(attrs.Highway, []string{"tertiary", "tertiary_link", "unclassified", "road", "residential", "living_street"}):
			return 2, true
		}
		return 4, true

	case WAY_TRACK_OR_SERVICE:
		if hasMaxspeed && maxspeed <= 10 {
			return 1, true
		}
		return 2, true
	}
	return 0, false
}
