package osmcqi

// TrafficContext describes what kind of traffic runs on each side of the
// segment and how it is physically separated from it.
type TrafficContext struct {
	ModeLeft        string
	ModeRight       string
	SeparationLeft  string
	SeparationRight string
	BufferLeft      float64
	HasBufferLeft   bool
	BufferRight     float64
	HasBufferRight  bool
}

// resolveTrafficContext derives per-side traffic mode, separation and
// buffer. Un-suffixed separation/buffer tags only refer to whichever side
// carries vehicle traffic, chosen by the configured handedness.
func resolveTrafficContext(seg *Segment, wayType WayType, params *Params) TrafficContext {
	ctx := TrafficContext{}

	if wayType == WAY_CYCLE_LANE_CENTRAL {
		ctx.ModeLeft = "motor_vehicle"
		ctx.ModeRight = "motor_vehicle"
		return ctx
	}

	ctx.ModeLeft, ctx.ModeRight = splitBothValue(seg.tag("traffic_mode:both"),
		seg.tag("traffic_mode:left"), seg.tag("traffic_mode:right"))
	parkingLeft, parkingRight := parkingStatus(seg)
	isSidepath := seg.ProcSidepath == "yes"
	parkingAlongside := (seg.Side == "right" && parkingRight != "" && parkingRight != "no") ||
		(seg.Side == "left" && parkingLeft != "" && parkingLeft != "no")

	if ctx.ModeLeft == "" {
		switch {
		case wayType == WAY_CYCLE_PATH:
			ctx.ModeLeft = "no"
		case isSidepathLikeType(wayType) && isSidepath:
			// parking lanes are assumed to sit next to the cycle way
			if parkingAlongside && ctx.ModeRight != "parking" {
				ctx.ModeLeft = "parking"
			} else {
				ctx.ModeLeft = "motor_vehicle"
			}
		case wayType.isCycleLane() || wayType == WAY_SHARED_ROAD || wayType == WAY_SHARED_TRAFFIC_LANE ||
			wayType == WAY_SHARED_BUS_LANE || wayType == WAY_CROSSING:
			ctx.ModeLeft = "motor_vehicle"
		}
	}
	if ctx.ModeRight == "" {
		switch {
		case wayType == WAY_CYCLE_PATH:
			ctx.ModeRight = "no"
		case wayType == WAY_CROSSING:
			ctx.ModeRight = "motor_vehicle"
		case wayType.isCycleLane():
			if parkingAlongside && ctx.ModeLeft != "parking" {
				ctx.ModeRight = "parking"
			} else {
				ctx.ModeRight = "foot"
			}
		case isSidepathLikeType(wayType) && isSidepath:
			ctx.ModeRight = "foot"
		}
	}

	ctx.SeparationLeft, ctx.SeparationRight = splitBothValue(seg.tag("separation:both"),
		seg.tag("separation:left"), seg.tag("separation:right"))
	if separation := seg.tag("separation"); separation != "" {
		if params.RightHandTraffic {
			if valueIn(ctx.ModeLeft, motorTrafficModes) {
				if ctx.SeparationLeft == "" {
					ctx.SeparationLeft = separation
				}
			} else if ctx.ModeRight == "motor_vehicle" && ctx.SeparationRight == "" {
				ctx.SeparationRight = separation
			}
		} else {
			if valueIn(ctx.ModeRight, motorTrafficModes) {
				if ctx.SeparationRight == "" {
					ctx.SeparationRight = separation
				}
			} else if ctx.ModeLeft == "motor_vehicle" && ctx.SeparationLeft == "" {
				ctx.SeparationLeft = separation
			}
		}
	}
	if ctx.SeparationLeft == "" {
		ctx.SeparationLeft = "no"
	}
	if ctx.SeparationRight == "" {
		ctx.SeparationRight = "no"
	}

	ctx.BufferLeft, ctx.HasBufferLeft = seg.tagNumber("buffer:left")
	ctx.BufferRight, ctx.HasBufferRight = seg.tagNumber("buffer:right")
	if bufferBoth, ok := seg.tagNumber("buffer:both"); ok {
		if !ctx.HasBufferLeft {
			ctx.BufferLeft, ctx.HasBufferLeft = bufferBoth, true
		}
		if !ctx.HasBufferRight {
			ctx.BufferRight, ctx.HasBufferRight = bufferBoth, true
		}
	}
	if buffer, ok := seg.tagNumber("buffer"); ok {
		if params.RightHandTraffic {
			if valueIn(ctx.ModeLeft, motorTrafficModes) {
				if !ctx.HasBufferLeft {
					ctx.BufferLeft, ctx.HasBufferLeft = buffer, true
				}
			} else if ctx.ModeRight == "motor_vehicle" && !ctx.HasBufferRight {
				ctx.BufferRight, ctx.HasBufferRight = buffer, true
			}
		} else {
			if valueIn(ctx.ModeRight, motorTrafficModes) {
				if !ctx.HasBufferRight {
					ctx.BufferRight, ctx.HasBufferRight = buffer, true
				}
			} else if ctx.ModeLeft == "motor_vehicle" && !ctx.HasBufferLeft {
				ctx.BufferLeft, ctx.HasBufferLeft = buffer, true
			}
		}
	}

	return ctx
}

// isSidepathLikeType covers separated ways that usually run along a road.
func isSidepathLikeType(wayType WayType) bool {
	switch wayType {
	case WAY_CYCLE_TRACK, WAY_SHARED_PATH, WAY_SEGREGATED_PATH, WAY_SHARED_FOOTWAY:
		return true
	}
	return false
}
