package osmcqi

import (
	"math"
	"strings"
)

// Factors holds the numeric components the composite index is built from.
// A missing base index means no index is computed at all.
type Factors struct {
	BaseIndex    int
	HasBaseIndex bool

	FacWidth      float64
	HasFacWidth   bool
	FacSurface    float64
	HasFacSurface bool
	FacHighway    float64
	FacMaxspeed   float64

	Fac1 float64
	Fac2 float64
	Fac3 float64
	Fac4 float64

	Index    int
	HasIndex bool
	Index10  int
}

var surfaceColourNeutral = []string{"no", "none", "grey", "gray", "black"}

// scoreFactors converts the resolved attributes into numeric factors and
// composes the final index. Bonus, malus and missing markers are appended
// to the given lists.
func scoreFactors(seg *Segment, attrs *ProcessedAttributes, params *Params, missing, bonus, malus *ValueList) Factors {
	factors := Factors{FacHighway: 1, FacMaxspeed: 1}
	wayType := attrs.WayType

	// base index by way type, overridden on shared ways with restricted
	// motor vehicle access
	baseIndex, hasBase := params.BaseIndex[wayType.String()]
	motorVehicleAccess := ""
	accessRestricted := false
	if wayType.isAccessRestrictable() {
		motorVehicleAccess = seg.access("motor_vehicle")
		if override, ok := params.MotorVehicleAccessIndex[motorVehicleAccess]; ok {
			baseIndex = override
			hasBase = true
			accessRestricted = true
			bonus.Add("motor vehicle restricted")
		}
	}
	factors.BaseIndex, factors.HasBaseIndex = baseIndex, hasBase

	factors.FacWidth, factors.HasFacWidth = widthFactor(attrs, motorVehicleAccess, accessRestricted)
	if factors.FacWidth > 1 {
		bonus.Add("wide width")
	}
	if factors.HasFacWidth && factors.FacWidth <= 0.5 {
		malus.Add("narrow width")
	}

	// smoothness takes precedence over surface
	if factor, ok := params.SmoothnessFactors[attrs.Smoothness]; ok && attrs.Smoothness != "" {
		factors.FacSurface, factors.HasFacSurface = factor, true
	} else if factor, ok := params.SurfaceFactors[attrs.Surface]; ok && attrs.Surface != "" {
		factors.FacSurface, factors.HasFacSurface = factor, true
	}
	if factors.FacSurface > 1 {
		bonus.Add("excellent surface")
	}
	if factors.HasFacSurface && factors.FacSurface <= 0.5 {
		malus.Add("bad surface")
	}

	if factor, ok := params.HighwayFactors[attrs.Highway]; ok && attrs.Highway != "" {
		factors.FacHighway = factor
	}
	if attrs.HasMaxspeed && attrs.Maxspeed != 0 {
		factors.FacMaxspeed = params.maxspeedFactor(attrs.Maxspeed)
	} else if wayType != WAY_TRACK_OR_SERVICE && attrs.Sidepath != "no" &&
		!valueIn(attrs.Highway, []string{"pedestrian", "service", "track"}) {
		missing.Add("maxspeed")
	}

	if !factors.HasBaseIndex {
		return factors
	}

	// factor 1: width and surface, weighted so that low values pull the
	// index down harder
	fac1 := 1.0
	switch {
	case factors.HasFacWidth && factors.HasFacSurface:
		weightWidth := math.Max(1-factors.FacWidth, 0) + 0.5
		weightSurface := math.Max(1-factors.FacSurface, 0) + 0.5
		fac1 = (weightWidth*factors.FacWidth + weightSurface*factors.FacSurface) / (weightWidth + weightSurface)
	case factors.HasFacWidth:
		fac1 = factors.FacWidth
	case factors.HasFacSurface:
		fac1 = factors.FacSurface
	}

	// factor 2: highway and maxspeed, weighted by how close cycling
	// traffic is to the motor traffic
	weight := 1.0
	if w, ok := params.HighwayFactorWeights[wayType.String()]; ok {
		weight = w
	}
	// a path that is no sidepath of a road is not affected by any road
	if (wayType == WAY_SHARED_PATH || wayType == WAY_SEGREGATED_PATH || wayType == WAY_SHARED_FOOTWAY) &&
		attrs.Sidepath != "yes" {
		weight = 0
	}
	fac2 := factors.FacHighway * factors.FacMaxspeed
	fac2 = fac2 + (1-fac2)*(1-weight)
	if fac2 == 0 {
		fac2 = 1
	}
	if weight >= 0.5 {
		if fac2 > 1 {
			bonus.Add("slow traffic")
		}
		if factors.FacHighway <= 0.7 {
			malus.Add("along a major road")
		}
		if factors.FacMaxspeed <= 0.7 {
			malus.Add("along a road with high speed limits")
		}
	}

	// factor 3: separation and buffer (disabled, pending calibration)
	fac3 := 1.0

	fac4 := miscellaneousFactor(seg, attrs, missing, bonus, malus)

	factors.Fac1 = round2(fac1)
	factors.Fac2 = round2(fac2)
	factors.Fac3 = round2(fac3)
	factors.Fac4 = round2(fac4)

	index := float64(baseIndex) * fac1 * fac2 * fac3 * fac4
	index = math.Max(math.Min(100, index), 0)
	factors.Index = int(math.Round(index))
	factors.HasIndex = true
	factors.Index10 = factors.Index / 10
	return factors
}

func widthFactor(attrs *ProcessedAttributes, motorVehicleAccess string, accessRestricted bool) (float64, bool) {
	wayType := attrs.WayType
	if !attrs.HasWidth {
		return 0, false
	}
	calcWidth := attrs.Width
	minimumFactor := 0.0

	if !wayType.isSharedWithTraffic() || motorVehicleAccess == "no" {
		// dedicated ways count the space per driving direction
		if calcWidth != 0 && !strings.Contains(attrs.Oneway, "yes") {
			calcWidth /= 1.6
		}
	} else {
		// on shared roads there is a minimum width factor, since in case
		// of doubt other vehicles have to pass carefully or can't overtake
		minimumFactor = 0.25
		if calcWidth != 0 {
			switch wayType {
			case WAY_SHARED_TRAFFIC_LANE:
				calcWidth = math.Max(calcWidth-2+(4.5-calcWidth)/3, 0)
			case WAY_SHARED_BUS_LANE:
				calcWidth = math.Max(calcWidth-3+(5.5-calcWidth)/3, 0)
			default:
				if !strings.Contains(attrs.Oneway, "yes") {
					calcWidth /= 1.6
				}
				// optimum on a motor vehicle road is 2m more than on a
				// cycleway: car + bicycle + passing distance
				calcWidth -= 2
			}
		}
	}

	if calcWidth == 0 {
		return 0, false
	}
	// the logistic curve below is not defined for 0
	calcWidth = math.Max(0.001, calcWidth)

	var facWidth float64
	if calcWidth <= 3 || wayType.isSharedWithTraffic() {
		facWidth = 1.1 / (1 + 20*math.Exp(-2.1*calcWidth))
	} else {
		// extra wide ways saturate on a flatter curve
		facWidth = 2 / (1 + 1.8*math.Exp(-0.24*calcWidth))
	}
	if wayType.isAccessRestrictable() && accessRestricted {
		// restricted access means less traffic sharing the width
		facWidth += (1 - facWidth) / 2
	}
	return round3(math.Max(minimumFactor, facWidth)), true
}

// miscellaneousFactor accumulates the independent bonus/malus adjustments
// of factor group 4.
func miscellaneousFactor(seg *Segment, attrs *ProcessedAttributes, missing, bonus, malus *ValueList) float64 {
	wayType := attrs.WayType
	fac4 := 1.0

	if wayType == WAY_SHARED_ROAD || wayType == WAY_SHARED_TRAFFIC_LANE {
		if seg.anyTagEquals("shared_lane", cyclewayFamilyKeys...) {
			fac4 += 0.1
			bonus.Add("shared lane markings")
		}
	}

	if wayType.isCycleLane() || wayType == WAY_CROSSING || wayType == WAY_SHARED_BUS_LANE ||
		wayType == WAY_LINK || wayType == WAY_BICYCLE_ROAD ||
		((wayType == WAY_SHARED_PATH || wayType == WAY_SEGREGATED_PATH) && attrs.Sidepath == "yes") {
		surfaceColour := seg.tag("surface:colour")
		if surfaceColour != "" && !valueIn(surfaceColour, surfaceColourNeutral) {
			if wayType == WAY_CROSSING {
				fac4 += 0.15
			} else {
				fac4 += 0.05
			}
			bonus.Add("surface colour")
		}
	}

	if wayType == WAY_CROSSING {
		crossing := seg.tag("crossing")
		if crossing == "" {
			missing.Add("crossing")
		}
		crossingMarkings := seg.tag("crossing:markings")
		if crossingMarkings == "" {
			missing.Add("crossing_markings")
		}
		if crossing == "traffic_signals" {
			fac4 += 0.2
			bonus.Add("signalled crossing")
		} else if crossing == "marked" || crossing == "zebra" || (crossingMarkings != "" && crossingMarkings != "no") {
			fac4 += 0.1
			bonus.Add("marked crossing")
		}
	}

	lit := seg.tag("lit")
	if lit == "" {
		missing.Add("lit")
	}
	if lit == "no" {
		fac4 -= 0.1
		malus.Add("no street lighting")
	}

	// dooring zone next to parking: malus scales from 0 (1m buffer) to 0.2
	// (no buffer at all)
	traffic := attrs.Traffic
	parkingLeft := traffic.ModeLeft == "parking"
	parkingRight := traffic.ModeRight == "parking"
	doorable := wayType.isCycleLane() ||
		((wayType == WAY_CYCLE_TRACK || wayType == WAY_SHARED_PATH || wayType == WAY_SEGREGATED_PATH) && attrs.Sidepath == "yes")
	if doorable &&
		((parkingLeft && traffic.HasBufferLeft && traffic.BufferLeft != 0 && traffic.BufferLeft < 1) ||
			(parkingRight && traffic.HasBufferRight && traffic.BufferRight != 0 && traffic.BufferRight < 1)) {
		diff := 0.0
		if parkingLeft {
			diff = math.Abs(traffic.BufferLeft-1) / 5
		}
		if parkingRight {
			diff = math.Abs(traffic.BufferRight-1) / 5
		}
		if parkingLeft && parkingRight {
			diff = math.Abs((traffic.BufferLeft+traffic.BufferRight)/2-1) / 5
		}
		fac4 -= diff
		malus.Add("insufficient dooring buffer")
	}

	if seg.tag("bicycle") == "permissive" {
		fac4 -= 0.2
		malus.Add("cycling not intended")
	}
	return fac4
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
