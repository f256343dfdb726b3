package osmcqi

import "strings"

// resolveSurface derives the effective surface value. Only values known to
// the surface factor table survive; anything else resolves to "" with a
// missing marker raised where a default was substituted.
func resolveSurface(seg *Segment, wayType WayType, params *Params) (string, []string) {
	var missing []string

	// in rare cases the surface is tagged for bicycles explicitly
	surfaceBicycle := seg.tag("surface:bicycle")
	if surfaceBicycle != "" {
		if _, ok := params.SurfaceFactors[surfaceBicycle]; ok {
			return surfaceBicycle, missing
		}
		if strings.Contains(surfaceBicycle, ";") {
			if weakest := params.weakestSurfaceValue(splitDelimited(surfaceBicycle)); weakest != "" {
				return weakest, missing
			}
		}
	}

	procSurface := ""
	if wayType == WAY_SEGREGATED_PATH {
		procSurface = seg.tag("cycleway:surface")
		if procSurface == "" {
			if surface := seg.tag("surface"); surface != "" {
				procSurface = surface
			} else {
				procSurface = defaultHighwaySurface(seg.tag("highway"), params)
			}
			missing = append(missing, "surface")
		}
	} else {
		procSurface = seg.tag("surface")
		if procSurface == "" {
			procSurface = defaultSurface(seg, wayType, params)
			missing = append(missing, "surface")
		}
	}

	// with more than one surface value, the weakest one counts
	if strings.Contains(procSurface, ";") {
		procSurface = params.weakestSurfaceValue(splitDelimited(procSurface))
	}
	if _, ok := params.SurfaceFactors[procSurface]; !ok {
		procSurface = ""
	}
	return procSurface, missing
}

func defaultSurface(seg *Segment, wayType WayType, params *Params) string {
	if wayType.isCycleLane() {
		return params.DefaultCyclewaySurfaceLanes
	}
	switch wayType {
	case WAY_CYCLE_TRACK:
		return params.DefaultCyclewaySurfaceTracks
	case WAY_TRACK_OR_SERVICE:
		if surface, ok := params.DefaultTrackSurface[seg.tag("tracktype")]; ok {
			return surface
		}
		return params.DefaultTrackSurface["grade3"]
	}
	return defaultHighwaySurface(seg.tag("highway"), params)
}

func defaultHighwaySurface(highway string, params *Params) string {
	if surface, ok := params.DefaultHighwaySurface[highway]; ok {
		return surface
	}
	return params.DefaultHighwaySurface["path"]
}

// resolveSmoothness derives the effective smoothness value; a recognized
// bicycle-specific tag takes precedence.
func resolveSmoothness(seg *Segment, wayType WayType, params *Params) (string, []string) {
	var missing []string

	smoothnessBicycle := seg.tag("smoothness:bicycle")
	if _, ok := params.SmoothnessFactors[smoothnessBicycle]; ok && smoothnessBicycle != "" {
		return smoothnessBicycle, missing
	}

	procSmoothness := ""
	if wayType == WAY_SEGREGATED_PATH {
		procSmoothness = seg.tag("cycleway:smoothness")
	}
	if procSmoothness == "" {
		procSmoothness = seg.tag("smoothness")
	}
	if procSmoothness == "" {
		missing = append(missing, "smoothness")
	}
	if _, ok := params.SmoothnessFactors[procSmoothness]; !ok {
		procSmoothness = ""
	}
	return procSmoothness, missing
}
