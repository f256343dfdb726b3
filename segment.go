package osmcqi

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/osm"
)

// Segment is one linear way piece: its raw OSM tags plus the annotations
// supplied by the external geometry stage (sidepath detection and line
// offsetting). Tags are never mutated by the engine.
type Segment struct {
	ID     string
	TagMap osm.Tags

	// Geom is carried through untouched, [lon, lat] per vertex.
	Geom [][]float64

	// Annotations from the sidepath/offset stage.
	ProcSidepath string // "yes" / "no" / ""
	ProcHighway  string // inherited (or own) highway class
	ProcMaxspeed float64
	HasMaxspeed  bool
	Side         string // "left" / "right" / ""
	OffsetType   string // "cycleway" / "sidewalk" / ""
}

var numberRegExp = regexp.MustCompile(`-?\d+\.?\d*`)

// parseNumber extracts the leading numeric part of a tag value ("6.5 m"
// gives 6.5). Malformed values are treated as absent.
func parseNumber(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	numStr := numberRegExp.FindString(strings.ReplaceAll(value, ",", "."))
	if numStr == "" {
		return 0, false
	}
	num, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

func (seg *Segment) tag(key string) string {
	return seg.TagMap.Find(key)
}

func (seg *Segment) tagNumber(key string) (float64, bool) {
	return parseNumber(seg.TagMap.Find(key))
}

// anyTagEquals reports whether any of the given keys carries exactly the
// given value.
func (seg *Segment) anyTagEquals(value string, keys ...string) bool {
	for _, key := range keys {
		if seg.TagMap.Find(key) == value {
			return true
		}
	}
	return false
}

// anyTagIn reports whether any of the given keys carries one of the given
// values.
func (seg *Segment) anyTagIn(values []string, keys ...string) bool {
	for _, key := range keys {
		if valueIn(seg.TagMap.Find(key), values) {
			return true
		}
	}
	return false
}

func valueIn(value string, values []string) bool {
	for i := range values {
		if values[i] == value {
			return true
		}
	}
	return false
}

var accessCascades = map[string][]string{
	"bicycle":       {"bicycle", "vehicle", "access"},
	"motor_vehicle": {"motor_vehicle", "vehicle", "access"},
	"foot":          {"foot", "access"},
}

// access resolves an access value along the OSM access hierarchy, e.g.
// bicycle -> vehicle -> access.
func (seg *Segment) access(mode string) string {
	cascade, ok := accessCascades[mode]
	if !ok {
		cascade = []string{mode, "access"}
	}
	for _, key := range cascade {
		if value := seg.TagMap.Find(key); value != "" {
			return value
		}
	}
	return ""
}

// splitBothValue expands a ":both" tag into side values where no
// side-specific value exists.
func splitBothValue(both, left, right string) (string, string) {
	if both != "" {
		if left == "" {
			left = both
		}
		if right == "" {
			right = both
		}
	}
	return left, right
}

// splitDelimited splits a semicolon-delimited tag value; commas are treated
// as semicolons the way traffic_sign values are usually chained.
func splitDelimited(value string) []string {
	value = strings.ReplaceAll(value, ",", ";")
	parts := strings.Split(value, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

var motorTrafficModes = []string{"motor_vehicle", "psv", "parking"}

// separationFor returns the physical separation value on the side of the
// given traffic mode. With right-hand traffic, motor traffic is assumed on
// the left of an offset cycleway geometry and foot traffic on the right; an
// un-suffixed "separation" tag refers to the motor traffic side.
func (seg *Segment) separationFor(params *Params, trafficMode string) string {
	left := seg.tag("separation:left")
	right := seg.tag("separation:right")
	left, right = splitBothValue(seg.tag("separation:both"), left, right)

	motorSide, footSide := &left, &right
	if !params.RightHandTraffic {
		motorSide, footSide = &right, &left
	}
	if plain := seg.tag("separation"); plain != "" && *motorSide == "" {
		*motorSide = plain
	}
	if trafficMode == "foot" {
		return *footSide
	}
	return *motorSide
}
