package osmcqi

// ProcessedAttributes is the resolved view of a segment: one way type plus
// the attribute values every scorer consumes.
type ProcessedAttributes struct {
	WayType WayType

	Oneway     string
	Width      float64
	HasWidth   bool
	Surface    string
	Smoothness string
	Traffic    TrafficContext

	Mandatory   string
	TrafficSign string

	Sidepath string
	Highway  string
	Maxspeed float64
	// HasMaxspeed is false when no speed limit could be derived at all.
	HasMaxspeed bool
}

// Result is the full evaluation outcome for one segment.
type Result struct {
	ID string

	Attributes ProcessedAttributes
	Factors    Factors

	StressLevel    int
	HasStressLevel bool

	FilterUsable  int
	FilterWayType string

	DataMissing        []string
	DataBonus          []string
	DataMalus          []string
	DataIncompleteness float64
}

// Engine evaluates segments against one immutable parameter set.
type Engine struct {
	params *Params
}

func NewEngine(params *Params) *Engine {
	if params == nil {
		params = DefaultParams()
	}
	return &Engine{params: params}
}

func (engine *Engine) Params() *Params {
	return engine.params
}

// Evaluate runs the full pipeline on one segment. The second return value
// is false when the segment is not part of the cycling network and was
// dropped.
func (engine *Engine) Evaluate(seg *Segment) (*Result, bool) {
	params := engine.params

	wayType, ok := classifyWayType(seg, params)
	if !ok {
		return nil, false
	}

	attrs := ProcessedAttributes{WayType: wayType}
	attrs.Sidepath = seg.ProcSidepath
	attrs.Highway = resolveHighwayClass(seg)
	attrs.Maxspeed, attrs.HasMaxspeed = seg.ProcMaxspeed, seg.HasMaxspeed
	if !attrs.HasMaxspeed {
		attrs.Maxspeed, attrs.HasMaxspeed = determineMaxspeed(seg, attrs.Highway)
	}

	missing := &ValueList{}
	bonus := &ValueList{}
	malus := &ValueList{}

	attrs.Oneway = resolveOneway(seg, wayType, params)

	var widthMissing []string
	attrs.Width, attrs.HasWidth, widthMissing = resolveWidth(seg, wayType, attrs.Oneway, params)
	missing.AddAll(widthMissing)

	surface, surfaceMissing := resolveSurface(seg, wayType, params)
	attrs.Surface = surface
	missing.AddAll(surfaceMissing)

	smoothness, smoothnessMissing := resolveSmoothness(seg, wayType, params)
	attrs.Smoothness = smoothness
	missing.AddAll(smoothnessMissing)

	attrs.Traffic = resolveTrafficContext(seg, wayType, params)

	attrs.Mandatory = resolveMandatoryUse(seg, wayType, attrs.Oneway, params)
	attrs.TrafficSign = seg.tag("traffic_sign")

	result := &Result{ID: seg.ID}
	result.FilterUsable, result.FilterWayType = usabilityFilters(wayType, attrs.Mandatory)

	result.Factors = scoreFactors(seg, &attrs, params, missing, bonus, malus)
	result.StressLevel, result.HasStressLevel = classifyStress(seg, &attrs, params)

	result.Attributes = attrs
	result.DataMissing = missing.Values()
	result.DataBonus = bonus.Values()
	result.DataMalus = malus.Values()
	result.DataIncompleteness = params.incompleteness(missing)
	return result, true
}

// resolveHighwayClass returns the highway class the segment is evaluated
// against. Sidepaths inherit the class of the road they run along.
func resolveHighwayClass(seg *Segment) string {
	if seg.ProcHighway != "" {
		return seg.ProcHighway
	}
	if seg.ProcSidepath == "yes" {
		if parent := seg.tag("is_sidepath:of"); parent != "" {
			return parent
		}
	}
	return seg.tag("highway")
}

// determineMaxspeed parses the maxspeed tag. "walk" counts as 10 km/h and
// "none" as a high numeric placeholder so it lands in the top speed class.
// Living streets without an explicit limit default to walking speed.
func determineMaxspeed(seg *Segment, highway string) (float64, bool) {
	switch value := seg.tag("maxspeed"); value {
	case "walk":
		return 10, true
	case "none":
		return 299, true
	case "":
	default:
		if maxspeed, ok := parseNumber(value); ok {
			return maxspeed, true
		}
	}
	if highway == "living_street" {
		return 10, true
	}
	return 0, false
}
