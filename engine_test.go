package osmcqi

import (
	"context"
	"reflect"
	"testing"

	"github.com/paulmach/osm"
)

func tagged(pairs map[string]string) *Segment {
	tags := make(osm.Tags, 0, len(pairs))
	for key, value := range pairs {
		tags = append(tags, osm.Tag{Key: key, Value: value})
	}
	return &Segment{TagMap: tags}
}

func TestEvaluateSharedPathDefaults(t *testing.T) {
	engine := NewEngine(nil)
	seg := tagged(map[string]string{
		"highway":    "path",
		"segregated": "no",
		"bicycle":    "yes",
	})

	result, ok := engine.Evaluate(seg)
	if !ok {
		t.Fatal("Segment must not be dropped")
	}
	if result.Attributes.WayType != WAY_SHARED_PATH {
		t.Errorf("Way type must be %v, but got %v", WAY_SHARED_PATH, result.Attributes.WayType)
	}
	expectedWidth := DefaultParams().DefaultHighwayWidth["path"] * 1.6
	if !result.Attributes.HasWidth || result.Attributes.Width != expectedWidth {
		t.Errorf("Width must default to %v, but got %v", expectedWidth, result.Attributes.Width)
	}
	if !valueIn("width", result.DataMissing) {
		t.Errorf("Missing markers must contain width, but got %v", result.DataMissing)
	}
	if result.DataIncompleteness <= 0 {
		t.Errorf("Incompleteness must be positive, but got %v", result.DataIncompleteness)
	}
}

func TestEvaluateAdvisoryLaneScenario(t *testing.T) {
	engine := NewEngine(nil)
	seg := tagged(map[string]string{
		"highway":    "residential",
		"cycleway":   "lane",
		"oneway":     "no",
		"maxspeed":   "30",
		"surface":    "asphalt",
		"smoothness": "excellent",
	})
	seg.Side = "right"
	seg.OffsetType = "cycleway"
	seg.ProcSidepath = "yes"

	result, ok := engine.Evaluate(seg)
	if !ok {
		t.Fatal("Segment must not be dropped")
	}
	if result.Attributes.WayType != WAY_CYCLE_LANE_ADVISORY {
		t.Errorf("Way type must be %v, but got %v", WAY_CYCLE_LANE_ADVISORY, result.Attributes.WayType)
	}
	if result.Factors.FacSurface <= 1 {
		t.Errorf("Surface factor must exceed 1, but got %v", result.Factors.FacSurface)
	}
	if !valueIn("excellent surface", result.DataBonus) {
		t.Errorf("Bonus list must contain excellent surface, but got %v", result.DataBonus)
	}
	if result.Factors.Fac2 != 1 {
		t.Errorf("Road factor must be 1 at 30 km/h on a residential road, but got %v", result.Factors.Fac2)
	}
	if !result.Factors.HasIndex || result.Factors.Index <= 50 {
		t.Errorf("Index must land in the upper half, but got %v", result.Factors.Index)
	}
}

func TestEvaluateDropsInformalPath(t *testing.T) {
	engine := NewEngine(nil)
	seg := tagged(map[string]string{
		"highway":  "path",
		"informal": "yes",
	})
	if result, ok := engine.Evaluate(seg); ok {
		t.Errorf("Informal path must be dropped, but got %+v", result)
	}
}

func TestEvaluatePermissiveMalus(t *testing.T) {
	engine := NewEngine(nil)
	build := func(bicycle string) *Segment {
		pairs := map[string]string{
			"highway":  "residential",
			"cycleway": "lane",
			"oneway":   "no",
			"maxspeed": "30",
			"surface":  "asphalt",
		}
		if bicycle != "" {
			pairs["bicycle"] = bicycle
		}
		seg := tagged(pairs)
		seg.Side = "right"
		seg.OffsetType = "cycleway"
		seg.ProcSidepath = "yes"
		return seg
	}

	plain, ok := engine.Evaluate(build(""))
	if !ok {
		t.Fatal("Segment must not be dropped")
	}
	permissive, ok := engine.Evaluate(build("permissive"))
	if !ok {
		t.Fatal("Segment must not be dropped")
	}

	diff := plain.Factors.Fac4 - permissive.Factors.Fac4
	if round2(diff) != 0.2 {
		t.Errorf("Permissive access must lower fac_4 by 0.2, but got %v", diff)
	}
	if !valueIn("cycling not intended", permissive.DataMalus) {
		t.Errorf("Malus list must contain cycling not intended, but got %v", permissive.DataMalus)
	}
	if permissive.Factors.Index >= plain.Factors.Index {
		t.Errorf("Index must drop below %v, but got %v", plain.Factors.Index, permissive.Factors.Index)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	engine := NewEngine(nil)
	seg := tagged(map[string]string{
		"highway":      "residential",
		"cycleway":     "lane",
		"maxspeed":     "50",
		"surface":      "paving_stones",
		"lit":          "yes",
		"parking:both": "lane",
	})
	seg.Side = "right"
	seg.OffsetType = "cycleway"
	seg.ProcSidepath = "yes"

	first, ok := engine.Evaluate(seg)
	if !ok {
		t.Fatal("Segment must not be dropped")
	}
	second, ok := engine.Evaluate(seg)
	if !ok {
		t.Fatal("Segment must not be dropped")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Re-evaluation must reproduce %+v, but got %+v", first, second)
	}
}

func TestEvaluateIndexRange(t *testing.T) {
	engine := NewEngine(nil)
	segments := []*Segment{
		tagged(map[string]string{"highway": "residential", "maxspeed": "30"}),
		tagged(map[string]string{"highway": "cycleway", "width": "0.5", "surface": "sand"}),
		tagged(map[string]string{"highway": "cycleway", "width": "4", "smoothness": "excellent", "oneway": "yes"}),
		tagged(map[string]string{"highway": "track", "tracktype": "grade5"}),
		tagged(map[string]string{"highway": "living_street"}),
	}
	for _, seg := range segments {
		result, ok := engine.Evaluate(seg)
		if !ok {
			continue
		}
		if !result.Factors.HasIndex {
			continue
		}
		if result.Factors.Index < 0 || result.Factors.Index > 100 {
			t.Errorf("Index must stay within [0, 100], but got %v", result.Factors.Index)
		}
		if result.Factors.Index10 != result.Factors.Index/10 {
			t.Errorf("Index bucket must be %v, but got %v", result.Factors.Index/10, result.Factors.Index10)
		}
	}
}

func TestEvaluateAllKeepsOrder(t *testing.T) {
	engine := NewEngine(nil)
	segments := []*Segment{
		tagged(map[string]string{"highway": "residential"}),
		tagged(map[string]string{"highway": "path", "informal": "yes"}),
		tagged(map[string]string{"highway": "cycleway"}),
	}
	segments[0].ID = "a"
	segments[1].ID = "b"
	segments[2].ID = "c"

	results, err := engine.EvaluateAll(context.Background(), segments, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(segments) {
		t.Fatalf("Result count must be %v, but got %v", len(segments), len(results))
	}
	if results[0] == nil || results[0].ID != "a" {
		t.Errorf("First result must keep ID a, but got %+v", results[0])
	}
	if results[1] != nil {
		t.Errorf("Dropped segment must leave a nil entry, but got %+v", results[1])
	}
	if results[2] == nil || results[2].Attributes.WayType != WAY_CYCLE_PATH {
		t.Errorf("Third result must be a cycle path, but got %+v", results[2])
	}
}
