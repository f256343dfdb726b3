package osmcqi

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMaxspeedFactor(t *testing.T) {
	params := DefaultParams()
	cases := []struct {
		maxspeed float64
		expected float64
	}{
		{maxspeed: 10, expected: 1},
		{maxspeed: 20, expected: 1.05},
		{maxspeed: 30, expected: 1},
		{maxspeed: 45, expected: 1},
		{maxspeed: 50, expected: 0.95},
		{maxspeed: 70, expected: 0.7},
		{maxspeed: 120, expected: 0.5},
	}
	for _, testCase := range cases {
		if factor := params.maxspeedFactor(testCase.maxspeed); factor != testCase.expected {
			t.Errorf("Factor for %v km/h must be %v, but got %v", testCase.maxspeed, testCase.expected, factor)
		}
	}
}

func TestWeakestSurfaceValue(t *testing.T) {
	params := DefaultParams()
	if weakest := params.weakestSurfaceValue([]string{"asphalt", "sett", "compacted"}); weakest != "sett" {
		t.Errorf("Weakest surface must be sett, but got %v", weakest)
	}
	if weakest := params.weakestSurfaceValue([]string{"lava"}); weakest != "" {
		t.Errorf("Unknown values must resolve to empty, but got %v", weakest)
	}
}

func TestBaseIndexCoversAllWayTypes(t *testing.T) {
	params := DefaultParams()
	for wayType := WAY_BICYCLE_ROAD; wayType <= WAY_SHARED_BUS_LANE; wayType++ {
		if _, ok := params.BaseIndex[wayType.String()]; !ok {
			t.Errorf("Base index table must cover %v", wayType)
		}
	}
}

func TestLoadParamsOverlay(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "params.yaml")
	content := []byte("default_oneway_cycle_track: \"yes\"\nhighway_factors:\n  residential: 0.5\n")
	if err := os.WriteFile(fileName, content, 0644); err != nil {
		t.Fatal(err)
	}

	params, err := LoadParams(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if params.DefaultOnewayCycleTrack != "yes" {
		t.Errorf("Override must set the track default to yes, but got %v", params.DefaultOnewayCycleTrack)
	}
	if params.HighwayFactors["residential"] != 0.5 {
		t.Errorf("Override must set the residential factor to 0.5, but got %v", params.HighwayFactors["residential"])
	}
	// untouched tables keep their defaults
	if params.DefaultOnewayCycleLane != "yes" {
		t.Errorf("Lane default must stay yes, but got %v", params.DefaultOnewayCycleLane)
	}
	if params.SurfaceFactors["asphalt"] != 1 {
		t.Errorf("Surface factors must stay at their defaults, but got %v", params.SurfaceFactors["asphalt"])
	}

	if _, err := LoadParams(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Loading a missing file must fail")
	}
}
