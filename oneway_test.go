package osmcqi

import "testing"

func TestResolveOneway(t *testing.T) {
	params := DefaultParams()
	cases := []struct {
		name     string
		tags     map[string]string
		wayType  WayType
		side     string
		expected string
	}{
		{
			name:     "explicit oneway",
			tags:     map[string]string{"oneway": "yes"},
			wayType:  WAY_CYCLE_PATH,
			expected: "yes",
		},
		{
			name:     "cycleway oneway tag",
			tags:     map[string]string{"cycleway:oneway": "-1"},
			wayType:  WAY_CYCLE_TRACK,
			expected: "-1",
		},
		{
			name:     "track side default",
			tags:     map[string]string{},
			wayType:  WAY_CYCLE_TRACK,
			side:     "right",
			expected: "no",
		},
		{
			name:     "cycle lane default",
			tags:     map[string]string{},
			wayType:  WAY_CYCLE_LANE_ADVISORY,
			expected: "yes",
		},
		{
			name:     "bus lane",
			tags:     map[string]string{},
			wayType:  WAY_SHARED_BUS_LANE,
			expected: "yes",
		},
		{
			name:     "shared road twoway",
			tags:     map[string]string{},
			wayType:  WAY_SHARED_ROAD,
			expected: "no",
		},
		{
			name:     "shared road oneway",
			tags:     map[string]string{"oneway": "yes"},
			wayType:  WAY_SHARED_ROAD,
			expected: "yes",
		},
		{
			name:     "oneway excepting bicycles",
			tags:     map[string]string{"oneway": "yes", "oneway:bicycle": "no"},
			wayType:  WAY_SHARED_ROAD,
			expected: "yes_motor_vehicles",
		},
		{
			name:     "oneway for bicycles only",
			tags:     map[string]string{"oneway": "no", "oneway:bicycle": "yes"},
			wayType:  WAY_SHARED_ROAD,
			expected: "yes",
		},
	}
	for _, testCase := range cases {
		seg := tagged(testCase.tags)
		seg.Side = testCase.side
		procOneway := resolveOneway(seg, testCase.wayType, params)
		if procOneway != testCase.expected {
			t.Errorf("%s: oneway must be %v, but got %v", testCase.name, testCase.expected, procOneway)
		}
	}
}
