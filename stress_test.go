package osmcqi

import "testing"

func TestClassifyStress(t *testing.T) {
	params := DefaultParams()
	cases := []struct {
		name     string
		tags     map[string]string
		attrs    ProcessedAttributes
		expected int
	}{
		{
			name:     "cycle track",
			attrs:    ProcessedAttributes{WayType: WAY_CYCLE_TRACK},
			expected: 1,
		},
		{
			name: "narrow twoway path on a fast road",
			attrs: ProcessedAttributes{
				WayType: WAY_SHARED_PATH, Oneway: "no",
				Width: 2.5, HasWidth: true, Maxspeed: 50, HasMaxspeed: true,
			},
			expected: 3,
		},
		{
			name: "wide path on a fast road",
			attrs: ProcessedAttributes{
				WayType: WAY_SHARED_PATH, Oneway: "no",
				Width: 3.5, HasWidth: true, Maxspeed: 50, HasMaxspeed: true,
			},
			expected: 1,
		},
		{
			name:     "advisory lane in a traffic calmed area",
			attrs:    ProcessedAttributes{WayType: WAY_CYCLE_LANE_ADVISORY, Maxspeed: 10, HasMaxspeed: true},
			expected: 1,
		},
		{
			name:     "advisory lane at 30",
			attrs:    ProcessedAttributes{WayType: WAY_CYCLE_LANE_ADVISORY, Maxspeed: 30, HasMaxspeed: true},
			expected: 2,
		},
		{
			name: "wide advisory lane at 50",
			attrs: ProcessedAttributes{
				WayType: WAY_CYCLE_LANE_ADVISORY,
				Width:   1.6, HasWidth: true, Maxspeed: 50, HasMaxspeed: true,
			},
			expected: 3,
		},
		{
			name:     "narrow advisory lane at 50",
			attrs:    ProcessedAttributes{WayType: WAY_CYCLE_LANE_ADVISORY, Width: 1.2, HasWidth: true, Maxspeed: 50, HasMaxspeed: true},
			expected: 4,
		},
		{
			name: "exclusive lane at 50",
			attrs: ProcessedAttributes{
				WayType: WAY_CYCLE_LANE_EXCLUSIVE,
				Width:   1.85, HasWidth: true, Maxspeed: 50, HasMaxspeed: true,
			},
			expected: 2,
		},
		{
			name:     "narrow exclusive lane at 50",
			attrs:    ProcessedAttributes{WayType: WAY_CYCLE_LANE_EXCLUSIVE, Width: 1.5, HasWidth: true, Maxspeed: 50, HasMaxspeed: true},
			expected: 3,
		},
		{
			name:     "restricted bicycle road",
			tags:     map[string]string{"motor_vehicle": "destination"},
			attrs:    ProcessedAttributes{WayType: WAY_BICYCLE_ROAD},
			expected: 1,
		},
		{
			name: "calm residential road",
			attrs: ProcessedAttributes{
				WayType: WAY_SHARED_ROAD, Highway: "residential",
				Maxspeed: 10, HasMaxspeed: true,
			},
			expected: 1,
		},
		{
			name: "priority road is never calm",
			tags: map[string]string{"priority_road": "yes"},
			attrs: ProcessedAttributes{
				WayType: WAY_SHARED_ROAD, Highway: "residential",
				Maxspeed: 10, HasMaxspeed: true,
			},
			expected: 2,
		},
		{
			name: "tertiary at 30",
			attrs: ProcessedAttributes{
				WayType: WAY_SHARED_ROAD, Highway: "tertiary",
				Maxspeed: 30, HasMaxspeed: true,
			},
			expected: 2,
		},
		{
			name: "secondary at 50",
			attrs: ProcessedAttributes{
				WayType: WAY_SHARED_TRAFFIC_LANE, Highway: "secondary",
				Maxspeed: 50, HasMaxspeed: true,
			},
			expected: 4,
		},
		{
			name:     "service way",
			attrs:    ProcessedAttributes{WayType: WAY_TRACK_OR_SERVICE},
			expected: 2,
		},
	}
	for _, testCase := range cases {
		seg := tagged(testCase.tags)
		lts, ok := classifyStress(seg, &testCase.attrs, params)
		if !ok {
			t.Errorf("%s: stress level must be defined", testCase.name)
			continue
		}
		if lts != testCase.expected {
			t.Errorf("%s: stress level must be %v, but got %v", testCase.name, testCase.expected, lts)
		}
	}
}
