package osmcqi

import "testing"

func TestResolveMandatoryUse(t *testing.T) {
	params := DefaultParams()
	cases := []struct {
		name       string
		tags       map[string]string
		wayType    WayType
		sidepath   string
		procOneway string
		expected   string
	}{
		{
			name:     "lane on the carriageway",
			tags:     map[string]string{"highway": "residential", "cycleway": "lane"},
			wayType:  WAY_SHARED_ROAD,
			expected: "use_sidepath",
		},
		{
			name:     "track along the carriageway",
			tags:     map[string]string{"highway": "residential", "cycleway:both": "track"},
			wayType:  WAY_SHARED_ROAD,
			expected: "optional_sidepath",
		},
		{
			name:       "right side lane on a oneway road",
			tags:       map[string]string{"highway": "residential", "cycleway:right": "lane"},
			wayType:    WAY_SHARED_ROAD,
			procOneway: "yes",
			expected:   "use_sidepath",
		},
		{
			name:       "right side lane on a twoway road",
			tags:       map[string]string{"highway": "residential", "cycleway:right": "lane"},
			wayType:    WAY_SHARED_ROAD,
			procOneway: "no",
			expected:   "",
		},
		{
			name:     "explicit bicycle value",
			tags:     map[string]string{"highway": "residential", "cycleway": "lane", "bicycle": "optional_sidepath"},
			wayType:  WAY_SHARED_ROAD,
			expected: "optional_sidepath",
		},
		{
			name:     "mandatory sign",
			tags:     map[string]string{"traffic_sign": "DE:241"},
			wayType:  WAY_CYCLE_TRACK,
			sidepath: "yes",
			expected: "yes",
		},
		{
			name:     "exempting sign wins as the later entry",
			tags:     map[string]string{"traffic_sign": "DE:241;DE:1022-10"},
			wayType:  WAY_CYCLE_TRACK,
			sidepath: "yes",
			expected: "no",
		},
		{
			name:     "no sign at all",
			tags:     map[string]string{},
			wayType:  WAY_CYCLE_TRACK,
			sidepath: "yes",
			expected: "",
		},
		{
			name:     "prohibited highway",
			tags:     map[string]string{"highway": "trunk"},
			wayType:  WAY_SHARED_TRAFFIC_LANE,
			expected: "prohibited",
		},
		{
			name:     "prohibited by access",
			tags:     map[string]string{"highway": "residential", "bicycle": "no"},
			wayType:  WAY_SHARED_ROAD,
			expected: "prohibited",
		},
	}
	for _, testCase := range cases {
		seg := tagged(testCase.tags)
		seg.ProcSidepath = testCase.sidepath
		mandatory := resolveMandatoryUse(seg, testCase.wayType, testCase.procOneway, params)
		if mandatory != testCase.expected {
			t.Errorf("%s: mandatory must be %q, but got %q", testCase.name, testCase.expected, mandatory)
		}
	}
}

func TestUsabilityFilters(t *testing.T) {
	usable, filterWayType := usabilityFilters(WAY_CYCLE_TRACK, "")
	if usable != 1 || filterWayType != "separated" {
		t.Errorf("Cycle track must be usable/separated, but got %v / %v", usable, filterWayType)
	}
	usable, filterWayType = usabilityFilters(WAY_SHARED_ROAD, "use_sidepath")
	if usable != 0 || filterWayType != "shared traffic" {
		t.Errorf("Shared road with sidepath duty must be unusable, but got %v / %v", usable, filterWayType)
	}
	usable, _ = usabilityFilters(WAY_CYCLE_LANE_ADVISORY, "prohibited")
	if usable != 0 {
		t.Errorf("Prohibited segment must be unusable, but got %v", usable)
	}
	_, filterWayType = usabilityFilters(WAY_BICYCLE_ROAD, "")
	if filterWayType != "bicycle road" {
		t.Errorf("Filter way type must be bicycle road, but got %v", filterWayType)
	}
}
