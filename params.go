package osmcqi

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MaxspeedFactor binds a maxspeed threshold (km/h) to an index factor.
// Thresholds must be listed in ascending order: the highest threshold
// that is less than or equal to the actual speed wins.
type MaxspeedFactor struct {
	Speed  int     `yaml:"speed"`
	Factor float64 `yaml:"factor"`
}

// Params holds every lookup table and threshold the engine consults.
// It is built once before processing and never mutated at runtime.
type Params struct {
	// RightHandTraffic selects which side un-suffixed separation/buffer
	// tags refer to.
	RightHandTraffic bool `yaml:"right_hand_traffic"`

	DefaultOnewayCycleTrack string `yaml:"default_oneway_cycle_track"`
	DefaultOnewayCycleLane  string `yaml:"default_oneway_cycle_lane"`

	// Assumed carriageway widths in meters per highway class.
	DefaultHighwayWidth         map[string]float64 `yaml:"default_highway_width"`
	DefaultHighwayWidthFallback float64            `yaml:"default_highway_width_fallback"`

	DefaultWidthTrafficLane          float64 `yaml:"default_width_traffic_lane"`
	DefaultWidthBusLane              float64 `yaml:"default_width_bus_lane"`
	DefaultWidthCycleLane            float64 `yaml:"default_width_cycle_lane"`
	DefaultWidthParkingParallel      float64 `yaml:"default_width_parking_parallel"`
	DefaultWidthParkingDiagonal      float64 `yaml:"default_width_parking_diagonal"`
	DefaultWidthParkingPerpendicular float64 `yaml:"default_width_parking_perpendicular"`

	DefaultCyclewaySurfaceLanes  string            `yaml:"default_cycleway_surface_lanes"`
	DefaultCyclewaySurfaceTracks string            `yaml:"default_cycleway_surface_tracks"`
	DefaultTrackSurface          map[string]string `yaml:"default_track_surface"`
	DefaultHighwaySurface        map[string]string `yaml:"default_highway_surface"`

	SurfaceFactors    map[string]float64 `yaml:"surface_factors"`
	SmoothnessFactors map[string]float64 `yaml:"smoothness_factors"`

	// SurfaceRanking lists recognized surface values from best to worst.
	// Semicolon-delimited multi-values resolve to the weakest listed one.
	SurfaceRanking []string `yaml:"surface_ranking"`

	HighwayFactors  map[string]float64 `yaml:"highway_factors"`
	MaxspeedFactors []MaxspeedFactor   `yaml:"maxspeed_factors"`

	// BaseIndex per way type; way types absent from the table produce no
	// index at all.
	BaseIndex map[string]int `yaml:"base_index"`

	// MotorVehicleAccessIndex overrides the base index on shared ways with
	// restricted motor vehicle access.
	MotorVehicleAccessIndex map[string]int `yaml:"motor_vehicle_access_index"`

	// HighwayFactorWeights describes how close cycling traffic is to motor
	// traffic per way type (0 = no influence of the parent road).
	HighwayFactorWeights map[string]float64 `yaml:"highway_factor_weights"`

	MandatoryTrafficSigns    []string `yaml:"mandatory_traffic_signs"`
	NotMandatoryTrafficSigns []string `yaml:"not_mandatory_traffic_signs"`

	CyclingProhibitionHighways []string `yaml:"cycling_prohibition_highways"`

	DataIncompleteness map[string]float64 `yaml:"data_incompleteness"`
}

// DefaultParams returns the built-in parameter set. Values follow common
// German tagging practice and infrastructure dimensions.
func DefaultParams() *Params {
	return &Params{
		RightHandTraffic: true,

		DefaultOnewayCycleTrack: "no",
		DefaultOnewayCycleLane:  "yes",

		DefaultHighwayWidth: map[string]float64{
			"motorway":       15,
			"motorway_link":  6,
			"trunk":          15,
			"trunk_link":     6,
			"primary":        17,
			"primary_link":   4,
			"secondary":      15,
			"secondary_link": 4,
			"tertiary":       13,
			"tertiary_link":  4,
			"unclassified":   11,
			"residential":    11,
			"road":           11,
			"living_street":  6,
			"pedestrian":     10,
			"service":        4,
			"track":          2.5,
			"cycleway":       1.8,
			"footway":        2,
			"bridleway":      2,
			"steps":          2,
			"path":           2,
		},
		DefaultHighwayWidthFallback: 11,

		DefaultWidthTrafficLane:          3.2,
		DefaultWidthBusLane:              4.5,
		DefaultWidthCycleLane:            1.4,
		DefaultWidthParkingParallel:      2.2,
		DefaultWidthParkingDiagonal:      4.5,
		DefaultWidthParkingPerpendicular: 5.0,

		DefaultCyclewaySurfaceLanes:  "asphalt",
		DefaultCyclewaySurfaceTracks: "paving_stones",
		DefaultTrackSurface: map[string]string{
			"grade1": "asphalt",
			"grade2": "compacted",
			"grade3": "unpaved",
			"grade4": "ground",
			"grade5": "grass",
		},
		DefaultHighwaySurface: map[string]string{
			"motorway":       "asphalt",
			"motorway_link":  "asphalt",
			"trunk":          "asphalt",
			"trunk_link":     "asphalt",
			"primary":        "asphalt",
			"primary_link":   "asphalt",
			"secondary":      "asphalt",
			"secondary_link": "asphalt",
			"tertiary":       "asphalt",
			"tertiary_link":  "asphalt",
			"unclassified":   "asphalt",
			"residential":    "asphalt",
			"road":           "asphalt",
			"living_street":  "asphalt",
			"service":        "asphalt",
			"cycleway":       "asphalt",
			"pedestrian":     "paving_stones",
			"footway":        "paving_stones",
			"steps":          "paving_stones",
			"bridleway":      "ground",
			"track":          "ground",
			"path":           "ground",
		},

		SurfaceFactors: map[string]float64{
			"asphalt":               1,
			"paved":                 1,
			"concrete":              1,
			"chipseal":              0.95,
			"metal":                 0.95,
			"paving_stones":         0.7,
			"compacted":             0.7,
			"fine_gravel":           0.7,
			"paving_stones:30":      0.6,
			"concrete:plates":       0.5,
			"bricks":                0.5,
			"cobblestone:flattened": 0.5,
			"wood":                  0.5,
			"concrete:lanes":        0.5,
			"sett":                  0.3,
			"grass_paver":           0.3,
			"unpaved":               0.3,
			"cobblestone":           0.3,
			"gravel":                0.3,
			"pebblestone":           0.3,
			"ground":                0.3,
			"woodchips":             0.3,
			"dirt":                  0.3,
			"earth":                 0.3,
			"grass":                 0.25,
			"unhewn_cobblestone":    0.2,
			"sand":                  0.15,
			"mud":                   0.1,
		},
		SmoothnessFactors: map[string]float64{
			"excellent":     1.1,
			"good":          1,
			"intermediate":  0.7,
			"bad":           0.3,
			"very_bad":      0.15,
			"horrible":      0.1,
			"very_horrible": 0.05,
			"impassable":    0,
		},
		SurfaceRanking: []string{
			"asphalt", "paved", "concrete", "chipseal", "metal",
			"paving_stones", "compacted", "fine_gravel", "paving_stones:30",
			"concrete:plates", "bricks", "cobblestone:flattened", "wood",
			"concrete:lanes", "sett", "grass_paver", "unpaved", "cobblestone",
			"gravel", "pebblestone", "ground", "woodchips", "dirt", "earth",
			"grass", "unhewn_cobblestone", "sand", "mud",
		},

		HighwayFactors: map[string]float64{
			"motorway":       0.1,
			"motorway_link":  0.1,
			"trunk":          0.15,
			"trunk_link":     0.15,
			"primary":        0.35,
			"primary_link":   0.35,
			"secondary":      0.65,
			"secondary_link": 0.65,
			"tertiary":       0.85,
			"tertiary_link":  0.85,
			"unclassified":   0.95,
			"road":           0.95,
			"residential":    1,
			"living_street":  1.1,
		},
		MaxspeedFactors: []MaxspeedFactor{
			{Speed: 20, Factor: 1.05},
			{Speed: 30, Factor: 1},
			{Speed: 50, Factor: 0.95},
			{Speed: 60, Factor: 0.85},
			{Speed: 70, Factor: 0.7},
			{Speed: 100, Factor: 0.5},
		},

		BaseIndex: map[string]int{
			"cycle path":              100,
			"cycle track":             90,
			"shared path":             70,
			"segregated path":         80,
			"shared footway":          50,
			"crossing":                60,
			"link":                    60,
			"cycle lane (advisory)":   70,
			"cycle lane (exclusive)":  80,
			"cycle lane (protected)":  90,
			"cycle lane (central)":    60,
			"shared bus lane":         65,
			"bicycle road":            70,
			"shared road":             60,
			"shared traffic lane":     50,
			"track or service":        65,
		},
		MotorVehicleAccessIndex: map[string]int{
			"no":                   100,
			"destination":          85,
			"delivery":             85,
			"permit":               85,
			"private":              90,
			"agricultural":         90,
			"forestry":             90,
			"agricultural;forestry": 90,
		},
		HighwayFactorWeights: map[string]float64{
			"cycle path":             0,
			"cycle track":            0.2,
			"shared path":            0.2,
			"segregated path":        0.2,
			"shared footway":         0.2,
			"crossing":               0.7,
			"link":                   0.7,
			"cycle lane (advisory)":  0.7,
			"cycle lane (exclusive)": 0.5,
			"cycle lane (protected)": 0.2,
			"cycle lane (central)":   1,
			"shared bus lane":        0.7,
		},

		MandatoryTrafficSigns:    []string{"237", "240", "241"},
		NotMandatoryTrafficSigns: []string{"1022-10"},

		CyclingProhibitionHighways: []string{"motorway", "motorway_link", "trunk", "trunk_link", "pedestrian"},

		DataIncompleteness: map[string]float64{
			"width":             25,
			"surface":           30,
			"smoothness":        5,
			"maxspeed":          15,
			"parking":           25,
			"crossing":          10,
			"crossing_markings": 10,
			"lit":               15,
			"width:lanes":       10,
		},
	}
}

// LoadParams reads a YAML parameter document and overlays it onto the
// defaults. Map entries merge into the default tables, list values replace
// them as a whole.
func LoadParams(fileName string) (*Params, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Can not read parameters file")
	}
	params := DefaultParams()
	if err := yaml.Unmarshal(data, params); err != nil {
		return nil, errors.Wrap(err, "Can not parse parameters file")
	}
	return params, nil
}

func (params *Params) maxspeedFactor(maxspeed float64) float64 {
	factor := 1.0
	for _, entry := range params.MaxspeedFactors {
		if maxspeed >= float64(entry.Speed) {
			factor = entry.Factor
		}
	}
	return factor
}

func (params *Params) weakestSurfaceValue(values []string) string {
	weakest := ""
	weakestRank := -1
	for _, value := range values {
		for rank, known := range params.SurfaceRanking {
			if value == known && rank > weakestRank {
				weakest = value
				weakestRank = rank
			}
		}
	}
	return weakest
}
