package osmcqi

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// SegmentsFromGeoJSON reads a GeoJSON file produced by the geometry stage
// and converts its LineString features into segments. The returned feature
// collection is filtered to those features and stays index-aligned with the
// segments, so results can be merged back via WriteGeoJSON.
func SegmentsFromGeoJSON(fileName string) ([]*Segment, *geojson.FeatureCollection, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, nil, errors.Wrap(err, "Can not read GeoJSON file")
	}
	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "Can not parse GeoJSON file")
	}

	features := make([]*geojson.Feature, 0, len(collection.Features))
	segments := make([]*Segment, 0, len(collection.Features))
	for _, feature := range collection.Features {
		if feature.Geometry == nil || !feature.Geometry.IsLineString() {
			continue
		}
		seg := segmentFromFeature(feature)
		if seg.ID == "" {
			seg.ID = strconv.Itoa(len(segments))
		}
		features = append(features, feature)
		segments = append(segments, seg)
	}
	collection.Features = features
	return segments, collection, nil
}

func segmentFromFeature(feature *geojson.Feature) *Segment {
	tags := make(osm.Tags, 0, len(feature.Properties))
	for key, value := range feature.Properties {
		str := stringifyProperty(value)
		if str == "" {
			continue
		}
		tags = append(tags, osm.Tag{Key: key, Value: str})
	}

	seg := &Segment{
		TagMap:     tags,
		Geom:       feature.Geometry.LineString,
		Side:       tags.Find("side"),
		OffsetType: tags.Find("type"),
	}
	if feature.ID != nil {
		seg.ID = fmt.Sprint(feature.ID)
	} else {
		seg.ID = tags.Find("id")
	}

	seg.ProcSidepath = tags.Find("proc_sidepath")
	if seg.ProcSidepath == "" {
		seg.ProcSidepath = tags.Find("is_sidepath")
	}
	// sidewalk geometries are sidepaths by definition
	if seg.ProcSidepath == "" && tags.Find("footway") == "sidewalk" {
		seg.ProcSidepath = "yes"
	}
	return seg
}

func stringifyProperty(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	}
	return fmt.Sprint(value)
}

// WriteGeoJSON merges the evaluation results back into the feature
// collection and writes it out. Features whose segment was dropped are
// omitted. collection and results must be index-aligned, as returned by
// SegmentsFromGeoJSON and EvaluateAll.
func WriteGeoJSON(fileName string, collection *geojson.FeatureCollection, results []*Result) error {
	out := geojson.NewFeatureCollection()
	for i, feature := range collection.Features {
		if i >= len(results) || results[i] == nil {
			continue
		}
		applyResult(feature, results[i])
		out.AddFeature(feature)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return errors.Wrap(err, "Can not encode GeoJSON")
	}
	if err := os.WriteFile(fileName, data, 0644); err != nil {
		return errors.Wrap(err, "Can not write GeoJSON file")
	}
	return nil
}

func applyResult(feature *geojson.Feature, result *Result) {
	attrs := result.Attributes
	factors := result.Factors

	feature.SetProperty("way_type", attrs.WayType.String())
	feature.SetProperty("proc_oneway", attrs.Oneway)
	if attrs.HasWidth {
		feature.SetProperty("proc_width", attrs.Width)
	}
	if attrs.Surface != "" {
		feature.SetProperty("proc_surface", attrs.Surface)
	}
	if attrs.Smoothness != "" {
		feature.SetProperty("proc_smoothness", attrs.Smoothness)
	}
	feature.SetProperty("proc_sidepath", attrs.Sidepath)
	feature.SetProperty("proc_highway", attrs.Highway)
	if attrs.HasMaxspeed {
		feature.SetProperty("proc_maxspeed", int(attrs.Maxspeed))
	}
	feature.SetProperty("proc_traffic_mode_left", attrs.Traffic.ModeLeft)
	feature.SetProperty("proc_traffic_mode_right", attrs.Traffic.ModeRight)
	feature.SetProperty("proc_separation_left", attrs.Traffic.SeparationLeft)
	feature.SetProperty("proc_separation_right", attrs.Traffic.SeparationRight)
	if attrs.Traffic.HasBufferLeft {
		feature.SetProperty("proc_buffer_left", attrs.Traffic.BufferLeft)
	}
	if attrs.Traffic.HasBufferRight {
		feature.SetProperty("proc_buffer_right", attrs.Traffic.BufferRight)
	}
	feature.SetProperty("proc_mandatory", attrs.Mandatory)
	feature.SetProperty("proc_traffic_sign", attrs.TrafficSign)

	if factors.HasFacWidth {
		feature.SetProperty("fac_width", factors.FacWidth)
	}
	if factors.HasFacSurface {
		feature.SetProperty("fac_surface", factors.FacSurface)
	}
	feature.SetProperty("fac_highway", factors.FacHighway)
	feature.SetProperty("fac_maxspeed", factors.FacMaxspeed)
	if factors.HasBaseIndex {
		feature.SetProperty("base_index", factors.BaseIndex)
		feature.SetProperty("fac_1", factors.Fac1)
		feature.SetProperty("fac_2", factors.Fac2)
		feature.SetProperty("fac_3", factors.Fac3)
		feature.SetProperty("fac_4", factors.Fac4)
	}
	if factors.HasIndex {
		feature.SetProperty("index", factors.Index)
		feature.SetProperty("index_10", factors.Index10)
	}
	if result.HasStressLevel {
		feature.SetProperty("stress_level", result.StressLevel)
	}

	feature.SetProperty("filter_usable", result.FilterUsable)
	feature.SetProperty("filter_way_type", result.FilterWayType)

	feature.SetProperty("data_missing", strings.Join(result.DataMissing, listDelimiter))
	feature.SetProperty("data_bonus", strings.Join(result.DataBonus, listDelimiter))
	feature.SetProperty("data_malus", strings.Join(result.DataMalus, listDelimiter))
	feature.SetProperty("data_incompleteness", result.DataIncompleteness)
	for _, marker := range []string{"width", "surface", "smoothness", "maxspeed", "parking", "lit"} {
		flag := 0
		if valueIn(marker, result.DataMissing) {
			flag = 1
		}
		feature.SetProperty("data_missing_"+marker, flag)
	}
}
