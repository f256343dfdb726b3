package osmcqi

import (
	"bufio"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

// WKT renders the segment geometry as a WKT LineString.
func (seg *Segment) WKT() string {
	line := make(orb.LineString, 0, len(seg.Geom))
	for _, point := range seg.Geom {
		if len(point) >= 2 {
			line = append(line, orb.Point{point[0], point[1]})
		}
	}
	return wkt.MarshalString(line)
}

// WriteWKT dumps the evaluated segments as "id;index;geometry" lines for
// quick inspection in GIS tools. Dropped segments are omitted. segments and
// results must be index-aligned.
func WriteWKT(fileName string, segments []*Segment, results []*Result) error {
	file, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "Can not create WKT file")
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()
	if _, err := writer.WriteString("id;index;geom\n"); err != nil {
		return errors.Wrap(err, "Can not write WKT header")
	}
	for i, seg := range segments {
		if i >= len(results) || results[i] == nil {
			continue
		}
		index := ""
		if results[i].Factors.HasIndex {
			index = fmt.Sprint(results[i].Factors.Index)
		}
		if _, err := writer.WriteString(seg.ID + ";" + index + ";" + seg.WKT() + "\n"); err != nil {
			return errors.Wrap(err, "Can not write WKT line")
		}
	}
	return nil
}
