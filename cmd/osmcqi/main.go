package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/velokatalog/osmcqi"
)

var (
	inFileName  = flag.String("file", "way_input.geojson", "Filename of the GeoJSON input with offset way segments and sidepath annotations")
	outFileName = flag.String("out", "cycling_quality_index.geojson", "Filename of the GeoJSON output with the evaluated segments")
	paramsFile  = flag.String("params", "", "Optional YAML file overriding the built-in parameter tables")
	workers     = flag.Int("workers", 0, "Number of parallel workers (0 = number of CPUs)")
	wktFileName = flag.String("wkt", "", "Optional filename for a WKT dump of the evaluated segments")
	verbose     = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	params := osmcqi.DefaultParams()
	if *paramsFile != "" {
		var err error
		params, err = osmcqi.LoadParams(*paramsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("load parameters")
		}
		log.Info().Str("file", *paramsFile).Msg("Loaded parameter overrides")
	}

	segments, collection, err := osmcqi.SegmentsFromGeoJSON(*inFileName)
	if err != nil {
		log.Fatal().Err(err).Msg("read input")
	}
	log.Info().Int("segments", len(segments)).Str("file", *inFileName).Msg("Read input data")

	engine := osmcqi.NewEngine(params)
	start := time.Now()
	results, err := engine.EvaluateAll(context.Background(), segments, *workers)
	if err != nil {
		log.Fatal().Err(err).Msg("evaluate")
	}

	kept := 0
	for _, result := range results {
		if result != nil {
			kept++
		}
	}
	log.Info().
		Int("kept", kept).
		Int("dropped", len(segments)-kept).
		Dur("elapsed", time.Since(start)).
		Msg("Evaluated segments")

	if err := osmcqi.WriteGeoJSON(*outFileName, collection, results); err != nil {
		log.Fatal().Err(err).Msg("write output")
	}
	log.Info().Str("file", *outFileName).Msg("Saved output data")

	if *wktFileName != "" {
		if err := osmcqi.WriteWKT(*wktFileName, segments, results); err != nil {
			log.Fatal().Err(err).Msg("write wkt")
		}
		log.Info().Str("file", *wktFileName).Msg("Saved WKT dump")
	}
}
