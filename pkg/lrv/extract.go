package lrv

import (
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/konradit/lrv2csv/pkg/telemetry"
)

// MetadataSource produces the embedded-metadata text stream for a file.
// pkg/exiftool satisfies it; tests substitute a fake.
type MetadataSource interface {
	ExtractEmbedded(path string) (string, error)
}

type Extractor struct {
	Source MetadataSource
}

func NewExtractor(source MetadataSource) Extractor {
	return Extractor{Source: source}
}

// ExtractFile pulls the GPS points out of one file. Any invocation failure
// is logged and yields an empty slice, the file is skipped without failing
// the run.
func (e *Extractor) ExtractFile(path string) []telemetry.GpsPoint {
	color.Yellow(">> Analyzing: %s...", filepath.Base(path))

	output, err := e.Source.ExtractEmbedded(path)
	if err != nil {
		color.Red(">> %s: %s", filepath.Base(path), err.Error())
		return []telemetry.GpsPoint{}
	}

	points := telemetry.Segment(strings.NewReader(output))
	color.Green(">> Extracted %d GPS points", len(points))
	return points
}
