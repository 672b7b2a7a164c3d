package telemetry

import "time"

// GpsPoint is one timestamped position sample from the embedded metadata track.
// Fields missing from the source stream stay at 0.
type GpsPoint struct {
	Timestamp time.Time
	Latitude  float64
	Longitude float64
	Altitude  float64
	Speed     float64
	Track     float64
}

// FileResult holds the points extracted from a single file, in stream order.
type FileResult struct {
	Filename string
	Points   []GpsPoint
}
