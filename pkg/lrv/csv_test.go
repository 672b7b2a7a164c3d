package lrv

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/konradit/lrv2csv/pkg/telemetry"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	output := filepath.Join(t.TempDir(), "gps.csv")

	results := []telemetry.FileResult{
		{
			Filename: "VID_001.lrv",
			Points: []telemetry.GpsPoint{
				{
					Timestamp: time.Date(2025, 6, 30, 2, 13, 56, 0, time.UTC),
					Latitude:  35.6265277,
					Longitude: 139.7416722,
					Altitude:  36.24,
					Speed:     1.2345,
					Track:     181.55,
				},
				{
					Timestamp: time.Date(2025, 6, 30, 2, 13, 57, 0, time.UTC),
					Latitude:  -33.8680556,
					Longitude: -122.4194167,
				},
			},
		},
		{
			Filename: "VID_002.lrv",
			Points: []telemetry.GpsPoint{
				{Timestamp: time.Date(2025, 6, 30, 3, 0, 0, 0, time.UTC)},
			},
		},
	}

	rows, err := WriteCSV(results, output)
	require.NoError(t, err)
	require.Equal(t, 3, rows)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	require.Equal(t, []string{"filename", "timestamp", "latitude", "longitude", "altitude", "speed", "track"}, records[0])
	require.Equal(t, []string{"VID_001.lrv", "2025-06-30 02:13:56", "35.626528", "139.741672", "36.2", "1.234", "181.6"}, records[1])
	require.Equal(t, []string{"VID_001.lrv", "2025-06-30 02:13:57", "-33.868056", "-122.419417", "0.0", "0.000", "0.0"}, records[2])
	require.Equal(t, []string{"VID_002.lrv", "2025-06-30 03:00:00", "0.000000", "0.000000", "0.0", "0.000", "0.0"}, records[3])
}

func TestWriteCSVEmptyAggregate(t *testing.T) {
	output := filepath.Join(t.TempDir(), "gps.csv")

	rows, err := WriteCSV(nil, output)
	require.NoError(t, err)
	require.Zero(t, rows)
}

func TestWriteCSVBadPath(t *testing.T) {
	_, err := WriteCSV(nil, filepath.Join(t.TempDir(), "missing", "gps.csv"))
	require.Error(t, err)
}
