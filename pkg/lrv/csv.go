package lrv

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/konradit/lrv2csv/pkg/telemetry"
)

const timestampLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"filename", "timestamp", "latitude", "longitude", "altitude", "speed", "track"}

// WriteCSV flattens the per-file results into one CSV and returns the number
// of data rows written.
func WriteCSV(results []telemetry.FileResult, output string) (int, error) {
	csvFile, err := os.Create(output)
	if err != nil {
		return 0, err
	}
	defer csvFile.Close()

	writer := csv.NewWriter(csvFile)
	if err := writer.Write(csvHeader); err != nil {
		return 0, err
	}

	rows := 0
	for _, result := range results {
		for _, point := range result.Points {
			err := writer.Write([]string{
				result.Filename,
				point.Timestamp.Format(timestampLayout),
				fmt.Sprintf("%.6f", point.Latitude),
				fmt.Sprintf("%.6f", point.Longitude),
				fmt.Sprintf("%.1f", point.Altitude),
				fmt.Sprintf("%.3f", point.Speed),
				fmt.Sprintf("%.1f", point.Track),
			})
			if err != nil {
				return rows, err
			}
			rows++
		}
	}

	writer.Flush()
	return rows, writer.Error()
}
