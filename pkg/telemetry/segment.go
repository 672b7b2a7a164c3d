package telemetry

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Segment reconstructs GPS points from exiftool's line-oriented output.
// A `GPS Date/Time` line opens a point, subsequent field lines fill it in,
// and the next `GPS Date/Time` line (or end of input) closes it. Markers are
// matched by substring, same as exiftool's human-readable labels are grouped.
func Segment(r io.Reader) []GpsPoint {
	points := []GpsPoint{}

	var current *GpsPoint

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.Contains(line, "GPS Date/Time"):
			if current != nil {
				points = append(points, *current)
			}
			current = nil
			if t, ok := ParseGpsTime(lineValue(line)); ok {
				current = &GpsPoint{Timestamp: t}
			}
		case strings.Contains(line, "GPS Latitude"):
			if current != nil {
				current.Latitude = ParseCoordinate(lineValue(line))
			}
		case strings.Contains(line, "GPS Longitude"):
			if current != nil {
				current.Longitude = ParseCoordinate(lineValue(line))
			}
		case strings.Contains(line, "GPS Altitude"):
			if current != nil {
				current.Altitude = parseLeadingFloat(lineValue(line))
			}
		case strings.Contains(line, "GPS Speed"):
			if current != nil {
				current.Speed = parseFloat(lineValue(line))
			}
		case strings.Contains(line, "GPS Track"):
			if current != nil {
				current.Track = parseFloat(lineValue(line))
			}
		}
	}

	if current != nil {
		points = append(points, *current)
	}

	return points
}

// lineValue returns the text after the first colon, trimmed. The recognized
// labels contain no colon, so the first one always separates label and value.
func lineValue(line string) string {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(value)
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	return f
}

// parseLeadingFloat parses the first whitespace token, for values carrying a
// unit suffix like `36.2 m Above Sea Level`.
func parseLeadingFloat(s string) float64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0.0
	}
	return parseFloat(fields[0])
}
