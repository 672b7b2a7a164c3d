package telemetry

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var coordinate = regexp.MustCompile(`^(\d+)\s*deg\s*(\d+)'\s*([\d.]+)"\s*([NSEW])`)

const gpsTimeLayout = "2006:01:02 15:04:05"

// ParseCoordinate converts a sexagesimal coordinate like
// `35 deg 37' 35.50" N` into signed decimal degrees.
// Anything that does not match yields 0.
func ParseCoordinate(s string) float64 {
	match := coordinate.FindStringSubmatch(s)
	if match == nil {
		return 0.0
	}

	degrees, err := strconv.Atoi(match[1])
	if err != nil {
		return 0.0
	}
	minutes, err := strconv.Atoi(match[2])
	if err != nil {
		return 0.0
	}
	seconds, err := strconv.ParseFloat(match[3], 64)
	if err != nil {
		return 0.0
	}

	decimal := float64(degrees) + float64(minutes)/60 + seconds/3600

	if match[4] == "S" || match[4] == "W" {
		decimal = -decimal
	}

	return decimal
}

// ParseGpsTime parses a GPS timestamp like `2025:06:30 02:13:56.9Z`.
// Fractional seconds are truncated, not rounded.
func ParseGpsTime(s string) (time.Time, bool) {
	clean := strings.TrimSpace(strings.ReplaceAll(s, "Z", ""))
	if dot := strings.Index(clean, "."); dot != -1 {
		clean = clean[:dot]
	}

	t, err := time.Parse(gpsTimeLayout, clean)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
