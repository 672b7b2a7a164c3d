package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseCoordinate(t *testing.T) {
	t.Run("North", func(t *testing.T) {
		require.InDelta(t, 35.626528, ParseCoordinate(`35 deg 37' 35.50" N`), 1e-6)
	})
	t.Run("East", func(t *testing.T) {
		require.InDelta(t, 139.741672, ParseCoordinate(`139 deg 44' 30.02" E`), 1e-6)
	})
	t.Run("South is negative", func(t *testing.T) {
		require.InDelta(t, -33.868056, ParseCoordinate(`33 deg 52' 5.0" S`), 1e-6)
	})
	t.Run("West is negative", func(t *testing.T) {
		require.InDelta(t, -122.419417, ParseCoordinate(`122 deg 25' 9.9" W`), 1e-6)
	})
}

func TestParseCoordinateMalformed(t *testing.T) {
	for name, input := range map[string]string{
		"empty":           "",
		"missing quote":   `35 deg 37' 35.50 N`,
		"wrong direction": `35 deg 37' 35.50" X`,
		"non numeric":     `aa deg bb' cc" N`,
		"decimal only":    `35.626528`,
		"missing minutes": `35 deg 35.50" N`,
		"leading garbage": `lat: 35 deg 37' 35.50" N`,
	} {
		t.Run(name, func(t *testing.T) {
			require.Zero(t, ParseCoordinate(input))
		})
	}
}

func TestParseGpsTime(t *testing.T) {
	expected := time.Date(2025, 6, 30, 2, 13, 56, 0, time.UTC)

	parsed, ok := ParseGpsTime("2025:06:30 02:13:56Z")
	require.True(t, ok)
	require.Equal(t, expected, parsed)
}

func TestParseGpsTimeTruncatesFraction(t *testing.T) {
	whole, ok := ParseGpsTime("2025:06:30 02:13:56Z")
	require.True(t, ok)

	fractional, ok := ParseGpsTime("2025:06:30 02:13:56.9Z")
	require.True(t, ok)

	require.Equal(t, whole, fractional)
}

func TestParseGpsTimeInvalid(t *testing.T) {
	for name, input := range map[string]string{
		"empty":          "",
		"dashes":         "2025-06-30 02:13:56Z",
		"time only":      "02:13:56Z",
		"not a date":     "n/a",
		"month overflow": "2025:13:30 02:13:56Z",
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := ParseGpsTime(input)
			require.False(t, ok)
		})
	}
}
