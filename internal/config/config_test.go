package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-timelike/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty.
// This prevents accidental deletion of keys required at runtime.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"MsgNaiveTimestamp", config.MsgNaiveTimestamp},
		{"RouteInstant", config.RouteInstant},
		{"RouteDuration", config.RouteDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestInstantLayouts_Parseable verifies every explicit layout round-trips a
// reference instant, so a malformed layout cannot slip in unnoticed.
func TestInstantLayouts_Parseable(t *testing.T) {
	ref := time.Date(2017, 1, 14, 12, 30, 45, 0, time.UTC)

	for _, layout := range config.InstantLayouts {
		t.Run(layout, func(t *testing.T) {
			parsed, err := time.Parse(layout, ref.Format(layout))
			assert.NoError(t, err, "layout %q must parse its own output", layout)
			assert.False(t, parsed.IsZero())
		})
	}
}

// TestDurationUnits_Sanity checks the component unit table.
func TestDurationUnits_Sanity(t *testing.T) {
	expected := map[string]time.Duration{
		config.UnitWeeks:        7 * 24 * time.Hour,
		config.UnitDays:         24 * time.Hour,
		config.UnitHours:        time.Hour,
		config.UnitMinutes:      time.Minute,
		config.UnitSeconds:      time.Second,
		config.UnitMilliseconds: time.Millisecond,
		config.UnitMicroseconds: time.Microsecond,
		config.UnitNanoseconds:  time.Nanosecond,
	}

	assert.Equal(t, expected, config.DurationUnits)
}

// TestTimeoutsAndLimits ensures operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	assert.Greater(t, config.ShutdownTimeout, time.Duration(0))
	assert.Greater(t, config.ServerReadTimeout, time.Duration(0))
	assert.Greater(t, config.ServerWriteTimeout, time.Duration(0))
	assert.NotEmpty(t, config.DefaultPort)
}
