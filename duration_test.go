package timelike_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	timelike "github.com/tartampluch/go-timelike"
	"github.com/tartampluch/go-timelike/internal/config"
)

// TestToDuration_Numeric verifies that numeric inputs are read as seconds,
// with sign and sub-second precision preserved.
func TestToDuration_Numeric(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  time.Duration
	}{
		{"Integer seconds", 60, time.Minute},
		{"Int64 seconds", int64(3600), time.Hour},
		{"Fractional seconds", 90.5, 90*time.Second + 500*time.Millisecond},
		{"Negative seconds", -15.0, -15 * time.Second},
		{"Sub-millisecond fraction", 0.000001, time.Microsecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timelike.ToDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestToDuration_Text verifies the textual grammar: Go units plus days and
// weeks, with sign support.
func TestToDuration_Text(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"Hours and minutes", "1h30m", 90 * time.Minute},
		{"Days", "2d", 48 * time.Hour},
		{"Weeks and days", "1w2d", 9 * 24 * time.Hour},
		{"Negative", "-15m", -15 * time.Minute},
		{"Sub-second", "1.5s", 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timelike.ToDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestToDuration_Passthrough ensures already-typed durations and nil input
// take the trivial branches.
func TestToDuration_Passthrough(t *testing.T) {
	got, err := timelike.ToDuration(42 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, 42*time.Second, got)

	zero, err := timelike.ToDuration(nil)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), zero, "absent input with no components is the zero duration")
}

// TestDurationFrom verifies construction from named components.
func TestDurationFrom(t *testing.T) {
	tests := []struct {
		name       string
		components map[string]float64
		want       time.Duration
	}{
		{"Empty map", map[string]float64{}, 0},
		{"Nil map", nil, 0},
		{"Two hours", map[string]float64{"hours": 2}, 2 * time.Hour},
		{
			name:       "Mixed components",
			components: map[string]float64{"days": 1, "milliseconds": 250},
			want:       24*time.Hour + 250*time.Millisecond,
		},
		{"Fractional component", map[string]float64{"minutes": 1.5}, 90 * time.Second},
		{"Negative component", map[string]float64{"hours": -2}, -2 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timelike.DurationFrom(tt.components)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestToDuration_ComponentMap ensures the map variant goes through the same
// component table as DurationFrom.
func TestToDuration_ComponentMap(t *testing.T) {
	got, err := timelike.ToDuration(map[string]float64{"weeks": 1})
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, got)
}

// TestToDuration_Errors verifies that malformed text, unknown component
// names, and unsupported types all surface as errors.
func TestToDuration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		errText string
	}{
		{"Missing unit", "90", config.ErrDurationParse},
		{"Garbage text", "soon", config.ErrDurationParse},
		{"Unknown component", map[string]float64{"fortnights": 1}, config.ErrUnknownComponent},
		{"Unsupported type", struct{}{}, config.ErrDurationType},
		{"NaN seconds", math.NaN(), config.ErrNumericRange},
		{"Positive infinity", math.Inf(1), config.ErrNumericRange},
		{"Negative infinity", math.Inf(-1), config.ErrNumericRange},
		{"Beyond int64 nanoseconds", 1e12, config.ErrNumericRange},
		{"Beyond negative int64 nanoseconds", -1e12, config.ErrNumericRange},
		{"Overflowing components", map[string]float64{"hours": 1e300}, config.ErrNumericRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := timelike.ToDuration(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

// TestToDuration_RoundTrip checks that converting a duration to seconds and
// back yields an equal duration.
func TestToDuration_RoundTrip(t *testing.T) {
	inputs := []any{"1h30m", 90.5, map[string]float64{"days": 1, "seconds": 0.25}}

	for _, in := range inputs {
		d, err := timelike.ToDuration(in)
		require.NoError(t, err)

		back, err := timelike.ToDuration(d.Seconds())
		require.NoError(t, err)
		assert.Equal(t, d, back, "round-trip through seconds must be lossless for %v", in)
	}
}
