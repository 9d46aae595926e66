package timelike

import (
	"fmt"
	"math"
	"time"

	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/tartampluch/go-timelike/internal/config"
)

// ToDuration converts anything duration-like into a time.Duration.
//
// Accepted inputs:
//   - integer or float kinds: a count of seconds, fractional allowed.
//   - string: a duration expression using Go units plus days ("2d") and
//     weeks ("1w").
//   - time.Duration: returned as-is.
//   - map[string]float64: named components, see DurationFrom.
//   - nil: the zero duration.
//
// Sign and sub-second precision are preserved on every branch.
func ToDuration(v any) (time.Duration, error) {
	switch d := v.(type) {
	case nil:
		return 0, nil
	case time.Duration:
		return d, nil
	case string:
		dur, err := str2duration.ParseDuration(d)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", config.ErrDurationParse, err)
		}
		return dur, nil
	case map[string]float64:
		return DurationFrom(d)
	default:
		if s, ok := numericSeconds(v); ok {
			return fromSeconds(s)
		}
		return 0, fmt.Errorf("%s: %T", config.ErrDurationType, v)
	}
}

// DurationFrom builds a duration from named components, e.g.
// {"hours": 2, "minutes": 30}. Supported names are weeks, days, hours,
// minutes, seconds, milliseconds, microseconds and nanoseconds. An empty or
// nil map yields the zero duration; an unknown name is an error.
func DurationFrom(components map[string]float64) (time.Duration, error) {
	var total float64
	for name, amount := range components {
		unit, ok := config.DurationUnits[name]
		if !ok {
			return 0, fmt.Errorf("%s: %q", config.ErrUnknownComponent, name)
		}
		total += amount * float64(unit)
	}
	if math.IsNaN(total) || total < math.MinInt64 || total >= math.MaxInt64 {
		return 0, fmt.Errorf("%s: %v seconds", config.ErrNumericRange, total/float64(time.Second))
	}
	return time.Duration(math.Round(total)), nil
}

// fromSeconds converts fractional seconds, rounding to the nearest
// nanosecond. NaN, infinities, and second counts whose nanosecond total
// does not fit an int64 are rejected, so the sign of the input can never
// be flipped by overflow.
func fromSeconds(s float64) (time.Duration, error) {
	ns := s * float64(time.Second)
	if math.IsNaN(ns) || ns < math.MinInt64 || ns >= math.MaxInt64 {
		return 0, fmt.Errorf("%s: %v", config.ErrNumericRange, s)
	}
	return time.Duration(math.Round(ns)), nil
}
