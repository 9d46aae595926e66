// Package timelike normalizes heterogeneous time-like and duration-like
// values into time.Time and time.Duration.
//
// Textual and numeric inputs always resolve to UTC instants. Already-typed
// inputs pass through unmodified; values attached to the process-local zone
// are accepted but flagged with a warning, since their meaning depends on the
// machine they were created on.
//
// All functions are stateless and safe for concurrent use.
package timelike

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/araddon/dateparse"

	"github.com/tartampluch/go-timelike/internal/config"
)

// ToTime converts anything time-like into a time.Time.
//
// Accepted inputs:
//   - string: a timestamp. Explicit layouts are tried first; anything else
//     goes through free-form parsing. Text without a zone designator is
//     interpreted as UTC.
//   - integer or float kinds: seconds since the Unix epoch, fractional
//     allowed. The result is UTC.
//   - time.Time: returned as-is. A value located in time.Local emits one
//     warning and is passed through without rewriting its zone.
//
// Parse failures and unsupported types are returned as errors; nothing is
// retried or corrected.
func ToTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		if t.Location() == time.Local {
			slog.Warn(config.MsgNaiveTimestamp, config.LogKeyComponent, config.CompCoerce)
		}
		return t, nil
	case string:
		return parseInstant(t)
	default:
		if s, ok := numericSeconds(v); ok {
			return fromEpochSeconds(s)
		}
		return time.Time{}, fmt.Errorf("%s: %T", config.ErrTimeType, v)
	}
}

// ToTimeAt resolves a value that is either time-like or a span relative to
// the given anchor. A time.Duration is added to the anchor; every other
// input is handled by ToTime.
func ToTimeAt(anchor time.Time, v any) (time.Time, error) {
	if d, ok := v.(time.Duration); ok {
		return anchor.Add(d), nil
	}
	return ToTime(v)
}

// parseInstant tries the explicit layouts before handing the text to
// dateparse. Both paths assume UTC when the text carries no offset.
func parseInstant(s string) (time.Time, error) {
	for _, layout := range config.InstantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", config.ErrInstantParse, err)
	}
	return t, nil
}

// fromEpochSeconds converts fractional seconds since the Unix epoch,
// preserving sub-second precision down to the nanosecond. NaN, infinities,
// and values whose second count does not fit an int64 are rejected rather
// than silently converted to garbage instants.
func fromEpochSeconds(s float64) (time.Time, error) {
	if math.IsNaN(s) || s < math.MinInt64 || s >= math.MaxInt64 {
		return time.Time{}, fmt.Errorf("%s: %v", config.ErrNumericRange, s)
	}
	sec := math.Floor(s)
	nsec := math.Round((s - sec) * float64(time.Second))
	return time.Unix(int64(sec), int64(nsec)).UTC(), nil
}

// numericSeconds widens any integer or float kind to a second count.
// It is the Go rendition of the dynamic "is this a number" branch.
func numericSeconds(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
