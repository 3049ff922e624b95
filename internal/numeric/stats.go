// Package numeric provides stateless numeric helpers: column statistics,
// safe ratio math, and locale-aware number formatting for display.
package numeric

import "errors"

// Aggregation errors.
var (
	ErrEmptyInput   = errors.New("cannot summarize empty input")
	ErrZeroTotal    = errors.New("total must be non-zero")
	ErrNoValues     = errors.New("no values found")
	ErrDivideByZero = errors.New("division by zero")
)

// Summary describes one numeric series.
type Summary struct {
	Count int     `json:"count" yaml:"count"`
	Sum   float64 `json:"sum" yaml:"sum"`
	Mean  float64 `json:"mean" yaml:"mean"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
}

// Summarize computes count, sum, mean, min, and max over values. Empty
// input fails with ErrEmptyInput rather than returning a zero Summary.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptyInput
	}

	s := Summary{
		Count: len(values),
		Min:   values[0],
		Max:   values[0],
	}
	for _, v := range values {
		s.Sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = s.Sum / float64(s.Count)
	return s, nil
}

// Percentage returns part as a percentage of total. A zero total fails
// with ErrZeroTotal.
func Percentage(part, total float64) (float64, error) {
	if total == 0 {
		return 0, ErrZeroTotal
	}
	return part / total * 100, nil
}

// Divide returns a/b, failing with ErrDivideByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// Coerce widens any Go numeric kind to float64. The bool reports whether
// the value was numeric at all; strings and other kinds are not parsed.
func Coerce(v any) (float64, bool) {
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
