package number

import (
	"github.com/anthonyraymond/randomizer/pkg/algorithm"
	"github.com/anthonyraymond/randomizer/pkg/randutils"
	"golang.org/x/exp/constraints"
)

// Interval selects which bounds a between draw may return.
type Interval int

const (
	// ClosedOpen is [start, end).
	ClosedOpen Interval = iota
	// Closed is [start, end].
	Closed
	// OpenClosed draws over [start, end] and bumps a result equal to start by one,
	// so start+1 comes out about twice as often as the other values.
	OpenClosed
	// Open is (start, end).
	Open
)

func IntervalOf(includeMin bool, includeMax bool) Interval {
	switch {
	case includeMin && includeMax:
		return Closed
	case includeMin:
		return ClosedOpen
	case includeMax:
		return OpenClosed
	default:
		return Open
	}
}

func (i Interval) String() string {
	switch i {
	case ClosedOpen:
		return "[start, end)"
	case Closed:
		return "[start, end]"
	case OpenClosed:
		return "(start, end]"
	case Open:
		return "(start, end)"
	}
	return "unknown interval"
}

func between[T constraints.Signed](op string, start T, end T, iv Interval, src randutils.Source) (T, error) {
	lo := start
	var span T
	switch iv {
	case ClosedOpen:
		span = end - start
		if end <= start || span <= 0 {
			return 0, rangeErrorf(op, "empty or overflowing span for %v with start=%d end=%d", iv, start, end)
		}
	case Closed, OpenClosed:
		span = end - start + 1
		if end < start || (iv == OpenClosed && end == start) || span <= 0 {
			return 0, rangeErrorf(op, "empty or overflowing span for %v with start=%d end=%d", iv, start, end)
		}
	case Open:
		lo = start + 1
		span = end - lo
		if lo < start || end <= lo || span <= 0 {
			return 0, rangeErrorf(op, "empty or overflowing span for %v with start=%d end=%d", iv, start, end)
		}
	default:
		return 0, rangeErrorf(op, "unknown interval %d", int(iv))
	}

	v, err := boundedInt(op, span, algorithm.SecureRandom, src)
	if err != nil {
		return 0, err
	}
	v += lo
	if iv == OpenClosed && v == start {
		v++
	}
	return v, nil
}

func Int8Between(start int8, end int8, iv Interval, src randutils.Source) (int8, error) {
	return between("Int8Between", start, end, iv, src)
}

func Int16Between(start int16, end int16, iv Interval, src randutils.Source) (int16, error) {
	return between("Int16Between", start, end, iv, src)
}

func Int32Between(start int32, end int32, iv Interval, src randutils.Source) (int32, error) {
	return between("Int32Between", start, end, iv, src)
}

func Int64Between(start int64, end int64, iv Interval, src randutils.Source) (int64, error) {
	return between("Int64Between", start, end, iv, src)
}

func IntBetween(start int, end int, iv Interval, src randutils.Source) (int, error) {
	return between("IntBetween", start, end, iv, src)
}

// Float32Between draws over [start, end).
func Float32Between(start float32, end float32, src randutils.Source) (float32, error) {
	if !(end > start) {
		return 0, rangeErrorf("Float32Between", "end must be greater than start, got start=%v end=%v", start, end)
	}
	v, err := boundedFloat("Float32Between", end-start, algorithm.SecureRandom, src)
	if err != nil {
		return 0, err
	}
	return clampBelow(start+v, end), nil
}

// Float64Between draws over [start, end).
func Float64Between(start float64, end float64, src randutils.Source) (float64, error) {
	if !(end > start) {
		return 0, rangeErrorf("Float64Between", "end must be greater than start, got start=%v end=%v", start, end)
	}
	v, err := boundedFloat("Float64Between", end-start, algorithm.SecureRandom, src)
	if err != nil {
		return 0, err
	}
	return clampBelow(start+v, end), nil
}

func clampBelow[T constraints.Float](v T, end T) T {
	if v >= end {
		return below(end)
	}
	return v
}
