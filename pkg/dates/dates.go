// Package dates generates random dates, times of day and time zones.
package dates

import (
	"math"
	"time"
	_ "time/tzdata"

	"github.com/anthonyraymond/randomizer/pkg/algorithm"
	"github.com/anthonyraymond/randomizer/pkg/number"
	"github.com/anthonyraymond/randomizer/pkg/randutils"
	"github.com/pkg/errors"
)

const (
	day = 24 * time.Hour

	// DefaultDayRange bounds Date, After and Before when no range is given.
	DefaultDayRange = 10000
)

var now = time.Now

// Date is now shifted by up to DefaultDayRange days in either direction.
func Date(src randutils.Source) time.Time {
	if number.Bool(src) {
		t, _ := After(now(), DefaultDayRange, src)
		return t
	}
	t, _ := Before(now(), DefaultDayRange, src)
	return t
}

// After adds a random count of days in [0, days) to t.
func After(t time.Time, days int, src randutils.Source) (time.Time, error) {
	n, err := number.IntN(days, algorithm.SecureRandom, src)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "invalid day range")
	}
	return t.AddDate(0, 0, n), nil
}

// Before subtracts a random count of days in [0, days) from t.
func Before(t time.Time, days int, src randutils.Source) (time.Time, error) {
	n, err := number.IntN(days, algorithm.SecureRandom, src)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "invalid day range")
	}
	return t.AddDate(0, 0, -n), nil
}

// Between draws a time in [start, end).
func Between(start time.Time, end time.Time, src randutils.Source) (time.Time, error) {
	if !end.After(start) {
		return time.Time{}, errors.Errorf("end '%s' must be after start '%s'", end, start)
	}
	span := end.Sub(start)
	if span < time.Duration(math.MaxInt64) {
		offset, err := number.Int64N(int64(span), algorithm.SecureRandom, src)
		if err != nil {
			return time.Time{}, err
		}
		return start.Add(time.Duration(offset)), nil
	}

	// the span does not fit a Duration, draw whole seconds instead
	offset, err := number.Int64N(end.Unix()-start.Unix(), algorithm.SecureRandom, src)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(start.Unix()+offset, int64(start.Nanosecond())).In(start.Location()), nil
}

// Birthday is a date between about 55 and 8 years ago.
func Birthday(src randutils.Source) time.Time {
	past := now().AddDate(0, 0, -20000)
	recent := now().AddDate(0, 0, -3000)
	t, _ := Between(past, recent, src)
	return t
}

// DaysBetween shifts from by a count of days in [startDays, endDays].
func DaysBetween(from time.Time, startDays int, endDays int, src randutils.Source) (time.Time, error) {
	n, err := number.IntBetween(startDays, endDays, number.Closed, src)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "invalid day bounds")
	}
	return from.AddDate(0, 0, n), nil
}

// TimeOfDay is a duration in [0, 24h) at second precision.
func TimeOfDay(src randutils.Source) time.Duration {
	secs, _ := number.Int64N(int64(day/time.Second), algorithm.SecureRandom, src)
	return time.Duration(secs) * time.Second
}

// Clock is today's date at a random time of day, in loc.
func Clock(loc *time.Location, src randutils.Source) time.Time {
	y, m, d := now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(TimeOfDay(src))
}
