// Package humantime formats durations as human-friendly text such as
// "2 hours ago" or "1 day, 3 hours, and 4 seconds".
package humantime

import (
	"fmt"
	"strings"
	"time"
)

// Accuracy selects between a single rounded period and a full breakdown.
type Accuracy int

const (
	Rough Accuracy = iota
	Precise
)

// Tense selects whether " ago" is appended.
type Tense int

const (
	Present Tense = iota
	Past
)

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	week   = 7 * day
	month  = 30 * day
	year   = 365 * day
)

type unit struct {
	singular string
	article  string
}

var (
	unitSecond = unit{"second", "a"}
	unitMinute = unit{"minute", "a"}
	unitHour   = unit{"hour", "an"}
	unitDay    = unit{"day", "a"}
	unitWeek   = unit{"week", "a"}
	unitMonth  = unit{"month", "a"}
	unitYear   = unit{"year", "a"}
)

// period is n units; a zero unit means "now".
type period struct {
	n int64
	u unit
}

func (p period) text(acc Accuracy) string {
	if p.u.singular == "" {
		return "now"
	}
	if p.n == 1 {
		if acc == Rough {
			return p.u.article + " " + p.u.singular
		}
		return "1 " + p.u.singular
	}
	return fmt.Sprintf("%d %ss", p.n, p.u.singular)
}

// Duration is a signed span of time. Negative values lie in the past.
type Duration time.Duration

// Since returns the span from now to t, negative when t is before now.
func Since(t, now time.Time) Duration {
	return Duration(t.Sub(now))
}

func (d Duration) seconds() int64 {
	return int64(time.Duration(d) / time.Second)
}

// Tense reports the natural tense of d at the given accuracy: roughly
// instantaneous spans are present, negative spans are past.
func (d Duration) Tense(acc Accuracy) Tense {
	s := d.seconds()
	if acc == Rough && s > -11 && s < 11 {
		return Present
	}
	if d < 0 {
		return Past
	}
	return Present
}

// Text renders d at the given accuracy and tense.
func (d Duration) Text(acc Accuracy, tense Tense) string {
	var periods []period
	if acc == Rough {
		periods = []period{d.roughPeriod()}
	} else {
		periods = d.precisePeriods()
	}

	parts := make([]string, len(periods))
	for i, p := range periods {
		parts[i] = p.text(acc)
	}

	var text string
	switch len(parts) {
	case 1:
		text = parts[0]
	case 2:
		text = parts[0] + " and " + parts[1]
	default:
		text = strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}

	if tense == Past {
		return text + " ago"
	}
	return text
}

// String renders d roughly in its natural tense.
func (d Duration) String() string {
	return d.Text(Rough, d.Tense(Rough))
}

// Precise renders d in full in its natural tense.
func (d Duration) Precise() string {
	return d.Text(Precise, d.Tense(Precise))
}

func (d Duration) roughPeriod() period {
	n := d.seconds()
	if n < 0 {
		n = -n
	}
	switch {
	case n > 547*day: // ~1.5y
		return period{max(n/year, 2), unitYear}
	case n > 345*day: // ~11m
		return period{1, unitYear}
	case n > 45*day: // ~1.5m
		return period{max(n/month, 2), unitMonth}
	case n > 29*day:
		return period{1, unitMonth}
	case n > 10*day+12*hour:
		return period{max(n/week, 2), unitWeek}
	case n > 6*day+12*hour:
		return period{1, unitWeek}
	case n > 36*hour:
		return period{max(n/day, 2), unitDay}
	case n > 22*hour:
		return period{1, unitDay}
	case n > 90*minute:
		return period{max(n/hour, 2), unitHour}
	case n > 45*minute:
		return period{1, unitHour}
	case n > 90:
		return period{max(n/minute, 2), unitMinute}
	case n > 45:
		return period{1, unitMinute}
	case n > 10:
		return period{n, unitSecond}
	default:
		return period{}
	}
}

func (d Duration) precisePeriods() []period {
	rem := d.seconds()
	var periods []period
	split := func(size int64, u unit) {
		n := rem / size
		rem -= n * size
		if n < 0 {
			n = -n
		}
		if n > 0 {
			periods = append(periods, period{n, u})
		}
	}
	split(year, unitYear)
	split(month, unitMonth)
	split(week, unitWeek)
	split(day, unitDay)
	split(hour, unitHour)
	split(minute, unitMinute)
	split(1, unitSecond)

	if len(periods) == 0 {
		periods = append(periods, period{0, unitSecond})
	}
	return periods
}
