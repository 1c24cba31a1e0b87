// Package record implements lightweight-record assembly: turning a parsed
// header.Map and a raw message's byte offsets into a MessageRecord, plus
// the strptime-style date parser the assembly step relies on.
package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrDateMismatch is returned when a date string does not match the
// supplied format at the position where they first diverge.
var ErrDateMismatch = errors.New("record: date does not match format")

// ErrDateIncomplete is returned when a Date lacks enough fields (year,
// month, day) to be converted to a Unix timestamp.
var ErrDateIncomplete = errors.New("record: date is missing year, month, or day")

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Date is a parsed calendar date and time of day, mirroring the original
// mboxDate struct. Every field defaults to -1 to mean "not set".
type Date struct {
	Sec, Min, Hour int
	MDay, Mon      int // Mon is 0-based (January == 0)
	Year           int
	WDay           int
	ZoneDiff       int // signed HHMM, e.g. -500 for "-0500"; -1 means unset
}

func newDate() *Date {
	return &Date{Sec: -1, Min: -1, Hour: -1, MDay: -1, Mon: -1, Year: -1, WDay: -1, ZoneDiff: -1}
}

// ParseDate parses s against a strptime-style format string supporting
// %a, %b, %d, %m, %Y, %H, %M, %S, %p, and %z. Any other character in
// format must match s literally. Trailing input after the last specifier
// is tolerated.
func ParseDate(s, format string) (*Date, error) {
	d := newDate()
	i, j := 0, 0

	for i < len(format) {
		if format[i] != '%' {
			if j >= len(s) || s[j] != format[i] {
				return nil, fmt.Errorf("%w: %q vs %q at format offset %d", ErrDateMismatch, s, format, i)
			}
			i++
			j++
			continue
		}

		i++
		if i >= len(format) {
			break
		}
		spec := format[i]
		i++

		switch spec {
		case 'a':
			idx := matchName(s[j:], weekdayNames)
			if idx < 0 {
				return nil, fmt.Errorf("%w: bad weekday in %q", ErrDateMismatch, s)
			}
			d.WDay = idx
			j += 3
		case 'b':
			idx := matchName(s[j:], monthNames)
			if idx < 0 {
				return nil, fmt.Errorf("%w: bad month in %q", ErrDateMismatch, s)
			}
			d.Mon = idx
			j += 3
		case 'd':
			n, adv, ok := parseDigits(s[j:], 1, 2)
			if !ok {
				return nil, fmt.Errorf("%w: bad day in %q", ErrDateMismatch, s)
			}
			d.MDay = n
			j += adv
		case 'm':
			n, adv, ok := parseDigits(s[j:], 1, 2)
			if !ok {
				return nil, fmt.Errorf("%w: bad month number in %q", ErrDateMismatch, s)
			}
			d.Mon = n - 1
			j += adv
		case 'Y':
			n, adv, ok := parseDigits(s[j:], 4, 4)
			if !ok {
				return nil, fmt.Errorf("%w: bad year in %q", ErrDateMismatch, s)
			}
			d.Year = n
			j += adv
		case 'H':
			n, adv, ok := parseDigits(s[j:], 1, 2)
			if !ok {
				return nil, fmt.Errorf("%w: bad hour in %q", ErrDateMismatch, s)
			}
			d.Hour = n
			j += adv
		case 'M':
			n, adv, ok := parseDigits(s[j:], 1, 2)
			if !ok {
				return nil, fmt.Errorf("%w: bad minute in %q", ErrDateMismatch, s)
			}
			d.Min = n
			j += adv
		case 'S':
			n, adv, ok := parseDigits(s[j:], 1, 2)
			if !ok {
				return nil, fmt.Errorf("%w: bad second in %q", ErrDateMismatch, s)
			}
			d.Sec = n
			j += adv
		case 'p':
			// The AM/PM adjustment is applied immediately, against
			// whatever hour has already been parsed, matching the
			// original's ordering. Format strings always place %p after
			// %H, so this is equivalent to applying it once at the end.
			if j+2 <= len(s) {
				tag := strings.ToUpper(s[j : j+2])
				if tag == "AM" && d.Hour == 12 {
					d.Hour = 0
				} else if tag == "PM" && d.Hour >= 1 && d.Hour < 12 {
					d.Hour += 12
				}
				j += 2
			}
		case 'z':
			sign := 1
			if j < len(s) && (s[j] == '+' || s[j] == '-') {
				if s[j] == '-' {
					sign = -1
				}
				j++
			}
			n, adv, ok := parseDigits(s[j:], 4, 4)
			if !ok {
				return nil, fmt.Errorf("%w: bad zone offset in %q", ErrDateMismatch, s)
			}
			d.ZoneDiff = sign * n
			j += adv
		}
	}

	return d, nil
}

func matchName(s string, names []string) int {
	if len(s) < 3 {
		return -1
	}
	prefix := strings.ToUpper(s[:3])
	for i, name := range names {
		if strings.ToUpper(name) == prefix {
			return i
		}
	}
	return -1
}

func parseDigits(s string, minLen, maxLen int) (int, int, bool) {
	n := 0
	for n < maxLen && n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n < minLen {
		return 0, 0, false
	}
	val, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, 0, false
	}
	return val, n, true
}

// ToUnix converts d to a Unix seconds count, building the calendar date in
// UTC and then applying the zone_diff adjustment exactly as the original
// mboxDateStructToUnix does: subtract the offset for a positive ("ahead of
// UTC") zone, add it for a negative one.
func (d *Date) ToUnix() (int64, error) {
	if d.Year < 0 || d.Mon < 0 || d.MDay < 0 {
		return 0, ErrDateIncomplete
	}
	hour, min, sec := d.Hour, d.Min, d.Sec
	if hour < 0 {
		hour = 0
	}
	if min < 0 {
		min = 0
	}
	if sec < 0 {
		sec = 0
	}

	t := time.Date(d.Year, time.Month(d.Mon+1), d.MDay, hour, min, sec, 0, time.UTC)
	ts := t.Unix()

	if d.ZoneDiff != -1 && d.ZoneDiff != 0 {
		hourDiff := int64(abs(d.ZoneDiff) / 100)
		minDiff := int64(abs(d.ZoneDiff) % 100)
		offset := hourDiff*3600 + minDiff*60
		if d.ZoneDiff < 0 {
			ts += offset
		} else {
			ts -= offset
		}
	}

	return ts, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// candidateFormats are the date forms the core has been shown to need
// (spec.md scenarios 3 and 4, and the RFC-822-ish form assembly uses by
// default). ParseDateAny tries each before giving up.
var candidateFormats = []string{
	"%d %b %Y %H:%M:%S %z",
	"%a, %d %b %Y %H:%M:%S %z",
	"%a %b %d %H:%M:%S %z %Y",
}

// ParseDateAny tries each of candidateFormats in turn, then falls back to
// github.com/araddon/dateparse for a caller that doesn't know the exact
// format a given mailer used, mirroring the teacher's own multi-strategy
// date accessor. It returns 0 and false if nothing matches.
func ParseDateAny(s string) (int64, bool) {
	for _, format := range candidateFormats {
		d, err := ParseDate(s, format)
		if err != nil {
			continue
		}
		ts, err := d.ToUnix()
		if err != nil {
			continue
		}
		return ts, true
	}

	if t, err := dateparse.ParseAny(s); err == nil {
		return t.Unix(), true
	}

	return 0, false
}
