// Package calendar parses and formats Jalali (Solar Hijri) dates. Dates are
// represented as Gregorian midnight UTC; the conversion itself is done by
// ptime.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

const (
	MinYear = 1
	MaxYear = 3177
)

const secondsPerDay = 24 * 60 * 60

// ValidDate reports whether jy/jm/jd names an existing Jalali day.
func ValidDate(jy, jm, jd int) bool {
	if jy < MinYear || jy > MaxYear || jm < 1 || jm > 12 || jd < 1 || jd > 31 {
		return false
	}
	// An overflowing day lands in the next month once it goes through Gregorian
	p := ptime.New(ptime.Date(jy, ptime.Month(jm), jd, 0, 0, 0, 0, time.UTC).Time())
	return p.Year() == jy && int(p.Month()) == jm && p.Day() == jd
}

// IsLeap reports whether jy is a Jalali leap year.
func IsLeap(jy int) bool {
	return ValidDate(jy, 12, 30)
}

// ToGregorian returns midnight UTC of the Gregorian day matching jy/jm/jd.
func ToGregorian(jy, jm, jd int) (time.Time, error) {
	if !ValidDate(jy, jm, jd) {
		return time.Time{}, fmt.Errorf("invalid jalali date %d/%d/%d", jy, jm, jd)
	}
	g := ptime.Date(jy, ptime.Month(jm), jd, 0, 0, 0, 0, time.UTC).Time()
	return time.Date(g.Year(), g.Month(), g.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FromGregorian returns the Jalali year, month and day of t's calendar date.
func FromGregorian(t time.Time) (jy, jm, jd int) {
	p := ptime.New(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	return p.Year(), int(p.Month()), p.Day()
}

// Parse converts a "YYYY/MM/DD" Jalali string into a Gregorian date. Persian
// and Arabic-Indic digits are accepted. ok is false for any input that does
// not name an existing Jalali day.
func Parse(s string) (t time.Time, ok bool) {
	parts := strings.Split(normalizeDigits(strings.TrimSpace(s)), "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	var ymd [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		ymd[i] = n
	}
	t, err := ToGregorian(ymd[0], ymd[1], ymd[2])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Format renders t as a zero-padded "YYYY/MM/DD" Jalali string.
func Format(t time.Time) string {
	jy, jm, jd := FromGregorian(t)
	return fmt.Sprintf("%04d/%02d/%02d", jy, jm, jd)
}

// DaysBetween returns the signed number of calendar days from b to a. It
// works on Unix seconds, so spans longer than time.Duration allows stay exact.
func DaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int((ad.Unix() - bd.Unix()) / secondsPerDay)
}

func normalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		}
		return r
	}, s)
}
