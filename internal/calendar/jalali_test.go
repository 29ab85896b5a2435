package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vosul/internal/calendar"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestToGregorian_KnownDates(t *testing.T) {
	tests := []struct {
		jy, jm, jd int
		want       time.Time
	}{
		{1402, 1, 1, date(2023, time.March, 21)},
		{1402, 6, 10, date(2023, time.September, 1)},
		{1399, 1, 1, date(2020, time.March, 20)},
		{1399, 10, 11, date(2020, time.December, 31)},
		{1403, 12, 30, date(2025, time.March, 20)},
		{1404, 1, 1, date(2025, time.March, 21)},
	}
	for _, tt := range tests {
		got, err := calendar.ToGregorian(tt.jy, tt.jm, tt.jd)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%d/%d/%d", tt.jy, tt.jm, tt.jd)
	}
}

func TestToGregorian_InvalidDay(t *testing.T) {
	_, err := calendar.ToGregorian(1402, 12, 30)
	assert.Error(t, err)

	_, err = calendar.ToGregorian(1402, 13, 1)
	assert.Error(t, err)

	_, err = calendar.ToGregorian(0, 1, 1)
	assert.Error(t, err)
}

func TestIsLeap(t *testing.T) {
	assert.True(t, calendar.IsLeap(1399))
	assert.True(t, calendar.IsLeap(1403))
	assert.False(t, calendar.IsLeap(1400))
	assert.False(t, calendar.IsLeap(1402))
}

func TestParse(t *testing.T) {
	got, ok := calendar.Parse("1402/06/10")
	require.True(t, ok)
	assert.Equal(t, date(2023, time.September, 1), got)

	got, ok = calendar.Parse(" 1402/6/10 ")
	require.True(t, ok)
	assert.Equal(t, date(2023, time.September, 1), got)

	got, ok = calendar.Parse("۱۴۰۲/۰۶/۱۰")
	require.True(t, ok)
	assert.Equal(t, date(2023, time.September, 1), got)
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "0", "0/0/0", "abc", "1402/06", "1402-06-10", "1402/12/30", "1402/06/xx"} {
		_, ok := calendar.Parse(s)
		assert.False(t, ok, "input %q", s)
	}
}

func TestFromGregorian_RoundTrip(t *testing.T) {
	start := date(2019, time.January, 1)
	for i := 0; i < 365*6; i++ {
		day := start.AddDate(0, 0, i)
		jy, jm, jd := calendar.FromGregorian(day)
		back, err := calendar.ToGregorian(jy, jm, jd)
		require.NoError(t, err, "%s -> %d/%d/%d", day.Format("2006-01-02"), jy, jm, jd)
		require.Equal(t, day, back)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1401/12/29", calendar.Format(date(2023, time.March, 20)))
	assert.Equal(t, "1403/12/30", calendar.Format(date(2025, time.March, 20)))
	assert.Equal(t, "1402/06/10", calendar.Format(date(2023, time.September, 1)))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 30, calendar.DaysBetween(date(2023, time.October, 1), date(2023, time.September, 1)))
	assert.Equal(t, -30, calendar.DaysBetween(date(2023, time.September, 1), date(2023, time.October, 1)))
	assert.Equal(t, 0, calendar.DaysBetween(date(2023, time.September, 1), date(2023, time.September, 1)))
}

func TestDaysBetween_LongSpan(t *testing.T) {
	recent, ok := calendar.Parse("1402/01/01")
	require.True(t, ok)
	typo, ok := calendar.Parse("0900/01/01")
	require.True(t, ok)

	want := int((recent.Unix() - typo.Unix()) / 86400)
	assert.Equal(t, want, calendar.DaysBetween(recent, typo))
	assert.Greater(t, calendar.DaysBetween(recent, typo), 183000)
	assert.Equal(t, -calendar.DaysBetween(recent, typo), calendar.DaysBetween(typo, recent))
}

func TestToGregorian_LeapYearEnd(t *testing.T) {
	got, err := calendar.ToGregorian(1399, 12, 30)
	require.NoError(t, err)
	assert.Equal(t, date(2021, time.March, 20), got)
}
