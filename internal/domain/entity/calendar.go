package entity

import "time"

// DateLayout is the wire and storage layout for calendar dates.
const DateLayout = "2006-01-02"

// RecordState replaces the boolean "active" flag on catalog records.
type RecordState string

const (
	RecordStateActive  RecordState = "ACTIVE"
	RecordStateRemoved RecordState = "REMOVED"
)

// DateOf truncates t to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func ISOWeekday(date time.Time) int {
	return (int(date.Weekday())+6)%7 + 1
}

// DateRangeContains reports whether date lies in [start, end], inclusive on both ends.
func DateRangeContains(start, end, date time.Time) bool {
	date = DateOf(date)
	return !date.Before(DateOf(start)) && !date.After(DateOf(end))
}

// DateRangesOverlap reports whether [aStart, aEnd] and [bStart, bEnd] share at least one day.
func DateRangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !DateOf(aStart).After(DateOf(bEnd)) && !DateOf(bStart).After(DateOf(aEnd))
}
