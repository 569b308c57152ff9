package handlers

import (
	"fmt"
	"time"
)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// formatDisplayDate renders t the way id-ID locales print a long date with
// time, e.g. "17 Oktober 2026 pukul 14.05".
func formatDisplayDate(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%d %s %d pukul %02d.%02d",
		t.Day(), indonesianMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// formatDay renders the calendar day of t in loc as YYYY-MM-DD.
func formatDay(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("2006-01-02")
}

// parseBound parses a range bound from the query string. RFC 3339 instants
// are taken as-is. A bare YYYY-MM-DD is the start of that day in loc, or its
// last instant when endOfDay is set.
func parseBound(raw string, loc *time.Location, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return &t, nil
	}
	day, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		day = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &day, nil
}
