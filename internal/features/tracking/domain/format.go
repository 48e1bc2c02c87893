package domain

import (
	"time"

	orderdomain "parcel-lookup/internal/features/orders/domain"
)

// RelativeDayLabel renders an instant as "today", "yesterday" or "tomorrow"
// relative to now, judged on zone-local calendar dates, or as a medium
// date+time string in that zone otherwise.
//
// The comparison must use the calendar date as seen in timeZone, never the
// instant's own offset or an elapsed-time subtraction: two instants hours
// apart can sit on different calendar days depending on the zone, and DST
// transitions make millisecond arithmetic drift by a day.
func RelativeDayLabel(iso string, timeZone string, now time.Time) string {
	instant := orderdomain.ParseInstant(iso)
	if instant.IsZero() {
		return ""
	}
	loc := loadLocation(timeZone)

	local := instant.In(loc)
	localNow := now.In(loc)

	diff := civilDay(local.Date()) - civilDay(localNow.Date())

	switch diff {
	case 0:
		return "today"
	case -1:
		return "yesterday"
	case 1:
		return "tomorrow"
	}
	return local.Format("Jan 2, 2006, 3:04 PM")
}

// civilDay counts whole days from the proleptic epoch for a zone-local
// calendar date. Leap years follow the Gregorian rule: divisible by 4 and
// (not divisible by 100 or divisible by 400).
func civilDay(year int, month time.Month, day int) int {
	y := year - 1
	days := y*365 + y/4 - y/100 + y/400
	return days + dayOfYear(year, month, day) - 1
}

var daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

func dayOfYear(year int, month time.Month, day int) int {
	doy := daysBeforeMonth[month-1] + day
	if month > time.February && isLeapYear(year) {
		doy++
	}
	return doy
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// loadLocation resolves an IANA zone name, falling back to UTC for the empty
// string or unknown zones so that formatting stays total.
func loadLocation(timeZone string) *time.Location {
	if timeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// clockTime renders an instant's zone-local time of day as HH:MM, or an empty
// string for a malformed instant.
func clockTime(iso string, timeZone string) string {
	instant := orderdomain.ParseInstant(iso)
	if instant.IsZero() {
		return ""
	}
	return instant.In(loadLocation(timeZone)).Format("15:04")
}

// labelForDate labels a bare calendar date (YYYY-MM-DD) relative to now.
// The date is anchored at noon UTC so it keeps its calendar day in every zone
// within twelve hours of UTC.
func labelForDate(date string, timeZone string, now time.Time) string {
	return RelativeDayLabel(date+"T12:00:00Z", timeZone, now)
}

// formatAnnouncedDate renders a calendar date as "Mon, Jan 2, 2006".
func formatAnnouncedDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2, 2006")
}
