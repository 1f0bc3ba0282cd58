// utils/dates.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the storage form of a calendar date.
const DateLayout = "2006-01-02"

// BeginningOfDay returns the calendar date of t as midnight UTC.
// Calendar dates are always held in UTC so AddDate never crosses a DST change.
func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekStart returns the Monday on or before d.
func WeekStart(d time.Time) time.Time {
	d = BeginningOfDay(d)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// MonthStart returns the first day of the month containing d.
func MonthStart(d time.Time) time.Time {
	year, month, _ := d.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of the month containing d.
func MonthEnd(d time.Time) time.Time {
	return MonthStart(d).AddDate(0, 1, -1)
}

// TimeSlots lists HH:MM labels from startHour:00 to endHour:00 inclusive.
func TimeSlots(startHour, endHour, stepMinutes int) []string {
	if stepMinutes <= 0 || endHour < startHour {
		return nil
	}
	var slots []string
	for mins := startHour * 60; mins <= endHour*60; mins += stepMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", mins/60, mins%60))
	}
	return slots
}

// NormalizeTime converts "9:30", "09:30", "9:30 AM" or "9:30pm" into 24-hour HH:MM.
func NormalizeTime(s string) (string, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	meridiem := ""
	for _, suffix := range []string{"AM", "PM"} {
		if strings.HasSuffix(raw, suffix) {
			meridiem = suffix
			raw = strings.TrimSpace(strings.TrimSuffix(raw, suffix))
			break
		}
	}

	hh, mm, ok := strings.Cut(raw, ":")
	if !ok || len(mm) != 2 || len(hh) == 0 || len(hh) > 2 || !allDigits(hh) || !allDigits(mm) {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid time %q: minutes out of range", s)
	}

	switch meridiem {
	case "":
		if hour < 0 || hour > 23 {
			return "", fmt.Errorf("invalid time %q: hour out of range", s)
		}
	default:
		if hour < 1 || hour > 12 {
			return "", fmt.Errorf("invalid time %q: hour out of range", s)
		}
		hour %= 12
		if meridiem == "PM" {
			hour += 12
		}
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ClockLabel renders a canonical HH:MM as a 12-hour label such as "9:30 AM".
// Labels that do not parse are returned unchanged.
func ClockLabel(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}
