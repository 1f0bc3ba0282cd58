package utils

import (
	"testing"
	"time"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in, want string
		wantErr  bool
	}{
		{"09:30", "09:30", false},
		{"9:30", "09:30", false},
		{"9:30 AM", "09:30", false},
		{"12:00 am", "00:00", false},
		{"12:30 PM", "12:30", false},
		{"1:00pm", "13:00", false},
		{"18:00", "18:00", false},
		{"24:00", "", true},
		{"13:00 PM", "", true},
		{"9:3", "", true},
		{"noon", "", true},
		{"+9:30", "", true},
		{"9:+5", "", true},
		{"-1:30", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeTime(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("NormalizeTime(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestClockLabel(t *testing.T) {
	for in, want := range map[string]string{"09:30": "9:30 AM", "13:00": "1:00 PM", "00:15": "12:15 AM", "": ""} {
		if got := ClockLabel(in); got != want {
			t.Errorf("ClockLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots(8, 18, 30)
	if len(slots) != 21 || slots[0] != "08:00" || slots[1] != "08:30" || slots[20] != "18:00" {
		t.Fatalf("unexpected slots %v", slots)
	}
	if TimeSlots(8, 18, 0) != nil {
		t.Fatal("zero step should yield no slots")
	}
}

func TestMonthBoundsAndWeekStart(t *testing.T) {
	d := time.Date(2024, 2, 14, 17, 0, 0, 0, time.UTC)
	if got := FormatDate(MonthStart(d)); got != "2024-02-01" {
		t.Errorf("MonthStart = %s", got)
	}
	if got := FormatDate(MonthEnd(d)); got != "2024-02-29" {
		t.Errorf("MonthEnd = %s", got)
	}
	if got := FormatDate(WeekStart(d)); got != "2024-02-12" {
		t.Errorf("WeekStart = %s", got)
	}
	if DaysBetween(MonthStart(d), MonthEnd(d)) != 28 {
		t.Errorf("DaysBetween = %d", DaysBetween(MonthStart(d), MonthEnd(d)))
	}
	if _, err := ParseDate("2024-13-01"); err == nil {
		t.Error("expected error for month 13")
	}
}
