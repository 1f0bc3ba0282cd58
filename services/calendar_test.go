package services

import (
	"testing"
	"time"

	"newday-backend/models"
)

func ymd(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodStartIsMondayContainingDate(t *testing.T) {
	start := ymd(2023, 12, 1)
	for i := 0; i < 800; i++ {
		d := start.AddDate(0, 0, i)
		p := PeriodStart(d)
		if p.Weekday() != time.Monday {
			t.Fatalf("PeriodStart(%s) = %s, a %s", d.Format("2006-01-02"), p.Format("2006-01-02"), p.Weekday())
		}
		if d.Before(p) || !d.Before(p.AddDate(0, 0, 7)) {
			t.Fatalf("PeriodStart(%s) = %s does not contain the date", d.Format("2006-01-02"), p.Format("2006-01-02"))
		}
		if again := PeriodStart(p); !again.Equal(p) {
			t.Fatalf("PeriodStart not idempotent for %s", d.Format("2006-01-02"))
		}
	}
}

func TestPeriodStartIgnoresTimeOfDayAndZone(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 6, 16, 23, 30, 0, 0, est), "2024-06-10"},
		{time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "2024-06-10"},
		{time.Date(2024, 3, 10, 12, 0, 0, 0, est), "2024-03-04"},
		{time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC), "2024-12-30"},
	}
	for _, tt := range tests {
		if got := PeriodStart(tt.in).Format("2006-01-02"); got != tt.want {
			t.Errorf("PeriodStart(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestWeekGridHasCellPerDayAndSlot(t *testing.T) {
	slots := DefaultSlotConfig().Labels()
	if len(slots) != 21 || slots[0] != "08:00" || slots[20] != "18:00" {
		t.Fatalf("unexpected slots: %v", slots)
	}
	grid := BuildWeekGrid(ymd(2024, 6, 12), slots, nil)
	if len(grid.Cells) != 147 {
		t.Fatalf("expected 147 cells, got %d", len(grid.Cells))
	}
	if grid.Start != "2024-06-10" || grid.End != "2024-06-16" {
		t.Fatalf("unexpected range %s..%s", grid.Start, grid.End)
	}
	seen := make(map[string]bool, len(grid.Cells))
	for _, c := range grid.Cells {
		if seen[c.Key] {
			t.Fatalf("duplicate cell %s", c.Key)
		}
		seen[c.Key] = true
		if c.Jobs == nil {
			t.Fatalf("cell %s has nil jobs", c.Key)
		}
	}
}

func TestWeekGridPlacesJobInExactlyOneCell(t *testing.T) {
	jobs := []models.Job{{ID: "a", Date: "2024-06-10", Time: "09:30"}}
	grid := BuildWeekGrid(ymd(2024, 6, 10), DefaultSlotConfig().Labels(), jobs)

	hits := 0
	for _, c := range grid.Cells {
		if len(c.Jobs) > 0 {
			hits++
			if c.Key != "2024-06-10__09:30" {
				t.Fatalf("job landed in %s", c.Key)
			}
		}
	}
	if hits != 1 {
		t.Fatalf("expected job in one cell, found %d", hits)
	}
}

func TestIndexJobsOrdersSharedSlotByID(t *testing.T) {
	jobs := []models.Job{
		{ID: "c", Date: "2024-06-10", Time: "10:00"},
		{ID: "a", Date: "2024-06-10", Time: "10:00"},
		{ID: "b", Date: "2024-06-10", Time: "10:00"},
		{ID: "x", Date: "", Time: "10:00"},
	}
	index := IndexJobs(jobs)
	got := index["2024-06-10__10:00"]
	if len(got) != 3 || got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if len(index) != 1 {
		t.Fatalf("jobs without a date must not be indexed, got %d keys", len(index))
	}
}

func TestCalendarShiftWeek(t *testing.T) {
	cal := NewCalendar(WeekView, func() time.Time { return fixedNow })
	if got := cal.PeriodStart().Format("2006-01-02"); got != "2024-06-10" {
		t.Fatalf("start = %s", got)
	}
	cal.Next()
	if got := cal.PeriodStart().Format("2006-01-02"); got != "2024-06-17" {
		t.Fatalf("after Next = %s", got)
	}
	cal.Shift(-3)
	if got := cal.PeriodStart().Format("2006-01-02"); got != "2024-05-27" {
		t.Fatalf("after Shift(-3) = %s", got)
	}
	cal.Today()
	if got := cal.PeriodStart().Format("2006-01-02"); got != "2024-06-10" {
		t.Fatalf("after Today = %s", got)
	}
	if cal.Label() != "2024-06-10 → 2024-06-16" {
		t.Fatalf("label = %q", cal.Label())
	}
}

func TestCalendarShiftMonthRollsOverYear(t *testing.T) {
	cal := NewCalendar(MonthView, func() time.Time { return ymd(2024, 12, 31) })
	cal.Next()
	if got := cal.PeriodStart().Format("2006-01-02"); got != "2025-01-01" {
		t.Fatalf("after Next = %s", got)
	}
	if cal.Label() != "January 2025" {
		t.Fatalf("label = %q", cal.Label())
	}
	cal.Shift(-2)
	if got := cal.PeriodStart().Format("2006-01-02"); got != "2024-11-01" {
		t.Fatalf("after Shift(-2) = %s", got)
	}
	if got := cal.PeriodEnd().Format("2006-01-02"); got != "2024-11-30" {
		t.Fatalf("end = %s", got)
	}
}

func TestBuildMonthGridCoversWholeWeeks(t *testing.T) {
	jobs := []models.Job{
		{ID: "2", Date: "2024-06-10", Time: "09:30"},
		{ID: "1", Date: "2024-06-10", Time: "13:00"},
		{ID: "3", Date: "2024-06-10", Time: "09:30"},
		{ID: "4", Date: "2024-07-01", Time: "08:00"},
	}
	grid := BuildMonthGrid(ymd(2024, 6, 20), jobs)

	// June 2024 starts on a Saturday and ends on a Sunday.
	if grid.Start != "2024-05-27" || grid.End != "2024-06-30" {
		t.Fatalf("unexpected range %s..%s", grid.Start, grid.End)
	}
	if len(grid.Weeks) != 5 {
		t.Fatalf("expected 5 weeks, got %d", len(grid.Weeks))
	}
	if grid.Weeks[0][0].InMonth || !grid.Weeks[0][5].InMonth {
		t.Fatal("inMonth flags wrong in first week")
	}

	day := grid.Weeks[2][0]
	if day.Date != "2024-06-10" {
		t.Fatalf("expected 2024-06-10, got %s", day.Date)
	}
	var ids []string
	for _, j := range day.Jobs {
		ids = append(ids, j.ID)
	}
	if len(ids) != 3 || ids[0] != "2" || ids[1] != "3" || ids[2] != "1" {
		t.Fatalf("expected time then id order, got %v", ids)
	}
	if grid.Label != "June 2024" || grid.Month != 6 || grid.Year != 2024 {
		t.Fatalf("unexpected header %+v", grid)
	}
}

func TestParseView(t *testing.T) {
	for in, want := range map[string]View{"": WeekView, "week": WeekView, "MONTH": MonthView} {
		got, err := ParseView(in)
		if err != nil || got != want {
			t.Errorf("ParseView(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseView("year"); err == nil {
		t.Error("expected error for unknown view")
	}
}
