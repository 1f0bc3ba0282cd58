package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"newday-backend/models"
	"newday-backend/utils"
)

// View selects the period a Calendar steps through.
type View string

const (
	WeekView  View = "week"
	MonthView View = "month"
)

// ParseView accepts "week" or "month"; empty means week.
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case "", WeekView:
		return WeekView, nil
	case MonthView:
		return MonthView, nil
	}
	return "", validationError("unknown calendar view %q", s)
}

// SlotConfig bounds the bookable time of day. Both hours are slot boundaries.
type SlotConfig struct {
	StartHour   int
	EndHour     int
	StepMinutes int
}

func DefaultSlotConfig() SlotConfig {
	return SlotConfig{StartHour: 8, EndHour: 18, StepMinutes: 30}
}

// Labels lists the HH:MM slot labels of one day.
func (c SlotConfig) Labels() []string {
	return utils.TimeSlots(c.StartHour, c.EndHour, c.StepMinutes)
}

// PeriodStart normalises any date to the Monday of its week.
func PeriodStart(d time.Time) time.Time {
	return utils.WeekStart(d)
}

// Calendar is the cursor over the displayed period. Its only state is the
// first day of that period.
type Calendar struct {
	view  View
	start time.Time
	now   func() time.Time
}

// NewCalendar opens a cursor on the period containing now().
func NewCalendar(view View, now func() time.Time) *Calendar {
	if now == nil {
		now = time.Now
	}
	c := &Calendar{view: view, now: now}
	c.Today()
	return c
}

func (c *Calendar) View() View { return c.view }

// SetAnchor moves the cursor to the period containing d.
func (c *Calendar) SetAnchor(d time.Time) {
	if c.view == MonthView {
		c.start = utils.MonthStart(d)
		return
	}
	c.start = PeriodStart(d)
}

// Shift moves n periods: 7 days per step in week view, one calendar month per
// step in month view.
func (c *Calendar) Shift(n int) {
	if c.view == MonthView {
		c.start = c.start.AddDate(0, n, 0)
		return
	}
	c.start = c.start.AddDate(0, 0, 7*n)
}

func (c *Calendar) Next()     { c.Shift(1) }
func (c *Calendar) Previous() { c.Shift(-1) }

// Today resets the cursor to the period containing the current date.
func (c *Calendar) Today() { c.SetAnchor(c.now()) }

// PeriodStart is the first day of the displayed period.
func (c *Calendar) PeriodStart() time.Time { return c.start }

// PeriodEnd is the last day of the displayed period, inclusive.
func (c *Calendar) PeriodEnd() time.Time {
	if c.view == MonthView {
		return utils.MonthEnd(c.start)
	}
	return c.start.AddDate(0, 0, 6)
}

// Label renders the period for display, e.g. "2024-06-10 → 2024-06-16" or "June 2024".
func (c *Calendar) Label() string {
	if c.view == MonthView {
		return c.start.Format("January 2006")
	}
	return fmt.Sprintf("%s → %s", utils.FormatDate(c.start), utils.FormatDate(c.PeriodEnd()))
}

// Cell is one (day, slot) box of the week grid.
type Cell struct {
	Date string       `json:"date"`
	Time string       `json:"time"`
	Key  string       `json:"key"`
	Jobs []models.Job `json:"jobs"`
}

// WeekGrid holds 7 days × slots cells, row-major by slot then day.
type WeekGrid struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Label string   `json:"label"`
	Days  []string `json:"days"`
	Slots []string `json:"slots"`
	Cells []Cell   `json:"cells"`
}

// Find returns the cell with the given key.
func (g WeekGrid) Find(key string) (Cell, bool) {
	for _, c := range g.Cells {
		if c.Key == key {
			return c, true
		}
	}
	return Cell{}, false
}

// DayCell is one day of the month grid.
type DayCell struct {
	Date    string       `json:"date"`
	InMonth bool         `json:"inMonth"`
	Jobs    []models.Job `json:"jobs"`
}

// MonthGrid covers the whole Monday..Sunday weeks that touch the month.
type MonthGrid struct {
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Start string      `json:"start"`
	End   string      `json:"end"`
	Label string      `json:"label"`
	Weeks [][]DayCell `json:"weeks"`
}

// IndexJobs groups jobs by slot key in one pass. Jobs sharing a slot are
// ordered by id, which follows creation order.
func IndexJobs(jobs []models.Job) map[string][]models.Job {
	index := make(map[string][]models.Job, len(jobs))
	for _, j := range jobs {
		if j.Date == "" || j.Time == "" {
			continue
		}
		key := j.SlotKey()
		index[key] = append(index[key], j)
	}
	for _, group := range index {
		sort.Slice(group, func(a, b int) bool { return group[a].ID < group[b].ID })
	}
	return index
}

// BuildWeekGrid lays out the week containing anchor.
func BuildWeekGrid(anchor time.Time, slots []string, jobs []models.Job) WeekGrid {
	start := PeriodStart(anchor)
	index := IndexJobs(jobs)

	days := make([]string, 7)
	for i := range days {
		days[i] = utils.FormatDate(start.AddDate(0, 0, i))
	}

	cells := make([]Cell, 0, len(days)*len(slots))
	for _, slot := range slots {
		for _, day := range days {
			key := models.SlotKey(day, slot)
			hits := index[key]
			if hits == nil {
				hits = []models.Job{}
			}
			cells = append(cells, Cell{Date: day, Time: slot, Key: key, Jobs: hits})
		}
	}

	return WeekGrid{
		Start: days[0],
		End:   days[6],
		Label: fmt.Sprintf("%s → %s", days[0], days[6]),
		Days:  days,
		Slots: append([]string(nil), slots...),
		Cells: cells,
	}
}

// BuildMonthGrid lays out the month containing anchor. Each day lists its
// jobs by time, then id.
func BuildMonthGrid(anchor time.Time, jobs []models.Job) MonthGrid {
	first := utils.MonthStart(anchor)
	start := PeriodStart(first)
	end := PeriodStart(utils.MonthEnd(anchor)).AddDate(0, 0, 6)

	byDate := make(map[string][]models.Job)
	for _, j := range jobs {
		byDate[j.Date] = append(byDate[j.Date], j)
	}

	weeks := make([][]DayCell, 0, 6)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 7) {
		week := make([]DayCell, 7)
		for i := range week {
			day := d.AddDate(0, 0, i)
			date := utils.FormatDate(day)
			hits := append([]models.Job{}, byDate[date]...)
			sortByTimeThenID(hits)
			week[i] = DayCell{Date: date, InMonth: day.Month() == first.Month(), Jobs: hits}
		}
		weeks = append(weeks, week)
	}

	return MonthGrid{
		Year:  first.Year(),
		Month: int(first.Month()),
		Start: utils.FormatDate(start),
		End:   utils.FormatDate(end),
		Label: first.Format("January 2006"),
		Weeks: weeks,
	}
}

func sortByTimeThenID(jobs []models.Job) {
	sort.Slice(jobs, func(a, b int) bool {
		if jobs[a].Time != jobs[b].Time {
			return jobs[a].Time < jobs[b].Time
		}
		return jobs[a].ID < jobs[b].ID
	})
}

// sortChronologically orders jobs by date, time, then id.
func sortChronologically(jobs []models.Job) {
	sort.Slice(jobs, func(a, b int) bool {
		if jobs[a].Date != jobs[b].Date {
			return jobs[a].Date < jobs[b].Date
		}
		if jobs[a].Time != jobs[b].Time {
			return jobs[a].Time < jobs[b].Time
		}
		return jobs[a].ID < jobs[b].ID
	})
}
