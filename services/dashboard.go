package services

import (
	"fmt"
	"sort"

	"newday-backend/models"
	"newday-backend/utils"
)

const (
	recentCustomerCount = 5
	dashboardUpcoming   = 5
)

type Overview struct {
	TotalCustomers  int              `json:"totalCustomers"`
	TotalJobs       int              `json:"totalJobs"`
	MonthlyRevenue  float64          `json:"monthlyRevenue"`
	JobsToday       int              `json:"jobsToday"`
	JobsThisWeek    int              `json:"jobsThisWeek"`
	RecentCustomers []RecentCustomer `json:"recentCustomers"`
	UpcomingJobs    []UpcomingJob    `json:"upcomingJobs"`
}

type RecentCustomer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Plan  string `json:"plan"`
	Jobs  int    `json:"jobs"`
	Added string `json:"added"` // e.g. "Today", "3 days ago"
}

type UpcomingJob struct {
	JobID    string `json:"jobId"`
	Customer string `json:"customer"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	When     string `json:"when"` // e.g. "Tomorrow", "in 3 days"
}

// Overview summarises the business for the dashboard. Revenue counts job
// totals dated in the current month.
func (a *App) Overview() Overview {
	now := a.Now()
	today := utils.BeginningOfDay(now)
	todayStr := utils.FormatDate(today)
	weekStart, weekEnd := utils.FormatDate(PeriodStart(today)), utils.FormatDate(PeriodStart(today).AddDate(0, 0, 6))
	monthStart, monthEnd := utils.FormatDate(utils.MonthStart(today)), utils.FormatDate(utils.MonthEnd(today))

	customers := a.Directory.List()
	jobs := a.State.jobsSnapshot()

	o := Overview{
		TotalCustomers:  len(customers),
		TotalJobs:       len(jobs),
		RecentCustomers: []RecentCustomer{},
		UpcomingJobs:    []UpcomingJob{},
	}

	var revenueCents int64
	for _, j := range jobs {
		if j.Date >= monthStart && j.Date <= monthEnd {
			revenueCents += utils.ToCents(j.Total)
		}
		if j.Date == todayStr {
			o.JobsToday++
		}
		if j.Date >= weekStart && j.Date <= weekEnd {
			o.JobsThisWeek++
		}
	}
	o.MonthlyRevenue = utils.FromCents(revenueCents)

	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].CreatedAt.After(customers[j].CreatedAt)
	})
	for _, c := range customers {
		if len(o.RecentCustomers) == recentCustomerCount {
			break
		}
		o.RecentCustomers = append(o.RecentCustomers, RecentCustomer{
			ID:    c.ID,
			Name:  c.Name,
			Plan:  string(c.Plan),
			Jobs:  countJobs(jobs, c.ID),
			Added: daysAgo(utils.DaysBetween(c.CreatedAt, today)),
		})
	}

	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	for _, j := range a.Scheduler.Upcoming(today, dashboardUpcoming) {
		when := "—"
		if d, err := utils.ParseDate(j.Date); err == nil {
			when = daysAhead(utils.DaysBetween(today, d))
		}
		o.UpcomingJobs = append(o.UpcomingJobs, UpcomingJob{
			JobID:    j.ID,
			Customer: names[j.CustomerID],
			Date:     j.Date,
			Time:     utils.ClockLabel(j.Time),
			When:     when,
		})
	}
	return o
}

func daysAgo(n int) string {
	switch {
	case n <= 0:
		return "Today"
	case n == 1:
		return "Yesterday"
	}
	return fmt.Sprintf("%d days ago", n)
}

func daysAhead(n int) string {
	switch {
	case n <= 0:
		return "Today"
	case n == 1:
		return "Tomorrow"
	}
	return fmt.Sprintf("in %d days", n)
}

func countJobs(jobs []models.Job, customerID string) int {
	n := 0
	for _, j := range jobs {
		if j.CustomerID == customerID {
			n++
		}
	}
	return n
}
