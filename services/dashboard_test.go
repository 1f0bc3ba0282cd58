package services

import (
	"context"
	"testing"
)

func TestOverview(t *testing.T) {
	app, _ := newTestApp(t)
	a := mustCustomer(t, app, "John Smith", "201-555-1111")
	b := mustCustomer(t, app, "Mary Jones", "")

	for _, in := range []JobInput{
		{CustomerID: a.ID, Date: "2024-06-12", Time: "16:00", Subtotal: 149},
		{CustomerID: a.ID, Date: "2024-06-13", Time: "09:00", Subtotal: 100},
		{CustomerID: b.ID, Date: "2024-06-30", Time: "09:00", Subtotal: 50},
		{CustomerID: b.ID, Date: "2024-07-01", Time: "09:00", Subtotal: 75},
		{CustomerID: b.ID, Date: "2024-05-31", Time: "09:00", Subtotal: 20},
	} {
		if _, err := app.Scheduler.PlaceJob(context.Background(), in, false); err != nil {
			t.Fatal(err)
		}
	}

	o := app.Overview()
	if o.TotalCustomers != 2 || o.TotalJobs != 5 {
		t.Fatalf("totals %d/%d", o.TotalCustomers, o.TotalJobs)
	}
	// 158.87 + 106.63 + 53.31
	if o.MonthlyRevenue != 318.81 {
		t.Fatalf("monthly revenue = %v", o.MonthlyRevenue)
	}
	if o.JobsToday != 1 || o.JobsThisWeek != 2 {
		t.Fatalf("today/week = %d/%d", o.JobsToday, o.JobsThisWeek)
	}
	if len(o.RecentCustomers) != 2 || o.RecentCustomers[0].Added != "Today" || o.RecentCustomers[0].Jobs == 0 {
		t.Fatalf("recent customers %+v", o.RecentCustomers)
	}
	if len(o.UpcomingJobs) != 4 {
		t.Fatalf("expected 4 upcoming, got %d", len(o.UpcomingJobs))
	}
	if o.UpcomingJobs[0].When != "Today" || o.UpcomingJobs[1].When != "Tomorrow" || o.UpcomingJobs[2].When != "in 18 days" {
		t.Fatalf("unexpected labels %+v", o.UpcomingJobs)
	}
	if o.UpcomingJobs[1].Customer != "John Smith" || o.UpcomingJobs[1].Time != "9:00 AM" {
		t.Fatalf("unexpected entry %+v", o.UpcomingJobs[1])
	}
}
