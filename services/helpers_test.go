package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"newday-backend/models"
	"newday-backend/store"

	"go.uber.org/zap"
)

// Wednesday of the week starting Monday 2024-06-10.
var fixedNow = time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)

var testBusiness = models.Business{
	Name:     "New Day Pest Control",
	Phone:    "(201) 972-5592",
	Email:    "newdaypestcontrol@yahoo.com",
	TaxLabel: "NJ Tax",
	TaxRate:  0.06625,
}

func newTestAppWithStore(t *testing.T, st store.Store) *App {
	t.Helper()
	var n int
	return NewApp(context.Background(), st, zap.NewNop(), Options{
		Business: testBusiness,
		Now:      func() time.Time { return fixedNow },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%04d", n)
		},
	})
}

func newTestApp(t *testing.T) (*App, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return newTestAppWithStore(t, st), st
}

func mustCustomer(t *testing.T, app *App, name, phone string) models.Customer {
	t.Helper()
	c, _, err := app.Directory.UpsertByNameAndPhone(context.Background(), CustomerInput{Name: name, Phone: phone})
	if err != nil {
		t.Fatalf("upsert %s: %v", name, err)
	}
	return c
}

func mustPlace(t *testing.T, app *App, customerID, date, clock string) models.Job {
	t.Helper()
	j, err := app.Scheduler.PlaceJob(context.Background(), JobInput{CustomerID: customerID, Date: date, Time: clock}, false)
	if err != nil {
		t.Fatalf("place job: %v", err)
	}
	return j
}

// failingStore accepts reads but rejects every write.
type failingStore struct {
	*store.MemoryStore
}

func (f failingStore) Set(context.Context, string, string) error {
	return fmt.Errorf("quota exceeded")
}
