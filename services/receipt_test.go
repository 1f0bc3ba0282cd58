package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"newday-backend/models"
)

func TestFormatReceiptListsChemicalsAndTotals(t *testing.T) {
	app, _ := newTestApp(t)
	res, err := app.Scheduler.SaveTicket(context.Background(), TicketInput{
		Customer: CustomerInput{Name: "John Smith", Phone: "201-555-1111", Email: "john@example.com", Address: "1 Main St, Hackensack NJ"},
		Job: JobInput{
			Date: "2024-06-10", Time: "09:30", ServiceType: "Monthly",
			Pests: []string{"Ants", "Roaches"},
			Chemicals: []models.ChemicalUsage{
				{ChemicalID: "transport-ghp", Amount: "4", Unit: "oz", MixRatio: "1 oz/gal"},
				{Name: "Boric Dust", Amount: "", MixRatio: ""},
			},
			Subtotal: 149,
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	r, err := app.Receipt(res.Job.ID)
	if err != nil {
		t.Fatal(err)
	}
	text := r.Text

	first := strings.Index(text, "  1. Transport GHP Insecticide | EPA 8033-96-279 | 4 oz | Mix: 1 oz/gal")
	second := strings.Index(text, "  2. Boric Dust | — | — | Mix: —")
	if first < 0 || second < 0 || second < first {
		t.Fatalf("chemical lines missing or out of order:\n%s", text)
	}
	for _, want := range []string{
		"New Day Pest Control\n(201) 972-5592 | newdaypestcontrol@yahoo.com\n",
		"SERVICE RECEIPT",
		"Customer: John Smith",
		"Service Date: 2024-06-10 9:30 AM",
		"Frequency: Monthly",
		"Pests: Ants, Roaches",
		"Notes: (none)",
		"Subtotal: $149.00",
		"NJ Tax (6.625%): $9.87",
		"Total: $158.87",
		"Thank you!\nNew Day Pest Control",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("receipt missing %q:\n%s", want, text)
		}
	}

	if r.Subject != "New Day Pest Control Receipt - 2024-06-10" {
		t.Errorf("subject = %q", r.Subject)
	}
	if !strings.HasPrefix(r.Mailto, "mailto:john@example.com?subject=New%20Day%20Pest%20Control%20Receipt") {
		t.Errorf("mailto = %q", r.Mailto)
	}
	if strings.Contains(r.Mailto, "+") {
		t.Errorf("spaces must be encoded as %%20: %q", r.Mailto)
	}
	if !strings.HasSuffix(r.MapsURL, "query=1%20Main%20St%2C%20Hackensack%20NJ") {
		t.Errorf("maps url = %q", r.MapsURL)
	}
}

func TestFormatReceiptWithMissingCustomer(t *testing.T) {
	job := models.Job{ID: "j1", Date: "2024-06-10", Time: "13:00"}
	text := FormatReceipt(testBusiness, nil, job)
	for _, want := range []string{
		"Customer: —",
		"Phone: —",
		"Service Date: 2024-06-10 1:00 PM",
		"Pests: —",
		"  (none)",
		"Total: $0.00",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("receipt missing %q:\n%s", want, text)
		}
	}
}

func TestReceiptUnknownJob(t *testing.T) {
	app, _ := newTestApp(t)
	if _, err := app.Receipt("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
