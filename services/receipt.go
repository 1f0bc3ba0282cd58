package services

import (
	"fmt"
	"strings"

	"newday-backend/models"
	"newday-backend/utils"
)

const placeholder = "—"

// Receipt is the formatted text plus the links that carry it.
type Receipt struct {
	Subject string `json:"subject"`
	Text    string `json:"text"`
	Mailto  string `json:"mailto"`
	MapsURL string `json:"mapsUrl"`
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// FormatReceipt renders the plain-text receipt for a job. customer may be nil
// when the customer record is gone; its block then prints placeholders.
func FormatReceipt(biz models.Business, customer *models.Customer, job models.Job) string {
	var c models.Customer
	if customer != nil {
		c = *customer
	}
	phone, email, address := firstNonEmpty(job.Phone, c.Phone), firstNonEmpty(job.Email, c.Email), firstNonEmpty(job.Address, c.Address)

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("%s", biz.Name)
	line("%s | %s", orPlaceholder(biz.Phone), orPlaceholder(biz.Email))
	line("")
	line("SERVICE RECEIPT")
	line("")
	line("Customer: %s", orPlaceholder(c.Name))
	line("Phone: %s", orPlaceholder(phone))
	line("Email: %s", orPlaceholder(email))
	line("Address: %s", orPlaceholder(address))
	line("")
	line("Service Date: %s", strings.TrimSpace(orPlaceholder(job.Date)+" "+utils.ClockLabel(job.Time)))
	line("Frequency: %s", orPlaceholder(string(job.ServiceType)))
	line("Pests: %s", orPlaceholder(strings.Join(job.Pests, ", ")))
	line("")
	line("Chemicals Used:")
	if len(job.Chemicals) == 0 {
		line("  (none)")
	}
	for i, u := range job.Chemicals {
		epa := placeholder
		if u.EPANumber != "" {
			epa = "EPA " + u.EPANumber
		}
		amount := placeholder
		if u.Amount != "" {
			amount = strings.TrimSpace(u.Amount + " " + string(u.Unit))
		}
		line("  %d. %s | %s | %s | Mix: %s", i+1, orPlaceholder(u.Name), epa, amount, orPlaceholder(u.MixRatio))
	}
	line("")
	notes := job.Notes
	if strings.TrimSpace(notes) == "" {
		notes = "(none)"
	}
	line("Notes: %s", notes)
	line("")
	line("Subtotal: %s", utils.FormatCurrency(job.Subtotal))
	line("%s (%s%%): %s", orDefault(biz.TaxLabel, "Tax"), utils.FormatPercent(biz.TaxRate), utils.FormatCurrency(job.Tax))
	line("Total: %s", utils.FormatCurrency(job.Total))
	line("")
	line("Thank you!")
	b.WriteString(biz.Name)
	return b.String()
}

// BuildReceipt formats the receipt and wraps it into the email and map links.
func BuildReceipt(biz models.Business, customer *models.Customer, job models.Job) Receipt {
	text := FormatReceipt(biz, customer, job)
	subject := fmt.Sprintf("%s Receipt - %s", biz.Name, job.Date)

	to, address := job.Email, job.Address
	if customer != nil {
		to = firstNonEmpty(to, customer.Email)
		address = firstNonEmpty(address, customer.Address)
	}
	return Receipt{
		Subject: subject,
		Text:    text,
		Mailto:  utils.MailtoURL(to, subject, text),
		MapsURL: utils.MapsURL(address),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
