package models

// Business is the letterhead printed on receipts and reminders.
type Business struct {
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
	TaxLabel string  `json:"taxLabel"`
	TaxRate  float64 `json:"taxRate"`
}
