package models

import "time"

// Customer is one entry of the customer directory. Name is the autofill key;
// the remaining contact fields are optional.
type Customer struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Email     string      `json:"email"`
	Address   string      `json:"address"`
	Plan      ServicePlan `json:"plan"`
	CreatedAt time.Time   `json:"createdAt"`
}
