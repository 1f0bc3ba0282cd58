package models

import (
	"fmt"
	"strings"
	"time"
)

// Unit is the measure an applied chemical amount is given in.
type Unit string

const (
	UnitOunce      Unit = "oz"
	UnitMilliliter Unit = "ml"
	UnitGallon     Unit = "gal"
	UnitQuart      Unit = "qt"
	UnitPound      Unit = "lb"
	UnitGram       Unit = "g"
)

var Units = []Unit{UnitOunce, UnitMilliliter, UnitGallon, UnitQuart, UnitPound, UnitGram}

// ParseUnit accepts any of Units case-insensitively; empty defaults to oz.
func ParseUnit(s string) (Unit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return UnitOunce, nil
	}
	for _, u := range Units {
		if string(u) == s {
			return u, nil
		}
	}
	return "", fmt.Errorf("unknown unit %q", s)
}

// ChemicalUsage is one applied product on a job. ChemicalID points into the
// chemical library when the product was picked from it; Name is always set
// so typed-in products work too.
type ChemicalUsage struct {
	ChemicalID string `json:"chemicalId,omitempty"`
	Name       string `json:"name"`
	EPANumber  string `json:"epaNumber"`
	Amount     string `json:"amount"`
	Unit       Unit   `json:"unit"`
	MixRatio   string `json:"mixRatio"`
}

// Job is a service ticket: one visit for one customer in one calendar slot.
type Job struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	ServiceType ServicePlan     `json:"serviceType"`
	Pests       []string        `json:"pests"`
	Chemicals   []ChemicalUsage `json:"chemicalsUsed"`
	Notes       string          `json:"notes"`

	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`

	// Contact details captured when the ticket was written.
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotKey identifies the calendar cell a job occupies.
func (j Job) SlotKey() string {
	return SlotKey(j.Date, j.Time)
}

// SlotKey joins a date and HH:MM time into a grid cell key.
func SlotKey(date, clock string) string {
	return date + "__" + clock
}
