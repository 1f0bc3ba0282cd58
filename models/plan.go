package models

import (
	"fmt"
	"strings"
)

// ServicePlan is the service frequency of a customer or job.
type ServicePlan string

const (
	PlanOneTime   ServicePlan = "One-time"
	PlanWeekly    ServicePlan = "Weekly"
	PlanBiMonthly ServicePlan = "Bi-monthly"
	PlanMonthly   ServicePlan = "Monthly"
	PlanQuarterly ServicePlan = "Quarterly"
	PlanAnnual    ServicePlan = "Annual"
)

var ServicePlans = []ServicePlan{PlanOneTime, PlanWeekly, PlanBiMonthly, PlanMonthly, PlanQuarterly, PlanAnnual}

func planKey(s string) string {
	return strings.NewReplacer("-", "", " ", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

// ParseServicePlan matches s case-insensitively, ignoring dashes and spaces,
// so "bimonthly" and "Bi-Monthly" both resolve. Empty input yields "".
func ParseServicePlan(s string) (ServicePlan, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	key := planKey(s)
	for _, p := range ServicePlans {
		if planKey(string(p)) == key {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown service plan %q", s)
}

// Pests is the fixed catalog offered on the service ticket.
var Pests = []string{
	"Ants", "Mice", "Rats", "Spiders", "Roaches", "Bed Bugs", "Wasps", "Bees", "Hornets",
	"Yellow Jackets", "Termites", "Mosquitoes", "Fleas/Ticks", "Other",
}

// NormalizePests maps each entry onto its catalog spelling, drops duplicates and
// returns the set in catalog order.
func NormalizePests(in []string) ([]string, error) {
	seen := make(map[string]bool, len(in))
	for _, raw := range in {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		match := ""
		for _, p := range Pests {
			if strings.EqualFold(p, name) {
				match = p
				break
			}
		}
		if match == "" {
			return nil, fmt.Errorf("unknown pest %q", raw)
		}
		seen[match] = true
	}

	out := make([]string, 0, len(seen))
	for _, p := range Pests {
		if seen[p] {
			out = append(out, p)
		}
	}
	return out, nil
}
