package services

import (
	"context"
	"sort"
	"strings"

	"newday-backend/models"

	"go.uber.org/zap"
)

// CustomerInput carries the editable customer fields of a form submission.
type CustomerInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Plan    string
}

type customerFields struct {
	name, phone, email, address string
	plan                        models.ServicePlan
}

func (in CustomerInput) validate() (customerFields, error) {
	f := customerFields{
		name:    strings.TrimSpace(in.Name),
		phone:   strings.TrimSpace(in.Phone),
		email:   strings.TrimSpace(in.Email),
		address: strings.TrimSpace(in.Address),
	}
	if f.name == "" {
		return f, validationError("customer name is required")
	}
	plan, err := models.ParseServicePlan(in.Plan)
	if err != nil {
		return f, validationError("%v", err)
	}
	f.plan = plan
	return f, nil
}

// Directory is the customer database.
type Directory struct {
	state *State
}

// List returns every customer in insertion order.
func (d *Directory) List() []models.Customer {
	d.state.mu.RLock()
	defer d.state.mu.RUnlock()
	return append([]models.Customer{}, d.state.customers...)
}

func (d *Directory) Get(id string) (models.Customer, bool) {
	d.state.mu.RLock()
	defer d.state.mu.RUnlock()
	if i := d.state.customerIndexLocked(id); i >= 0 {
		return d.state.customers[i], true
	}
	return models.Customer{}, false
}

// UpsertByNameAndPhone finds the customer by case-insensitive name plus exact
// phone, then by name alone, and merges the non-empty incoming fields over it.
// Without a match a new customer is created. created reports which happened.
func (d *Directory) UpsertByNameAndPhone(ctx context.Context, in CustomerInput) (c models.Customer, created bool, err error) {
	f, err := in.validate()
	if err != nil {
		return models.Customer{}, false, err
	}

	d.state.mu.Lock()
	defer d.state.mu.Unlock()
	c, created = d.upsertLocked(f)
	d.state.persistLocked(ctx, CustomersKey)
	return c, created, nil
}

func (d *Directory) upsertLocked(f customerFields) (models.Customer, bool) {
	i := d.matchLocked(f.name, f.phone)
	if i < 0 {
		c := models.Customer{
			ID:        d.state.newID(),
			Name:      f.name,
			Phone:     f.phone,
			Email:     f.email,
			Address:   f.address,
			Plan:      f.plan,
			CreatedAt: d.state.now(),
		}
		d.state.customers = append(d.state.customers, c)
		d.state.logger.Debug("customer created", zap.String("id", c.ID))
		return c, true
	}

	c := &d.state.customers[i]
	if f.phone != "" {
		c.Phone = f.phone
	}
	if f.email != "" {
		c.Email = f.email
	}
	if f.address != "" {
		c.Address = f.address
	}
	if f.plan != "" {
		c.Plan = f.plan
	}
	return *c, false
}

// matchLocked applies the two match tiers: name plus exact phone, then the
// first customer with the name alone.
func (d *Directory) matchLocked(name, phone string) int {
	for i, c := range d.state.customers {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) && c.Phone == phone {
			return i
		}
	}
	for i, c := range d.state.customers {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			return i
		}
	}
	return -1
}

// Update replaces the editable fields of customer id.
func (d *Directory) Update(ctx context.Context, id string, in CustomerInput) (models.Customer, error) {
	f, err := in.validate()
	if err != nil {
		return models.Customer{}, err
	}

	d.state.mu.Lock()
	defer d.state.mu.Unlock()
	i := d.state.customerIndexLocked(id)
	if i < 0 {
		return models.Customer{}, notFound("customer", id)
	}
	c := &d.state.customers[i]
	c.Name, c.Phone, c.Email, c.Address, c.Plan = f.name, f.phone, f.email, f.address, f.plan
	d.state.persistLocked(ctx, CustomersKey)
	return *c, nil
}

// Delete removes the customer and every job that references it.
func (d *Directory) Delete(ctx context.Context, id string) (removedJobs int, err error) {
	d.state.mu.Lock()
	defer d.state.mu.Unlock()

	i := d.state.customerIndexLocked(id)
	if i < 0 {
		return 0, notFound("customer", id)
	}
	d.state.customers = append(d.state.customers[:i], d.state.customers[i+1:]...)

	kept := d.state.jobs[:0]
	for _, j := range d.state.jobs {
		if j.CustomerID == id {
			removedJobs++
			continue
		}
		kept = append(kept, j)
	}
	d.state.jobs = kept

	d.state.persistLocked(ctx, CustomersKey, JobsKey)
	d.state.logger.Info("customer deleted", zap.String("id", id), zap.Int("jobs", removedJobs))
	return removedJobs, nil
}

// Search matches query case-insensitively against name, phone, email and
// address. Results are ordered by name, then id. An empty query lists all.
func (d *Directory) Search(query string) []models.Customer {
	q := strings.ToLower(strings.TrimSpace(query))

	d.state.mu.RLock()
	out := make([]models.Customer, 0, len(d.state.customers))
	for _, c := range d.state.customers {
		if q == "" || customerContains(c, q) {
			out = append(out, c)
		}
	}
	d.state.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
		if a != b {
			return a < b
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func customerContains(c models.Customer, q string) bool {
	for _, field := range []string{c.Name, c.Phone, c.Email, c.Address} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
