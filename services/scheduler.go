package services

import (
	"context"
	"math"
	"strings"
	"time"

	"newday-backend/models"
	"newday-backend/utils"

	"go.uber.org/zap"
)

// JobInput is one complete job submission. An empty ID creates a job; a set
// ID fully replaces that job.
type JobInput struct {
	ID          string
	CustomerID  string
	Date        string
	Time        string
	ServiceType string
	Pests       []string
	Chemicals   []models.ChemicalUsage
	Notes       string
	Subtotal    float64
	Address     string
	Phone       string
	Email       string
}

// TicketInput is the service ticket form: customer details plus the job.
// Job.CustomerID is ignored; the customer is resolved by name and phone.
type TicketInput struct {
	Customer   CustomerInput
	Job        JobInput
	Reschedule bool
}

type TicketResult struct {
	Customer        models.Customer `json:"customer"`
	CustomerCreated bool            `json:"customerCreated"`
	Job             models.Job      `json:"job"`
}

// Scheduler saves jobs into calendar slots and builds the calendar grids.
type Scheduler struct {
	state     *State
	directory *Directory
	chemicals *ChemicalLibrary
	slots     SlotConfig
	taxRate   float64
}

func (s *Scheduler) Slots() []string  { return s.slots.Labels() }
func (s *Scheduler) TaxRate() float64 { return s.taxRate }

// prepareLocked validates everything except the customer reference and
// returns the job record to store.
func (s *Scheduler) prepareLocked(in JobInput) (models.Job, error) {
	if strings.TrimSpace(in.Date) == "" {
		return models.Job{}, validationError("date is required")
	}
	date, err := utils.ParseDate(in.Date)
	if err != nil {
		return models.Job{}, validationError("%v", err)
	}
	if strings.TrimSpace(in.Time) == "" {
		return models.Job{}, validationError("time is required")
	}
	clock, err := utils.NormalizeTime(in.Time)
	if err != nil {
		return models.Job{}, validationError("%v", err)
	}

	plan, err := models.ParseServicePlan(in.ServiceType)
	if err != nil {
		return models.Job{}, validationError("%v", err)
	}
	if plan == "" {
		plan = models.PlanOneTime
	}

	pests, err := models.NormalizePests(in.Pests)
	if err != nil {
		return models.Job{}, validationError("%v", err)
	}

	usages := make([]models.ChemicalUsage, 0, len(in.Chemicals))
	for _, u := range in.Chemicals {
		if blankUsage(u) {
			continue
		}
		resolved, err := s.chemicals.resolveUsageLocked(u)
		if err != nil {
			return models.Job{}, err
		}
		usages = append(usages, resolved)
	}

	if math.IsNaN(in.Subtotal) || math.IsInf(in.Subtotal, 0) || in.Subtotal < 0 {
		return models.Job{}, validationError("subtotal must be a non-negative amount")
	}
	if in.Subtotal > utils.MaxAmount {
		return models.Job{}, validationError("subtotal must not exceed %d", utils.MaxAmount)
	}
	sub, tax, total := utils.ComputeTotals(in.Subtotal, s.taxRate)

	return models.Job{
		ID:          strings.TrimSpace(in.ID),
		CustomerID:  strings.TrimSpace(in.CustomerID),
		Date:        utils.FormatDate(date),
		Time:        clock,
		ServiceType: plan,
		Pests:       pests,
		Chemicals:   usages,
		Notes:       strings.TrimSpace(in.Notes),
		Subtotal:    sub,
		Tax:         tax,
		Total:       total,
		Address:     strings.TrimSpace(in.Address),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       strings.TrimSpace(in.Email),
	}, nil
}

func blankUsage(u models.ChemicalUsage) bool {
	for _, f := range []string{u.ChemicalID, u.Name, u.EPANumber, u.Amount, u.MixRatio} {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// commitLocked stores a prepared job whose customer exists. With reschedule,
// other jobs of the same customer in the target slot are replaced; jobs of
// other customers in that slot are always kept.
func (s *Scheduler) commitLocked(job models.Job, reschedule bool) models.Job {
	if ci := s.state.customerIndexLocked(job.CustomerID); ci >= 0 {
		c := s.state.customers[ci]
		if job.Address == "" {
			job.Address = c.Address
		}
		if job.Phone == "" {
			job.Phone = c.Phone
		}
		if job.Email == "" {
			job.Email = c.Email
		}
	}

	now := s.state.now()
	job.UpdatedAt = now
	existing := -1
	if job.ID != "" {
		existing = s.state.jobIndexLocked(job.ID)
	}
	if existing >= 0 {
		job.CreatedAt = s.state.jobs[existing].CreatedAt
		s.state.jobs[existing] = job
	} else {
		if job.ID == "" {
			job.ID = s.state.newID()
		}
		job.CreatedAt = now
		s.state.jobs = append(s.state.jobs, job)
	}

	if reschedule {
		key := job.SlotKey()
		kept := s.state.jobs[:0]
		for _, j := range s.state.jobs {
			if j.ID != job.ID && j.CustomerID == job.CustomerID && j.SlotKey() == key {
				s.state.logger.Info("job replaced by reschedule",
					zap.String("replaced", j.ID), zap.String("by", job.ID), zap.String("slot", key))
				continue
			}
			kept = append(kept, j)
		}
		s.state.jobs = kept
	}
	return job
}

// PlaceJob saves a complete job for an existing customer into its slot.
func (s *Scheduler) PlaceJob(ctx context.Context, in JobInput, reschedule bool) (models.Job, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	job, err := s.prepareLocked(in)
	if err != nil {
		return models.Job{}, err
	}
	if job.CustomerID == "" {
		return models.Job{}, validationError("customerId is required")
	}
	if s.state.customerIndexLocked(job.CustomerID) < 0 {
		return models.Job{}, notFound("customer", job.CustomerID)
	}
	if job.ID != "" && s.state.jobIndexLocked(job.ID) < 0 {
		return models.Job{}, notFound("job", job.ID)
	}

	job = s.commitLocked(job, reschedule)
	s.state.persistLocked(ctx, JobsKey)
	return job, nil
}

// SaveTicket upserts the ticket's customer by name and phone, then saves the
// job for that customer. Nothing is written unless both halves validate.
func (s *Scheduler) SaveTicket(ctx context.Context, in TicketInput) (TicketResult, error) {
	fields, err := in.Customer.validate()
	if err != nil {
		return TicketResult{}, err
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	job, err := s.prepareLocked(in.Job)
	if err != nil {
		return TicketResult{}, err
	}
	if job.ID != "" && s.state.jobIndexLocked(job.ID) < 0 {
		return TicketResult{}, notFound("job", job.ID)
	}

	customer, created := s.directory.upsertLocked(fields)
	job.CustomerID = customer.ID
	job = s.commitLocked(job, in.Reschedule)
	s.state.persistLocked(ctx, CustomersKey, JobsKey)

	return TicketResult{Customer: customer, CustomerCreated: created, Job: job}, nil
}

func (s *Scheduler) Get(id string) (models.Job, bool) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	if i := s.state.jobIndexLocked(id); i >= 0 {
		return s.state.jobs[i], true
	}
	return models.Job{}, false
}

// List returns every job by date, time, then id.
func (s *Scheduler) List() []models.Job {
	jobs := s.state.jobsSnapshot()
	sortChronologically(jobs)
	return jobs
}

// ForCustomer returns a customer's jobs by date, time, then id.
func (s *Scheduler) ForCustomer(customerID string) []models.Job {
	out := []models.Job{}
	for _, j := range s.state.jobsSnapshot() {
		if j.CustomerID == customerID {
			out = append(out, j)
		}
	}
	sortChronologically(out)
	return out
}

func (s *Scheduler) Delete(ctx context.Context, id string) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	i := s.state.jobIndexLocked(id)
	if i < 0 {
		return notFound("job", id)
	}
	s.state.jobs = append(s.state.jobs[:i], s.state.jobs[i+1:]...)
	s.state.persistLocked(ctx, JobsKey)
	return nil
}

// WeekGrid builds the week grid for the cursor's period.
func (s *Scheduler) WeekGrid(cal *Calendar) WeekGrid {
	return BuildWeekGrid(cal.PeriodStart(), s.Slots(), s.state.jobsSnapshot())
}

// MonthGrid builds the month grid for the cursor's period.
func (s *Scheduler) MonthGrid(cal *Calendar) MonthGrid {
	return BuildMonthGrid(cal.PeriodStart(), s.state.jobsSnapshot())
}

// Upcoming lists up to limit jobs dated on or after from, soonest first.
// limit <= 0 means no limit.
func (s *Scheduler) Upcoming(from time.Time, limit int) []models.Job {
	day := utils.FormatDate(utils.BeginningOfDay(from))
	out := []models.Job{}
	for _, j := range s.state.jobsSnapshot() {
		if j.Date >= day {
			out = append(out, j)
		}
	}
	sortChronologically(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
