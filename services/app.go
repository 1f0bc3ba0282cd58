package services

import (
	"context"
	"time"

	"newday-backend/models"
	"newday-backend/store"

	"go.uber.org/zap"
)

// Options configures NewApp. Zero values fall back to defaults.
type Options struct {
	Business models.Business
	Slots    SlotConfig
	Now      func() time.Time
	NewID    func() string
}

// App is the single owner of application state. Directory, Scheduler and
// Chemicals share its State.
type App struct {
	State     *State
	Directory *Directory
	Scheduler *Scheduler
	Chemicals *ChemicalLibrary
	Business  models.Business
}

// NewApp loads state from st and wires the services over it.
func NewApp(ctx context.Context, st store.Store, logger *zap.Logger, opts Options) *App {
	if opts.Slots.StepMinutes == 0 {
		opts.Slots = DefaultSlotConfig()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	state := NewState(ctx, st, logger, opts.Now, opts.NewID)
	directory := &Directory{state: state}
	chemicals := &ChemicalLibrary{state: state}
	return &App{
		State:     state,
		Directory: directory,
		Chemicals: chemicals,
		Scheduler: &Scheduler{
			state:     state,
			directory: directory,
			chemicals: chemicals,
			slots:     opts.Slots,
			taxRate:   opts.Business.TaxRate,
		},
		Business: opts.Business,
	}
}

// Now returns the application clock.
func (a *App) Now() time.Time { return a.State.now() }

// NewCalendar opens a calendar cursor on today's period.
func (a *App) NewCalendar(view View) *Calendar {
	return NewCalendar(view, a.State.now)
}

// Receipt builds the receipt for job id. The customer may be missing.
func (a *App) Receipt(jobID string) (Receipt, error) {
	job, ok := a.Scheduler.Get(jobID)
	if !ok {
		return Receipt{}, notFound("job", jobID)
	}
	var customer *models.Customer
	if c, ok := a.Directory.Get(job.CustomerID); ok {
		customer = &c
	}
	return BuildReceipt(a.Business, customer, job), nil
}
