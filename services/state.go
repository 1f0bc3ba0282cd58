package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"newday-backend/models"
	"newday-backend/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Keys of the persisted collections.
const (
	CustomersKey = "customers"
	JobsKey      = "jobs"
	ChemicalsKey = "chemicals"
)

// PersistStatus reports the outcome of the most recent write-through.
type PersistStatus struct {
	Healthy   bool      `json:"healthy"`
	LastError string    `json:"lastError,omitempty"`
	LastWrite time.Time `json:"lastWrite,omitempty"`
	Customers int       `json:"customers"`
	Jobs      int       `json:"jobs"`
	Chemicals int       `json:"chemicals"`
}

// State owns the in-memory collections and writes them through to the store
// after every mutation. Callers holding mu use the *Locked helpers.
type State struct {
	mu     sync.RWMutex
	store  store.Store
	logger *zap.Logger
	now    func() time.Time
	newID  func() string

	customers []models.Customer
	jobs      []models.Job
	chemicals []models.Chemical

	lastErr   error
	lastWrite time.Time
}

// NewState loads every collection from st. A missing or corrupt collection
// starts empty; an empty chemical library is seeded with the defaults.
func NewState(ctx context.Context, st store.Store, logger *zap.Logger, now func() time.Time, newID func() string) *State {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = NewID
	}
	s := &State{store: st, logger: logger, now: now, newID: newID}

	s.customers = loadCollection[models.Customer](ctx, st, CustomersKey, logger)
	s.jobs = loadCollection[models.Job](ctx, st, JobsKey, logger)
	s.chemicals = loadCollection[models.Chemical](ctx, st, ChemicalsKey, logger)
	if len(s.chemicals) == 0 {
		s.chemicals = append([]models.Chemical(nil), models.DefaultChemicals...)
	}

	logger.Info("state loaded",
		zap.Int("customers", len(s.customers)),
		zap.Int("jobs", len(s.jobs)),
		zap.Int("chemicals", len(s.chemicals)))
	return s
}

// NewID returns a time-ordered UUIDv7, so ids sort in creation order.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func loadCollection[T any](ctx context.Context, st store.Store, key string, logger *zap.Logger) []T {
	raw, ok, err := st.Get(ctx, key)
	if err != nil {
		logger.Warn("read collection failed, starting empty", zap.String("key", key), zap.Error(err))
		return []T{}
	}
	if !ok || raw == "" {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn("corrupt collection, starting empty", zap.String("key", key), zap.Error(err))
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// persistLocked writes the named collections. A failure is logged and kept
// for Status; the in-memory mutation stands.
func (s *State) persistLocked(ctx context.Context, keys ...string) {
	var failed error
	for _, key := range keys {
		var value any
		switch key {
		case CustomersKey:
			value = s.customers
		case JobsKey:
			value = s.jobs
		case ChemicalsKey:
			value = s.chemicals
		default:
			continue
		}
		data, err := json.Marshal(value)
		if err == nil {
			err = s.store.Set(ctx, key, string(data))
		}
		if err != nil {
			failed = err
			s.logger.Error("write-through failed", zap.String("key", key), zap.Error(err))
		}
	}
	s.lastErr = failed
	if failed == nil {
		s.lastWrite = s.now()
	}
}

// Status reports persistence health and collection sizes.
func (s *State) Status() PersistStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := PersistStatus{
		Healthy:   s.lastErr == nil,
		LastWrite: s.lastWrite,
		Customers: len(s.customers),
		Jobs:      len(s.jobs),
		Chemicals: len(s.chemicals),
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	return st
}

func (s *State) customerIndexLocked(id string) int {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) jobIndexLocked(id string) int {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) chemicalIndexLocked(id string) int {
	for i := range s.chemicals {
		if s.chemicals[i].ID == id {
			return i
		}
	}
	return -1
}

// jobsSnapshot copies the job collection for read-only computation.
func (s *State) jobsSnapshot() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Job{}, s.jobs...)
}
