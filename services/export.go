package services

import (
	"context"
	"encoding/json"
	"strings"

	"newday-backend/models"
	"newday-backend/utils"

	"go.uber.org/zap"
)

// Export captures every collection.
func (s *State) Export() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Snapshot{
		Customers:  append([]models.Customer{}, s.customers...),
		Jobs:       append([]models.Job{}, s.jobs...),
		Chemicals:  append([]models.Chemical{}, s.chemicals...),
		ExportedAt: s.now(),
	}
}

type importPayload struct {
	Customers *[]models.Customer `json:"customers"`
	Jobs      *[]models.Job      `json:"jobs"`
	Chemicals *[]models.Chemical `json:"chemicals"`
}

// Import replaces all state with an exported file. The file must carry all
// three collections; nothing is merged.
func (s *State) Import(ctx context.Context, data []byte) (models.Snapshot, error) {
	var p importPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return models.Snapshot{}, validationError("import file is not valid JSON: %v", err)
	}
	if p.Customers == nil || p.Jobs == nil || p.Chemicals == nil {
		return models.Snapshot{}, validationError("import file must contain customers, jobs and chemicals arrays")
	}
	for i := range *p.Jobs {
		if err := canonicalSlot(&(*p.Jobs)[i]); err != nil {
			return models.Snapshot{}, err
		}
	}

	s.mu.Lock()
	s.customers = *p.Customers
	s.jobs = *p.Jobs
	s.chemicals = *p.Chemicals
	s.persistLocked(ctx, CustomersKey, JobsKey, ChemicalsKey)
	s.mu.Unlock()

	s.logger.Info("state imported",
		zap.Int("customers", len(*p.Customers)),
		zap.Int("jobs", len(*p.Jobs)),
		zap.Int("chemicals", len(*p.Chemicals)))
	return s.Export(), nil
}

// canonicalSlot rewrites an imported job's date and time into the YYYY-MM-DD
// and HH:MM forms the calendar keys on. Blank fields are left blank.
func canonicalSlot(j *models.Job) error {
	if strings.TrimSpace(j.Date) != "" {
		d, err := utils.ParseDate(j.Date)
		if err != nil {
			return validationError("job %q: %v", j.ID, err)
		}
		j.Date = utils.FormatDate(d)
	}
	if strings.TrimSpace(j.Time) != "" {
		clock, err := utils.NormalizeTime(j.Time)
		if err != nil {
			return validationError("job %q: %v", j.ID, err)
		}
		j.Time = clock
	}
	return nil
}
