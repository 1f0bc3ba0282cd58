package services

import (
	"context"
	"strings"

	"newday-backend/models"
)

// ChemicalLibrary is the list of products offered when logging chemical usage.
type ChemicalLibrary struct {
	state *State
}

func (l *ChemicalLibrary) List() []models.Chemical {
	l.state.mu.RLock()
	defer l.state.mu.RUnlock()
	return append([]models.Chemical{}, l.state.chemicals...)
}

func (l *ChemicalLibrary) Get(id string) (models.Chemical, bool) {
	l.state.mu.RLock()
	defer l.state.mu.RUnlock()
	if i := l.state.chemicalIndexLocked(id); i >= 0 {
		return l.state.chemicals[i], true
	}
	return models.Chemical{}, false
}

// Add appends a product. Names are not forced unique.
func (l *ChemicalLibrary) Add(ctx context.Context, name, epaNumber string) (models.Chemical, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Chemical{}, validationError("chemical name is required")
	}

	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	c := models.Chemical{ID: l.state.newID(), Name: name, EPANumber: strings.TrimSpace(epaNumber)}
	l.state.chemicals = append(l.state.chemicals, c)
	l.state.persistLocked(ctx, ChemicalsKey)
	return c, nil
}

// Delete drops a product from the library. Jobs keep their usage lines as written.
func (l *ChemicalLibrary) Delete(ctx context.Context, id string) error {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	i := l.state.chemicalIndexLocked(id)
	if i < 0 {
		return notFound("chemical", id)
	}
	l.state.chemicals = append(l.state.chemicals[:i], l.state.chemicals[i+1:]...)
	l.state.persistLocked(ctx, ChemicalsKey)
	return nil
}

// resolveUsageLocked validates one usage line and fills a blank name or EPA
// number from the library entry it references. Unknown references keep the
// typed name.
func (l *ChemicalLibrary) resolveUsageLocked(u models.ChemicalUsage) (models.ChemicalUsage, error) {
	u.ChemicalID = strings.TrimSpace(u.ChemicalID)
	u.Name = strings.TrimSpace(u.Name)
	u.EPANumber = strings.TrimSpace(u.EPANumber)
	u.Amount = strings.TrimSpace(u.Amount)
	u.MixRatio = strings.TrimSpace(u.MixRatio)

	if u.ChemicalID != "" {
		if i := l.state.chemicalIndexLocked(u.ChemicalID); i >= 0 {
			entry := l.state.chemicals[i]
			if u.Name == "" {
				u.Name = entry.Name
			}
			if u.EPANumber == "" {
				u.EPANumber = entry.EPANumber
			}
		}
	}
	if u.Name == "" {
		return u, validationError("chemical name is required on every usage line")
	}

	unit, err := models.ParseUnit(string(u.Unit))
	if err != nil {
		return u, validationError("%v", err)
	}
	u.Unit = unit
	return u, nil
}
