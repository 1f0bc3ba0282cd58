package models

import "time"

// Snapshot is the export file: every collection plus when it was taken.
type Snapshot struct {
	Customers  []Customer `json:"customers"`
	Jobs       []Job      `json:"jobs"`
	Chemicals  []Chemical `json:"chemicals"`
	ExportedAt time.Time  `json:"exportedAt"`
}
