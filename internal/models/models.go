// internal/models/models.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Generation outcomes
const (
	OutcomeReady    = "ready"
	OutcomeSkipped  = "skipped"
	OutcomeConflict = "conflict"
	OutcomeFailed   = "failed"
)

// GenerationEvent records that a generator ran. The generated text itself is
// never stored; Options keeps only the selected enum values and flags.
type GenerationEvent struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Kind       string         `gorm:"type:varchar(50);not null;index" json:"kind"`
	SessionID  string         `gorm:"type:varchar(100);index" json:"session_id"`
	RequestID  string         `gorm:"type:varchar(100)" json:"request_id,omitempty"`
	Outcome    string         `gorm:"type:varchar(50);not null;index" json:"outcome"`
	DurationMs int64          `gorm:"not null;default:0" json:"duration_ms"`
	Options    datatypes.JSON `gorm:"type:jsonb" json:"options,omitempty" swaggertype:"object"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

// BeforeCreate assigns an ID when the caller did not set one
func (e *GenerationEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// KindCount is a per-kind aggregate row
type KindCount struct {
	Kind  string `json:"kind"`
	Count int64  `json:"count"`
}
