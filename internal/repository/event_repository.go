package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/chynybekuuludastan/creator_toolkit/internal/models"
)

// EventRepository defines operations for GenerationEvent model
type EventRepository interface {
	Repository
	Record(event *models.GenerationEvent) error
	CountsByKindSince(since time.Time) ([]models.KindCount, error)
	FindBySession(sessionID string, limit int) ([]models.GenerationEvent, error)
}

// eventRepository implements EventRepository
type eventRepository struct {
	*BaseRepository
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// Record stores a generation event
func (r *eventRepository) Record(event *models.GenerationEvent) error {
	return r.Create(event)
}

// CountsByKindSince groups events created after since by kind
func (r *eventRepository) CountsByKindSince(since time.Time) ([]models.KindCount, error) {
	var counts []models.KindCount
	err := r.DB.Model(&models.GenerationEvent{}).
		Select("kind, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("kind").
		Order("kind").
		Scan(&counts).Error
	return counts, err
}

// FindBySession returns the most recent events of a session
func (r *eventRepository) FindBySession(sessionID string, limit int) ([]models.GenerationEvent, error) {
	if limit <= 0 {
		limit = 20
	}

	var events []models.GenerationEvent
	err := r.DB.Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
