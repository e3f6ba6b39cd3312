package repository

import (
	"gorm.io/gorm"
)

// Factory manages all repositories
type Factory struct {
	EventRepository EventRepository
}

// NewRepositoryFactory creates a repository factory with all repositories
func NewRepositoryFactory(db *gorm.DB) *Factory {
	return &Factory{
		EventRepository: NewEventRepository(db),
	}
}
