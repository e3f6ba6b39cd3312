package repository

import (
	"gorm.io/gorm"
)

// Repository defines operations shared by every repository
type Repository interface {
	Create(entity interface{}) error
}

// BaseRepository implements the shared operations on top of GORM
type BaseRepository struct {
	DB *gorm.DB
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *gorm.DB) *BaseRepository {
	return &BaseRepository{DB: db}
}

// Create inserts a new entity
func (r *BaseRepository) Create(entity interface{}) error {
	return r.DB.Create(entity).Error
}
