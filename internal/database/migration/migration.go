package migration

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/chynybekuuludastan/creator_toolkit/internal/logger"
)

// Migration represents a database migration record
type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;unique"`
	Batch     int       `gorm:"not null"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

// MigrationFunc defines a function that can run a migration
type MigrationFunc func(tx *gorm.DB) error

// Step is a named pair of up and down functions
type Step struct {
	Name string
	Up   MigrationFunc
	Down MigrationFunc
}

// Status describes one registered migration
type Status struct {
	Name      string
	Applied   bool
	Batch     int
	AppliedAt time.Time
}

// Migrator handles database migrations
type Migrator struct {
	DB           *gorm.DB
	Steps        []Step
	CurrentBatch int
}

// NewMigrator creates a new migrator instance
func NewMigrator(db *gorm.DB) (*Migrator, error) {
	if err := db.AutoMigrate(&Migration{}); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	var maxBatch int
	if err := db.Model(&Migration{}).Select("COALESCE(MAX(batch), 0)").Row().Scan(&maxBatch); err != nil {
		return nil, fmt.Errorf("failed to read current batch: %w", err)
	}

	return &Migrator{
		DB:           db,
		Steps:        RegisterMigrations(),
		CurrentBatch: maxBatch + 1,
	}, nil
}

// RegisterMigrations lists all migrations in apply order
func RegisterMigrations() []Step {
	return []Step{
		{Name: "01_create_generation_events_table", Up: CreateGenerationEventsTable, Down: DropGenerationEventsTable},
		{Name: "02_add_generation_events_indexes", Up: AddGenerationEventsIndexes, Down: RemoveGenerationEventsIndexes},
	}
}

func (m *Migrator) find(name string) (Step, bool) {
	for _, s := range m.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return Step{}, false
}

// Migrate runs all pending migrations
func (m *Migrator) Migrate() error {
	var appliedMigrations []Migration
	if err := m.DB.Find(&appliedMigrations).Error; err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	appliedMap := make(map[string]bool, len(appliedMigrations))
	for _, migration := range appliedMigrations {
		appliedMap[migration.Name] = true
	}

	for _, step := range m.Steps {
		if appliedMap[step.Name] {
			continue
		}
		logger.Info("Running migration", "name", step.Name)

		err := m.DB.Transaction(func(tx *gorm.DB) error {
			if err := step.Up(tx); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			return tx.Create(&Migration{Name: step.Name, Batch: m.CurrentBatch}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", step.Name, err)
		}

		logger.Info("Migration applied", "name", step.Name)
	}

	return nil
}

// Rollback rolls back the last batch of migrations
func (m *Migrator) Rollback() error {
	var migrationsToRollback []Migration
	if err := m.DB.Where("batch = ?", m.CurrentBatch-1).Order("id DESC").Find(&migrationsToRollback).Error; err != nil {
		return fmt.Errorf("failed to get migrations to rollback: %w", err)
	}

	if len(migrationsToRollback) == 0 {
		logger.Info("No migrations to rollback")
		return nil
	}

	return m.rollbackAll(migrationsToRollback)
}

// Reset rolls back all migrations and then applies them again
func (m *Migrator) Reset() error {
	var appliedMigrations []Migration
	if err := m.DB.Order("id DESC").Find(&appliedMigrations).Error; err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	if err := m.rollbackAll(appliedMigrations); err != nil {
		return err
	}

	m.CurrentBatch = 1
	return m.Migrate()
}

func (m *Migrator) rollbackAll(migrations []Migration) error {
	for _, migration := range migrations {
		step, ok := m.find(migration.Name)
		if !ok {
			continue
		}
		logger.Info("Rolling back migration", "name", migration.Name)

		record := migration
		err := m.DB.Transaction(func(tx *gorm.DB) error {
			if err := step.Down(tx); err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}
			return tx.Delete(&record).Error
		})
		if err != nil {
			return fmt.Errorf("failed to rollback migration %s: %w", migration.Name, err)
		}
	}
	return nil
}

// GetStatus returns the status of all migrations in apply order
func (m *Migrator) GetStatus() ([]Status, error) {
	var appliedMigrations []Migration
	if err := m.DB.Find(&appliedMigrations).Error; err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	appliedMap := make(map[string]Migration, len(appliedMigrations))
	for _, migration := range appliedMigrations {
		appliedMap[migration.Name] = migration
	}

	status := make([]Status, 0, len(m.Steps))
	for _, step := range m.Steps {
		migration, applied := appliedMap[step.Name]
		s := Status{Name: step.Name, Applied: applied}
		if applied {
			s.Batch = migration.Batch
			s.AppliedAt = migration.AppliedAt
		}
		status = append(status, s)
	}

	return status, nil
}

// CreateGenerationEventsTable creates the generation_events table
func CreateGenerationEventsTable(tx *gorm.DB) error {
	return tx.Exec(`
		CREATE TABLE IF NOT EXISTS generation_events (
			id UUID PRIMARY KEY,
			kind VARCHAR(50) NOT NULL,
			session_id VARCHAR(100),
			request_id VARCHAR(100),
			outcome VARCHAR(50) NOT NULL,
			duration_ms BIGINT NOT NULL DEFAULT 0,
			options JSONB,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`).Error
}

// DropGenerationEventsTable drops the generation_events table
func DropGenerationEventsTable(tx *gorm.DB) error {
	return tx.Exec("DROP TABLE IF EXISTS generation_events CASCADE").Error
}

// AddGenerationEventsIndexes adds lookup indexes
func AddGenerationEventsIndexes(tx *gorm.DB) error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_generation_events_kind ON generation_events(kind)",
		"CREATE INDEX IF NOT EXISTS idx_generation_events_session_id ON generation_events(session_id)",
		"CREATE INDEX IF NOT EXISTS idx_generation_events_outcome ON generation_events(outcome)",
		"CREATE INDEX IF NOT EXISTS idx_generation_events_created_at ON generation_events(created_at)",
	}
	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// RemoveGenerationEventsIndexes drops the lookup indexes
func RemoveGenerationEventsIndexes(tx *gorm.DB) error {
	for _, idx := range []string{
		"idx_generation_events_kind",
		"idx_generation_events_session_id",
		"idx_generation_events_outcome",
		"idx_generation_events_created_at",
	} {
		if err := tx.Exec("DROP INDEX IF EXISTS " + idx).Error; err != nil {
			return err
		}
	}
	return nil
}
