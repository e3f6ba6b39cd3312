package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterMigrations_OrderedAndUnique(t *testing.T) {
	steps := RegisterMigrations()

	seen := make(map[string]bool)
	for i, step := range steps {
		assert.False(t, seen[step.Name], "duplicate migration %s", step.Name)
		seen[step.Name] = true
		assert.NotNil(t, step.Up, step.Name)
		assert.NotNil(t, step.Down, step.Name)
		if i > 0 {
			assert.Less(t, steps[i-1].Name, step.Name, "migrations must be listed in apply order")
		}
	}
	assert.Equal(t, "01_create_generation_events_table", steps[0].Name)
}

func TestMigrator_Find(t *testing.T) {
	m := &Migrator{Steps: RegisterMigrations()}

	step, ok := m.find("02_add_generation_events_indexes")
	assert.True(t, ok)
	assert.Equal(t, "02_add_generation_events_indexes", step.Name)

	_, ok = m.find("99_missing")
	assert.False(t, ok)
}
