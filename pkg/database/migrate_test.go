package database

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/timetable-api/pkg/config"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	src, err := MigrationSource()
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)

	up, _, err := src.ReadUp(version)
	require.NoError(t, err)
	body, err := io.ReadAll(up)
	require.NoError(t, err)
	_ = up.Close()
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS timetable_entries")
	assert.Contains(t, string(body), "UNIQUE (day, time_slot, room_id)")

	down, _, err := src.ReadDown(version)
	require.NoError(t, err)
	_ = down.Close()
}

func TestRollbackRequiresPositiveSteps(t *testing.T) {
	assert.Error(t, RollbackMigrations(nil, 0, nil))
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "db", Port: 5432, User: "app", Password: "secret", Name: "timetable", SSLMode: "disable"})
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=timetable sslmode=disable", dsn)
}
