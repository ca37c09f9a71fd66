package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "medical-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "migrations", cfg.Database.MigrationsPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Seed.DoctorsPerDeptMin)
	assert.Equal(t, 7, cfg.Seed.DoctorsPerDeptMax)
	assert.InDelta(t, 1.0, cfg.Geocode.RequestsPerSecond, 0.001)
	assert.False(t, cfg.Seed.MigrateLegacyNames)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("MEDICAL_DATABASE_HOST", "db.internal")
	t.Setenv("MEDICAL_DATABASE_PORT", "5433")
	t.Setenv("MEDICAL_SEED_MIGRATE_LEGACY_NAMES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.True(t, cfg.Seed.MigrateLegacyNames)
}

func TestLoad_ProductionValidation(t *testing.T) {
	t.Setenv("MEDICAL_APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.password")

	t.Setenv("MEDICAL_DATABASE_PASSWORD", "secret")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sslmode")

	t.Setenv("MEDICAL_DATABASE_SSLMODE", "require")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin_password")

	t.Setenv("MEDICAL_SEED_ADMIN_PASSWORD", "a-real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
}

func TestLoad_DoctorRangeValidation(t *testing.T) {
	t.Setenv("MEDICAL_SEED_DOCTORS_PER_DEPT_MIN", "9")
	t.Setenv("MEDICAL_SEED_DOCTORS_PER_DEPT_MAX", "6")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doctors_per_dept_min")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:word/1",
		DBName:   "medical",
		SSLMode:  "disable",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%3Aword%2F1")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss:word/1")
}
