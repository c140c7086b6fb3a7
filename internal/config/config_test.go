package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriverAndDSN(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantDriver string
		wantDSN    string
	}{
		{
			name:       "postgres url",
			url:        "postgres://user:pw@localhost:5432/courier?sslmode=disable",
			wantDriver: "postgres",
			wantDSN:    "postgres://user:pw@localhost:5432/courier?sslmode=disable",
		},
		{
			name:       "legacy postgresql scheme is normalized",
			url:        "postgresql://user:pw@localhost/courier",
			wantDriver: "postgres",
			wantDSN:    "postgres://user:pw@localhost/courier",
		},
		{
			name:       "sqlite scheme",
			url:        "sqlite://data/courier.db",
			wantDriver: "sqlite3",
			wantDSN:    "data/courier.db",
		},
		{
			name:       "sqlite3 scheme",
			url:        "sqlite3:///tmp/courier.db",
			wantDriver: "sqlite3",
			wantDSN:    "/tmp/courier.db",
		},
		{
			name:       "bare path",
			url:        "courier.db",
			wantDriver: "sqlite3",
			wantDSN:    "courier.db",
		},
		{
			name:       "empty falls back to local file",
			url:        "",
			wantDriver: "sqlite3",
			wantDSN:    DefaultSQLitePath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{DatabaseURL: tt.url}
			driver, dsn := cfg.DriverAndDSN()
			assert.Equal(t, tt.wantDriver, driver)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("DATABASE_URL", "postgres://localhost/courier")

	cfg := Load()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "postgres://localhost/courier", cfg.DatabaseURL)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("DATABASE_URL", "")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.DatabaseURL)
}
