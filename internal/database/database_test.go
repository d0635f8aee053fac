package database

import (
	"database/sql"
	"errors"
	"testing"

	"formportal/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildPostgresDSN(t *testing.T) {
	base := config.DatabaseConfig{Host: "db", Port: "5432", User: "forms", Name: "form_portal"}
	with := func(mut func(*config.DatabaseConfig)) config.DatabaseConfig {
		c := base
		mut(&c)
		return c
	}

	tests := []struct {
		name    string
		config  config.DatabaseConfig
		want    string
		wantErr bool
	}{
		{"parts with password and sslmode", with(func(c *config.DatabaseConfig) { c.Password = "s3cret"; c.SSLMode = "disable" }),
			"postgres://forms:s3cret@db:5432/form_portal?sslmode=disable", false},
		{"password is escaped", with(func(c *config.DatabaseConfig) { c.Password = "p@ss/word" }),
			"postgres://forms:p%40ss%2Fword@db:5432/form_portal", false},
		{"no password", with(func(c *config.DatabaseConfig) { c.SSLMode = "require" }),
			"postgres://forms@db:5432/form_portal?sslmode=require", false},
		{"explicit url wins", config.DatabaseConfig{URL: "postgres://u@elsewhere/x", Host: "ignored"},
			"postgres://u@elsewhere/x", false},
		{"missing host", with(func(c *config.DatabaseConfig) { c.Host = "" }), "", true},
		{"missing port", with(func(c *config.DatabaseConfig) { c.Port = "" }), "", true},
		{"missing user", with(func(c *config.DatabaseConfig) { c.User = "" }), "", true},
		{"missing name", with(func(c *config.DatabaseConfig) { c.Name = "" }), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildPostgresDSN(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// stubOpen swaps sqlOpen for the duration of a test.
func stubOpen(t *testing.T, db *sql.DB, err error) {
	t.Helper()
	orig := sqlOpen
	sqlOpen = func(string, string) (*sql.DB, error) { return db, err }
	t.Cleanup(func() { sqlOpen = orig })
}

func TestNewPostgres(t *testing.T) {
	conf := config.DatabaseConfig{
		URL:                "postgres://forms@db:5432/form_portal",
		MaxOpenConns:       7,
		MaxIdleConns:       3,
		ConnMaxLifetimeSec: 60,
	}

	t.Run("connects and applies pool limits", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		stubOpen(t, db, nil)
		mock.ExpectPing()

		got, err := NewPostgres(conf, zap.NewNop())
		require.NoError(t, err)
		assert.Same(t, db, got)
		assert.Equal(t, 7, got.Stats().MaxOpenConnections)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("open failure", func(t *testing.T) {
		stubOpen(t, nil, errors.New("open error"))

		got, err := NewPostgres(conf, zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sql open: open error")
		assert.Nil(t, got)
	})

	t.Run("ping failure closes the pool", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		stubOpen(t, db, nil)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		got, err := NewPostgres(conf, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db ping: connection refused")
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("incomplete config", func(t *testing.T) {
		got, err := NewPostgres(config.DatabaseConfig{}, nil)
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}
