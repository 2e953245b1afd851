package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/product-management/internal/infrastructure/store"
	"github.com/jhoicas/product-management/pkg/config"
	"github.com/jhoicas/product-management/pkg/logger"
)

func TestOpen_SQLiteCreaArchivo(t *testing.T) {
	cfg := config.DBConfig{Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "test.sqlite3")}

	s, err := store.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Repos().Categories.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.FileExists(t, cfg.SQLitePath)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := store.Open(context.Background(), config.DBConfig{Driver: "mysql"}, logger.Nop())
	assert.Error(t, err)
}
