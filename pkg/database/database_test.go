package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "app", Password: "secret", DBName: "inventorydb", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=inventorydb sslmode=disable", cfg.DSN())
}

func TestNewSQLiteConnection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "inventory.db")

	db, err := NewSQLiteConnection(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestNewSQLiteConnection_EmptyPath(t *testing.T) {
	_, err := NewSQLiteConnection("")
	assert.Error(t, err)
}
