package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Add Orders Table", "orders plus line items")
	require.NoError(t, err)

	assert.Len(t, mf.Version, 14)
	assert.Contains(t, filepath.Base(mf.UpPath), "add_orders_table.up.sql")
	assert.Contains(t, filepath.Base(mf.DownPath), "add_orders_table.down.sql")

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "Add Orders Table")
	assert.Contains(t, string(up), "orders plus line items")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "Rollback")
}

func TestCreateMigration_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "migrations")

	_, err := CreateMigration(dir, "init", "")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"add orders table", "add_orders_table"},
		{"Add-Orders  Table", "add_orders_table"},
		{"v2_schema", "v2_schema"},
		{"trailing space ", "trailing_space"},
		{"weird!@#chars", "weirdchars"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeName(tt.input))
		})
	}
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	_, err := CreateMigration(dir, "first", "")
	require.NoError(t, err)
	_, err = CreateMigration(dir, "second", "")
	require.NoError(t, err)

	// stray files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("notes"), 0644))

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Len(t, migrations, 2)
	for _, m := range migrations {
		assert.NotContains(t, m, ".sql")
	}
}

func TestListMigrations_MissingDirectory(t *testing.T) {
	migrations, err := ListMigrations(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, migrations)
}
