package migrate

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/and161185/propledger/migrations"
)

func TestEmbeddedMigrations_HaveGooseSections(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files, "want at least one migration")

	for _, name := range files {
		b, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)
		body := string(b)
		require.Contains(t, body, "-- +goose Up", name)
		require.Contains(t, body, "-- +goose Down", name)
	}
}

func TestInitMigration_EventsAppendOnly(t *testing.T) {
	b, err := fs.ReadFile(migrations.FS, "00001_init.sql")
	require.NoError(t, err)
	require.True(t, strings.Contains(string(b), "BEFORE UPDATE OR DELETE ON property_events"),
		"want trigger guarding ledger rows")
}
