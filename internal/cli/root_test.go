package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/community-records/internal/config"
)

func TestRootCommand(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown formats", func(t *testing.T) {
		t.Parallel()

		root := NewRootCommand(config.Config{SQLiteDSN: "file:unused.db"})
		_, err := execute(t, root, "--format", "xml", "stats")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("session persists in the database file", func(t *testing.T) {
		t.Parallel()

		dsn := filepath.Join(t.TempDir(), "records.db")
		cfg := config.Config{SQLiteDSN: dsn}

		out, err := execute(t, NewRootCommand(cfg), "login", "admin", "--password", "admin123")
		require.NoError(t, err)
		assert.Contains(t, out, "logged in as admin")

		// A fresh process sees the same session.
		out, err = execute(t, NewRootCommand(cfg), "whoami")
		require.NoError(t, err)
		assert.Contains(t, out, "admin (admin)")

		out, err = execute(t, NewRootCommand(cfg), "event", "add",
			"--title", "Book Swap", "--description", "Bring one, take one",
			"--date", "2025-06-01", "--time", "14:00", "--location", "Library")
		require.NoError(t, err)
		assert.Contains(t, out, "created event 1")

		out, err = execute(t, NewRootCommand(cfg), "event", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "Book Swap")
	})
}
