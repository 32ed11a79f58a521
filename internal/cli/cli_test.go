package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/community-records/internal/persistence"
	"github.com/example/community-records/internal/testfixtures"
)

func testOptions() *RootOptions {
	return &RootOptions{Format: "text", Adapter: persistence.NewMemory()}
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func login(t *testing.T, opts *RootOptions, username, password string) {
	t.Helper()

	out, err := execute(t, NewLoginCommand(opts), username, "--password", password)
	require.NoError(t, err)
	require.Contains(t, out, "logged in as "+username)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("rejects bad credentials", func(t *testing.T) {
		t.Parallel()

		opts := testOptions()
		_, err := execute(t, NewLoginCommand(opts), "admin", "--password", "wrong")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("session survives across invocations", func(t *testing.T) {
		t.Parallel()

		opts := testOptions()
		login(t, opts, "admin", "admin123")

		out, err := execute(t, NewWhoamiCommand(opts))
		require.NoError(t, err)
		assert.Contains(t, out, "admin (admin)")
	})

	t.Run("accepts accounts registered outside the command tree", func(t *testing.T) {
		t.Parallel()

		opts := testOptions()
		stores, err := testfixtures.NewStores(opts.Adapter, nil)
		require.NoError(t, err)
		_, err = stores.Accounts.Register(testfixtures.SampleRegisterInput("bob2025"))
		require.NoError(t, err)

		login(t, opts, "bob2025", "secret1")
	})

	t.Run("logout ends the session", func(t *testing.T) {
		t.Parallel()

		opts := testOptions()
		login(t, opts, "demo", "demo123")

		out, err := execute(t, NewLogoutCommand(opts))
		require.NoError(t, err)
		assert.Contains(t, out, "logged out")

		_, err = execute(t, NewWhoamiCommand(opts))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not logged in")
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates an account that can log in", func(t *testing.T) {
		t.Parallel()

		opts := testOptions()
		out, err := execute(t, NewRegisterCommand(opts),
			"alice123", "--password", "secret1", "--email", "a@x.com", "--full-name", "Alice A")
		require.NoError(t, err)
		assert.Contains(t, out, "registered alice123")

		login(t, opts, "alice123", "secret1")
	})

	t.Run("reports the colliding field", func(t *testing.T) {
		t.Parallel()

		opts := testOptions()
		_, err := execute(t, NewRegisterCommand(opts),
			"alice123", "--password", "secret1", "--email", "a@x.com", "--full-name", "Alice A")
		require.NoError(t, err)

		_, err = execute(t, NewRegisterCommand(opts),
			"ALICE123", "--password", "secret1", "--email", "other@x.com", "--full-name", "Other A")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "username")
	})
}

func TestEventCommands(t *testing.T) {
	t.Parallel()

	t.Run("add requires a session", func(t *testing.T) {
		t.Parallel()

		opts := testOptions()
		_, err := execute(t, NewEventAddCommand(opts),
			"--title", "T", "--description", "D", "--date", "2025-01-01", "--time", "10:00", "--location", "L")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not logged in")
	})

	t.Run("full lifecycle", func(t *testing.T) {
		t.Parallel()

		opts := testOptions()
		login(t, opts, "demo", "demo123")

		out, err := execute(t, NewEventAddCommand(opts),
			"--title", "Spring Festival", "--description", "Food stalls and live music",
			"--date", "2025-04-12", "--time", "12:00", "--location", "Main Square")
		require.NoError(t, err)
		assert.Contains(t, out, "created event 1")

		out, err = execute(t, NewEventListCommand(opts))
		require.NoError(t, err)
		assert.Contains(t, out, "Spring Festival")
		assert.Contains(t, out, "demo")

		out, err = execute(t, NewEventListCommand(opts), "--search", "festival")
		require.NoError(t, err)
		assert.Contains(t, out, "Spring Festival")

		out, err = execute(t, NewEventListCommand(opts), "--search", "tango")
		require.NoError(t, err)
		assert.Contains(t, out, "no events")

		out, err = execute(t, NewEventShowCommand(opts), "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Main Square")

		out, err = execute(t, NewEventUpdateCommand(opts), "1", "--title", "Autumn Festival")
		require.NoError(t, err)
		assert.Contains(t, out, "updated event 1")

		out, err = execute(t, NewEventShowCommand(opts), "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Autumn Festival")
		// Unchanged fields survive a partial update.
		assert.Contains(t, out, "Main Square")

		out, err = execute(t, NewEventDeleteCommand(opts), "1")
		require.NoError(t, err)
		assert.Contains(t, out, "deleted event 1")

		_, err = execute(t, NewEventShowCommand(opts), "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no such record")
	})

	t.Run("validation errors name the fields", func(t *testing.T) {
		t.Parallel()

		opts := testOptions()
		login(t, opts, "demo", "demo123")

		_, err := execute(t, NewEventAddCommand(opts),
			"--title", "  ", "--description", "D", "--date", "2025-01-01", "--time", "10:00", "--location", "L")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("date range and creator filters", func(t *testing.T) {
		t.Parallel()

		opts := testOptions()
		login(t, opts, "demo", "demo123")

		for _, date := range []string{"2025-04-10", "2025-05-02"} {
			_, err := execute(t, NewEventAddCommand(opts),
				"--title", "T "+date, "--description", "D", "--date", date, "--time", "10:00", "--location", "L")
			require.NoError(t, err)
		}

		out, err := execute(t, NewEventListCommand(opts), "--from", "2025-05-01")
		require.NoError(t, err)
		assert.NotContains(t, out, "2025-04-10")
		assert.Contains(t, out, "2025-05-02")

		out, err = execute(t, NewEventListCommand(opts), "--creator", "demo")
		require.NoError(t, err)
		assert.Contains(t, out, "2025-04-10")

		out, err = execute(t, NewEventListCommand(opts), "--creator", "nobody")
		require.NoError(t, err)
		assert.Contains(t, out, "no events")
	})

	t.Run("lists records created outside the command tree", func(t *testing.T) {
		t.Parallel()

		opts := testOptions()
		stores, err := testfixtures.NewStores(opts.Adapter, nil)
		require.NoError(t, err)
		_, err = stores.Events.Create(testfixtures.SampleEventInput(), "demo")
		require.NoError(t, err)

		out, err := execute(t, NewEventListCommand(opts))
		require.NoError(t, err)
		assert.Contains(t, out, "Neighborhood Cleanup")
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		opts := testOptions()
		_, err := execute(t, NewEventShowCommand(opts), "seven")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid event id")
	})
}

func TestUsersCommands(t *testing.T) {
	t.Parallel()

	t.Run("listing requires an admin session", func(t *testing.T) {
		t.Parallel()

		opts := testOptions()
		login(t, opts, "demo", "demo123")

		_, err := execute(t, NewUsersCommand(opts))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not permitted")
	})

	t.Run("admin can list and inspect", func(t *testing.T) {
		t.Parallel()

		opts := testOptions()
		login(t, opts, "admin", "admin123")

		out, err := execute(t, NewUsersCommand(opts))
		require.NoError(t, err)
		assert.Contains(t, out, "admin")
		assert.Contains(t, out, "demo")
		// The listing never includes passwords.
		assert.NotContains(t, out, "admin123")

		out, err = execute(t, NewUsersShowCommand(opts), "demo")
		require.NoError(t, err)
		assert.Contains(t, out, "Demo User")
	})
}

func TestProfileCommand(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	login(t, opts, "demo", "demo123")

	out, err := execute(t, NewProfileCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "Demo User")

	out, err = execute(t, NewProfileCommand(opts), "--full-name", "Demo Q. User")
	require.NoError(t, err)
	assert.Contains(t, out, "updated profile of demo")

	out, err = execute(t, NewProfileCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "Demo Q. User")
}

func TestPasswdCommand(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	login(t, opts, "demo", "demo123")

	_, err := execute(t, NewPasswdCommand(opts), "--current", "wrong", "--new", "newsecret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	out, err := execute(t, NewPasswdCommand(opts), "--current", "demo123", "--new", "newsecret")
	require.NoError(t, err)
	assert.Contains(t, out, "password changed")

	login(t, opts, "demo", "newsecret")
}

func TestStatsCommand(t *testing.T) {
	t.Parallel()

	opts := testOptions()

	out, err := execute(t, NewStatsCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "Accounts:       2")
	assert.Contains(t, out, "Admins:       1")
}

func TestLoginWritesBothCollections(t *testing.T) {
	t.Parallel()

	recorder := testfixtures.NewRecordingAdapter(nil)
	opts := &RootOptions{Format: "text", Adapter: recorder}
	login(t, opts, "admin", "admin123")

	// Authentication stamps the last login and installs the session.
	assert.NotZero(t, recorder.Writes("users"))
	assert.NotZero(t, recorder.Writes("session"))
}

func TestJSONFormat(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	opts.Format = "json"
	login(t, opts, "demo", "demo123")

	out, err := execute(t, NewWhoamiCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, `"username": "demo"`)
	assert.NotContains(t, out, "password")
}
