package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/example/community-records/internal/logging"
	"github.com/example/community-records/internal/persistence"
	"github.com/example/community-records/internal/persistence/sqlite"
	"github.com/example/community-records/internal/store"
)

// runtime bundles the stores a command operates on for one invocation.
type runtime struct {
	logger   *slog.Logger
	events   *store.EventStore
	accounts *store.AccountStore
	closeFn  func() error
}

// Close releases the storage backing the runtime.
func (r *runtime) Close() error {
	if r == nil || r.closeFn == nil {
		return nil
	}
	return r.closeFn()
}

// openRuntime opens the persistence adapter and constructs both stores.
// Every invocation gets a uuid run id on its logger so interleaved runs can
// be told apart in shared log output.
func openRuntime(cmd *cobra.Command, opts *RootOptions) (*runtime, error) {
	logger := logging.FromContext(cmd.Context())
	if opts.Verbose {
		logger = logging.New(os.Stderr, slog.LevelDebug)
	}
	logger = logger.With("run_id", uuid.NewString())

	adapter := opts.Adapter
	closeFn := func() error { return nil }
	if adapter == nil {
		storage, err := sqlite.Open(opts.Database)
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
		adapter = storage
		closeFn = storage.Close
	}

	events, err := store.NewEventStoreWithLogger(adapter, time.Now, logger)
	if err != nil {
		_ = closeFn()
		return nil, fmt.Errorf("load events: %w", err)
	}
	accounts, err := store.NewAccountStoreWithLogger(adapter, time.Now, logger)
	if err != nil {
		_ = closeFn()
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	return &runtime{logger: logger, events: events, accounts: accounts, closeFn: closeFn}, nil
}

// requireSession returns the current session or a login prompt error.
func requireSession(accounts *store.AccountStore) (store.Session, error) {
	session, ok := accounts.CurrentSession()
	if !ok {
		return store.Session{}, fmt.Errorf("not logged in: run \"records login\" first")
	}
	return session, nil
}

// friendlyError rewords store failures for terminal output.
func friendlyError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *store.ValidationError
	switch {
	case errors.As(err, &vErr):
		return fmt.Errorf("invalid input: %s", formatFieldErrors(vErr))
	case errors.Is(err, store.ErrInvalidCredentials):
		return fmt.Errorf("invalid credentials")
	case errors.Is(err, store.ErrUnauthorized):
		return fmt.Errorf("not permitted")
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("no such record")
	case errors.Is(err, persistence.ErrNotFound):
		return fmt.Errorf("no such collection")
	default:
		return err
	}
}
