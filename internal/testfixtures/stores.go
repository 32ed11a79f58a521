package testfixtures

import (
	"fmt"
	"log/slog"

	"github.com/example/community-records/internal/persistence"
	"github.com/example/community-records/internal/store"
)

// Stores bundles the two record stores with the adapter and clock they were
// built on.
type Stores struct {
	Events   *store.EventStore
	Accounts *store.AccountStore
	Adapter  persistence.Adapter
	Clock    *Clock
}

// NewStores builds both stores over the supplied adapter with a fixture
// clock. A nil adapter gets a fresh in-memory one. The account store seeds
// itself when the adapter carries no users collection.
func NewStores(adapter persistence.Adapter, logger *slog.Logger) (*Stores, error) {
	if adapter == nil {
		adapter = persistence.NewMemory()
	}
	clock := NewClock(ReferenceTime())

	events, err := store.NewEventStoreWithLogger(adapter, clock.NowFunc(), logger)
	if err != nil {
		return nil, fmt.Errorf("build event store: %w", err)
	}
	accounts, err := store.NewAccountStoreWithLogger(adapter, clock.NowFunc(), logger)
	if err != nil {
		return nil, fmt.Errorf("build account store: %w", err)
	}

	return &Stores{Events: events, Accounts: accounts, Adapter: adapter, Clock: clock}, nil
}
