package store

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/community-records/internal/persistence"
)

// EventStore owns the event collection. It loads the collection once at
// construction and writes it back through the adapter after every mutation;
// between writes the in-memory slice is the authority.
type EventStore struct {
	adapter persistence.Adapter
	logger  *slog.Logger
	now     func() time.Time

	events []Event
	nextID int
}

// NewEventStore constructs an EventStore and loads any persisted events.
func NewEventStore(adapter persistence.Adapter, now func() time.Time) (*EventStore, error) {
	return NewEventStoreWithLogger(adapter, now, nil)
}

// NewEventStoreWithLogger constructs an EventStore with a specified logger.
func NewEventStoreWithLogger(adapter persistence.Adapter, now func() time.Time, logger *slog.Logger) (*EventStore, error) {
	if adapter == nil {
		return nil, fmt.Errorf("event store requires a persistence adapter")
	}
	if now == nil {
		now = time.Now
	}

	s := &EventStore{
		adapter: adapter,
		logger:  defaultLogger(logger),
		now:     now,
	}

	blob, err := adapter.Read(CollectionEvents)
	switch {
	case errors.Is(err, persistence.ErrNotFound):
		// First use; start empty.
	case err != nil:
		return nil, fmt.Errorf("load events: %w", err)
	default:
		events, decodeErr := decodeEvents(blob)
		if decodeErr != nil {
			return nil, fmt.Errorf("load events: %w", decodeErr)
		}
		s.events = events
	}

	s.nextID = 1
	for _, event := range s.events {
		if event.ID >= s.nextID {
			s.nextID = event.ID + 1
		}
	}

	return s, nil
}

// Create validates the input, assigns the next identity and persists the
// new event.
func (s *EventStore) Create(input EventInput, createdBy string) (Event, error) {
	normalized := normalizeEventInput(input)
	if vErr := validateEventInput(normalized); vErr.HasErrors() {
		return Event{}, vErr
	}

	event := Event{
		ID:          s.nextID,
		Title:       normalized.Title,
		Description: normalized.Description,
		Date:        normalized.Date,
		Time:        normalized.Time,
		Location:    normalized.Location,
		CreatedBy:   createdBy,
		CreatedAt:   s.now(),
		UpdatedAt:   nil,
	}
	s.nextID++
	s.events = append(s.events, event)
	s.persist("Create")

	return event, nil
}

// All returns a copy of the full collection in insertion order.
func (s *EventStore) All() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Get returns the event with the given id, or ErrNotFound.
func (s *EventStore) Get(id int) (Event, error) {
	for _, event := range s.events {
		if event.ID == id {
			return event, nil
		}
	}
	return Event{}, ErrNotFound
}

// Update revalidates the input and merges it into the stored event,
// preserving id, creator and creation time and stamping the update time.
func (s *EventStore) Update(id int, input EventInput) (Event, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Event{}, ErrNotFound
	}

	normalized := normalizeEventInput(input)
	if vErr := validateEventInput(normalized); vErr.HasErrors() {
		return Event{}, vErr
	}

	updated := s.events[idx]
	updated.Title = normalized.Title
	updated.Description = normalized.Description
	updated.Date = normalized.Date
	updated.Time = normalized.Time
	updated.Location = normalized.Location
	updatedAt := s.now()
	updated.UpdatedAt = &updatedAt

	s.events[idx] = updated
	s.persist("Update")

	return updated, nil
}

// Delete removes and returns the event with the given id, or ErrNotFound.
func (s *EventStore) Delete(id int) (Event, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Event{}, ErrNotFound
	}

	removed := s.events[idx]
	s.events = append(s.events[:idx], s.events[idx+1:]...)
	s.persist("Delete")

	return removed, nil
}

// Search returns the events whose title or description contains the term,
// case-insensitively, preserving collection order.
func (s *EventStore) Search(term string) []Event {
	lowered := strings.ToLower(strings.TrimSpace(term))

	matches := make([]Event, 0)
	for _, event := range s.events {
		if strings.Contains(strings.ToLower(event.Title), lowered) ||
			strings.Contains(strings.ToLower(event.Description), lowered) {
			matches = append(matches, event)
		}
	}
	return matches
}

// ByDateRange returns the events whose date falls within [start, end]
// inclusive. Dates compare lexicographically, which is ordering-correct for
// the stored YYYY-MM-DD form.
func (s *EventStore) ByDateRange(start, end string) []Event {
	matches := make([]Event, 0)
	for _, event := range s.events {
		if event.Date >= start && event.Date <= end {
			matches = append(matches, event)
		}
	}
	return matches
}

// ByCreator returns the events created by the given username.
func (s *EventStore) ByCreator(username string) []Event {
	matches := make([]Event, 0)
	for _, event := range s.events {
		if event.CreatedBy == username {
			matches = append(matches, event)
		}
	}
	return matches
}

func (s *EventStore) indexOf(id int) int {
	for i, event := range s.events {
		if event.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the collection through the adapter. Write failures are
// logged and absorbed: the in-memory collection stays authoritative for the
// rest of the session, at the cost of durability.
func (s *EventStore) persist(operation string) {
	logger := storeLogger(s.logger, "EventStore", operation)

	blob, err := encodeEvents(s.events)
	if err != nil {
		logger.Error("failed to encode events", "error", err)
		return
	}
	if err := s.adapter.Write(CollectionEvents, blob); err != nil {
		logger.Error("failed to persist events", "error", err, "count", len(s.events))
	}
}
