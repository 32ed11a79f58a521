// Package testfixtures provides deterministic clocks, adapter doubles and
// record builders shared by tests across the repository.
package testfixtures

import (
	"time"

	"github.com/example/community-records/internal/store"
)

// EventOption mutates an event fixture before it is returned.
type EventOption func(*store.Event)

// SampleEvent builds a valid event record anchored at ReferenceTime.
func SampleEvent(id int, opts ...EventOption) store.Event {
	event := store.Event{
		ID:          id,
		Title:       "Neighborhood Cleanup",
		Description: "Monthly park and riverside cleanup",
		Date:        "2025-03-15",
		Time:        "10:00",
		Location:    "Riverside Park",
		CreatedBy:   "demo",
		CreatedAt:   ReferenceTime(),
	}
	for _, opt := range opts {
		opt(&event)
	}
	return event
}

// WithEventTitle overrides the fixture title.
func WithEventTitle(title string) EventOption {
	return func(e *store.Event) { e.Title = title }
}

// WithEventDate overrides the fixture date.
func WithEventDate(date string) EventOption {
	return func(e *store.Event) { e.Date = date }
}

// WithEventCreator overrides the fixture creator.
func WithEventCreator(username string) EventOption {
	return func(e *store.Event) { e.CreatedBy = username }
}

// SampleEventInput builds a valid event input.
func SampleEventInput() store.EventInput {
	return store.EventInput{
		Title:       "Neighborhood Cleanup",
		Description: "Monthly park and riverside cleanup",
		Date:        "2025-03-15",
		Time:        "10:00",
		Location:    "Riverside Park",
	}
}

// AccountOption mutates an account fixture before it is returned.
type AccountOption func(*store.Account)

// SampleAccount builds a valid active user account anchored at ReferenceTime.
func SampleAccount(id int, username string, opts ...AccountOption) store.Account {
	account := store.Account{
		ID:        id,
		Username:  username,
		Password:  "secret1",
		Email:     username + "@example.com",
		FullName:  "Fixture " + username,
		Role:      store.RoleUser,
		IsActive:  true,
		CreatedAt: ReferenceTime(),
	}
	for _, opt := range opts {
		opt(&account)
	}
	return account
}

// AsAdmin marks the account fixture as an administrator.
func AsAdmin() AccountOption {
	return func(a *store.Account) { a.Role = store.RoleAdmin }
}

// Inactive deactivates the account fixture.
func Inactive() AccountOption {
	return func(a *store.Account) { a.IsActive = false }
}

// WithPassword overrides the fixture password.
func WithPassword(password string) AccountOption {
	return func(a *store.Account) { a.Password = password }
}

// WithCreatedAt overrides the fixture creation time.
func WithCreatedAt(t time.Time) AccountOption {
	return func(a *store.Account) { a.CreatedAt = t }
}

// SampleRegisterInput builds a valid registration input for the username.
func SampleRegisterInput(username string) store.RegisterInput {
	return store.RegisterInput{
		Username: username,
		Password: "secret1",
		Email:    username + "@example.com",
		FullName: "Fixture " + username,
	}
}
