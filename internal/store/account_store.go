package store

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/community-records/internal/persistence"
)

// Seed credentials created on the very first use, before any account
// collection exists.
var seedAccounts = []Account{
	{
		ID:       1,
		Username: "admin",
		Password: "admin123",
		Email:    "admin@example.com",
		FullName: "System Administrator",
		Role:     RoleAdmin,
		IsActive: true,
	},
	{
		ID:       2,
		Username: "demo",
		Password: "demo123",
		Email:    "demo@example.com",
		FullName: "Demo User",
		Role:     RoleUser,
		IsActive: true,
	},
}

// AccountStore owns the account collection and the single current-session
// pointer. Like EventStore it loads once at construction and writes through
// the adapter after every mutation.
type AccountStore struct {
	adapter persistence.Adapter
	logger  *slog.Logger
	now     func() time.Time

	accounts []Account
	session  *Session
	nextID   int
}

// NewAccountStore constructs an AccountStore, seeding the collection on
// first ever use and rehydrating any persisted session.
func NewAccountStore(adapter persistence.Adapter, now func() time.Time) (*AccountStore, error) {
	return NewAccountStoreWithLogger(adapter, now, nil)
}

// NewAccountStoreWithLogger constructs an AccountStore with a specified logger.
func NewAccountStoreWithLogger(adapter persistence.Adapter, now func() time.Time, logger *slog.Logger) (*AccountStore, error) {
	if adapter == nil {
		return nil, fmt.Errorf("account store requires a persistence adapter")
	}
	if now == nil {
		now = time.Now
	}

	s := &AccountStore{
		adapter: adapter,
		logger:  defaultLogger(logger),
		now:     now,
	}

	blob, err := adapter.Read(CollectionUsers)
	switch {
	case errors.Is(err, persistence.ErrNotFound):
		// No collection has ever been written, not even an empty one.
		// This is the only condition under which the seed runs.
		s.seed()
	case err != nil:
		return nil, fmt.Errorf("load accounts: %w", err)
	default:
		accounts, decodeErr := decodeAccounts(blob)
		if decodeErr != nil {
			return nil, fmt.Errorf("load accounts: %w", decodeErr)
		}
		s.accounts = accounts
	}

	s.nextID = 1
	for _, account := range s.accounts {
		if account.ID >= s.nextID {
			s.nextID = account.ID + 1
		}
	}

	s.rehydrateSession()

	return s, nil
}

func (s *AccountStore) seed() {
	createdAt := s.now()
	for _, account := range seedAccounts {
		account.CreatedAt = createdAt
		s.accounts = append(s.accounts, account)
	}
	s.persistAccounts("seed")
}

// rehydrateSession restores the persisted session pointer, dropping it when
// the referenced account no longer exists or has been deactivated.
func (s *AccountStore) rehydrateSession() {
	logger := storeLogger(s.logger, "AccountStore", "rehydrateSession")

	blob, err := s.adapter.Read(CollectionSession)
	if errors.Is(err, persistence.ErrNotFound) {
		return
	}
	if err != nil {
		logger.Error("failed to read persisted session", "error", err)
		return
	}

	persisted, err := decodeSession(blob)
	if err != nil {
		logger.Error("failed to decode persisted session, discarding", "error", err)
		s.clearPersistedSession(logger)
		return
	}

	idx := s.indexOf(persisted.ID)
	if idx < 0 || !s.accounts[idx].IsActive {
		logger.Info("discarding stale session", "username", persisted.Username)
		s.clearPersistedSession(logger)
		return
	}

	// Rebuild the projection from the live account so profile changes made
	// outside the session's lifetime are reflected.
	session := Session{PublicAccount: s.accounts[idx].Public(), LoginTime: persisted.LoginTime}
	s.session = &session
}

// Authenticate verifies the credentials and, on success, stamps the last
// login, installs the session pointer and persists both. The failure shape
// is identical whether the username is unknown, the password wrong or the
// account inactive.
func (s *AccountStore) Authenticate(username, password string) (Session, error) {
	logger := storeLogger(s.logger, "AccountStore", "Authenticate")

	trimmed := strings.TrimSpace(username)
	vErr := &ValidationError{}
	if trimmed == "" {
		vErr.add("username", "username is required")
	}
	if password == "" {
		vErr.add("password", "password is required")
	}
	if vErr.HasErrors() {
		return Session{}, vErr
	}

	idx := -1
	for i, account := range s.accounts {
		if strings.EqualFold(account.Username, trimmed) && account.Password == password && account.IsActive {
			idx = i
			break
		}
	}
	if idx < 0 {
		logger.Info("authentication failed", "username", trimmed, "error_kind", ErrorKind(ErrInvalidCredentials))
		return Session{}, ErrInvalidCredentials
	}

	loginTime := s.now()
	s.accounts[idx].LastLogin = &loginTime
	s.persistAccounts("Authenticate")

	session := Session{PublicAccount: s.accounts[idx].Public(), LoginTime: loginTime}
	s.session = &session
	s.persistSession("Authenticate")

	logger.Info("authentication succeeded", "username", session.Username, "role", session.Role)
	return session, nil
}

// Register validates the input, enforces username and email uniqueness and
// persists a new account. The result omits the password, the role is always
// RoleUser and the account starts active.
func (s *AccountStore) Register(input RegisterInput) (PublicAccount, error) {
	normalized := normalizeRegisterInput(input)
	if vErr := validateRegisterInput(normalized); vErr.HasErrors() {
		return PublicAccount{}, vErr
	}

	vErr := &ValidationError{}
	for _, account := range s.accounts {
		if strings.EqualFold(account.Username, normalized.Username) {
			vErr.add("username", "username is already taken")
			break
		}
	}
	for _, account := range s.accounts {
		if strings.EqualFold(account.Email, normalized.Email) {
			vErr.add("email", "email is already registered")
			break
		}
	}
	if vErr.HasErrors() {
		return PublicAccount{}, vErr
	}

	account := Account{
		ID:        s.nextID,
		Username:  normalized.Username,
		Password:  normalized.Password,
		Email:     normalized.Email,
		FullName:  normalized.FullName,
		Phone:     normalized.Phone,
		Role:      RoleUser,
		IsActive:  true,
		CreatedAt: s.now(),
		LastLogin: nil,
	}
	s.nextID++
	s.accounts = append(s.accounts, account)
	s.persistAccounts("Register")

	storeLogger(s.logger, "AccountStore", "Register").Info("account registered", "username", account.Username, "id", account.ID)
	return account.Public(), nil
}

// Logout clears the session pointer and its persisted copy. Calling it when
// already logged out is a no-op.
func (s *AccountStore) Logout() {
	if s.session == nil {
		return
	}
	s.session = nil
	s.clearPersistedSession(storeLogger(s.logger, "AccountStore", "Logout"))
}

// IsAuthenticated reports whether a session is present.
func (s *AccountStore) IsAuthenticated() bool {
	return s.session != nil
}

// IsAdmin reports whether the current session carries the admin role.
func (s *AccountStore) IsAdmin() bool {
	return s.session != nil && s.session.Role == RoleAdmin
}

// HasRole reports whether the current session carries the given role.
func (s *AccountStore) HasRole(role Role) bool {
	return s.session != nil && s.session.Role == role
}

// ValidateSession reports whether a current session exists. There is no
// expiry or token check.
func (s *AccountStore) ValidateSession() bool {
	return s.session != nil
}

// CurrentSession returns a copy of the current session, if any.
func (s *AccountStore) CurrentSession() (Session, bool) {
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

// AllUsers returns every account with the password stripped. Admin only.
func (s *AccountStore) AllUsers() ([]PublicAccount, error) {
	if !s.IsAdmin() {
		return nil, ErrUnauthorized
	}

	out := make([]PublicAccount, len(s.accounts))
	for i, account := range s.accounts {
		out[i] = account.Public()
	}
	return out, nil
}

// UserByUsername returns the account with the given username, password
// stripped. Admin only.
func (s *AccountStore) UserByUsername(username string) (PublicAccount, error) {
	if !s.IsAdmin() {
		return PublicAccount{}, ErrUnauthorized
	}

	for _, account := range s.accounts {
		if strings.EqualFold(account.Username, strings.TrimSpace(username)) {
			return account.Public(), nil
		}
	}
	return PublicAccount{}, ErrNotFound
}

// Profile returns the account with the given id, password stripped. The
// caller must be an admin or the session identity itself.
func (s *AccountStore) Profile(id int) (PublicAccount, error) {
	if s.session == nil {
		return PublicAccount{}, ErrUnauthorized
	}
	if !s.IsAdmin() && s.session.ID != id {
		return PublicAccount{}, ErrUnauthorized
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return PublicAccount{}, ErrNotFound
	}
	return s.accounts[idx].Public(), nil
}

// UpdateProfile applies a patch restricted to full name, email and phone,
// revalidating any field the patch carries. When the patched account is the
// session identity the session projection is refreshed in place.
func (s *AccountStore) UpdateProfile(id int, patch ProfilePatch) (PublicAccount, error) {
	if s.session == nil {
		return PublicAccount{}, ErrUnauthorized
	}
	if !s.IsAdmin() && s.session.ID != id {
		return PublicAccount{}, ErrUnauthorized
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return PublicAccount{}, ErrNotFound
	}

	vErr := &ValidationError{}

	var fullName, email, phone string
	if patch.FullName != nil {
		fullName = strings.TrimSpace(*patch.FullName)
		if fullName == "" {
			vErr.add("fullName", "full name is required")
		}
	}
	if patch.Email != nil {
		email = strings.TrimSpace(*patch.Email)
		if !emailPattern.MatchString(email) {
			vErr.add("email", "email is invalid")
		} else {
			for i, account := range s.accounts {
				if i != idx && strings.EqualFold(account.Email, email) {
					vErr.add("email", "email is already registered")
					break
				}
			}
		}
	}
	if patch.Phone != nil {
		phone = strings.TrimSpace(*patch.Phone)
		if phone != "" && !phonePattern.MatchString(phone) {
			vErr.add("phone", "phone number is invalid")
		}
	}
	if vErr.HasErrors() {
		return PublicAccount{}, vErr
	}

	updated := s.accounts[idx]
	if patch.FullName != nil {
		updated.FullName = fullName
	}
	if patch.Email != nil {
		updated.Email = email
	}
	if patch.Phone != nil {
		updated.Phone = phone
	}
	updatedAt := s.now()
	updated.UpdatedAt = &updatedAt

	s.accounts[idx] = updated
	s.persistAccounts("UpdateProfile")

	if s.session != nil && s.session.ID == id {
		session := Session{PublicAccount: updated.Public(), LoginTime: s.session.LoginTime}
		s.session = &session
		s.persistSession("UpdateProfile")
	}

	return updated.Public(), nil
}

// ChangePassword replaces the session identity's password after verifying
// the current one. The new password is persisted with the collection.
func (s *AccountStore) ChangePassword(current, next string) error {
	if s.session == nil {
		return ErrUnauthorized
	}

	idx := s.indexOf(s.session.ID)
	if idx < 0 {
		return ErrUnauthorized
	}

	if s.accounts[idx].Password != current {
		return ErrInvalidCredentials
	}
	if len(next) < 6 {
		vErr := &ValidationError{}
		vErr.add("password", "password must be at least 6 characters")
		return vErr
	}

	s.accounts[idx].Password = next
	s.persistAccounts("ChangePassword")
	return nil
}

// Stats aggregates counts over the collection, including accounts created
// within the trailing seven days.
func (s *AccountStore) Stats() AccountStats {
	weekAgo := s.now().AddDate(0, 0, -7)

	stats := AccountStats{Total: len(s.accounts)}
	for _, account := range s.accounts {
		if account.IsActive {
			stats.Active++
		}
		if account.Role == RoleAdmin {
			stats.Admins++
		} else {
			stats.Regular++
		}
		if account.CreatedAt.After(weekAgo) {
			stats.NewWeek++
		}
	}
	return stats
}

func (s *AccountStore) indexOf(id int) int {
	for i, account := range s.accounts {
		if account.ID == id {
			return i
		}
	}
	return -1
}

func (s *AccountStore) persistAccounts(operation string) {
	logger := storeLogger(s.logger, "AccountStore", operation)

	blob, err := encodeAccounts(s.accounts)
	if err != nil {
		logger.Error("failed to encode accounts", "error", err)
		return
	}
	if err := s.adapter.Write(CollectionUsers, blob); err != nil {
		logger.Error("failed to persist accounts", "error", err, "count", len(s.accounts))
	}
}

func (s *AccountStore) persistSession(operation string) {
	logger := storeLogger(s.logger, "AccountStore", operation)

	if s.session == nil {
		s.clearPersistedSession(logger)
		return
	}

	blob, err := encodeSession(*s.session)
	if err != nil {
		logger.Error("failed to encode session", "error", err)
		return
	}
	if err := s.adapter.Write(CollectionSession, blob); err != nil {
		logger.Error("failed to persist session", "error", err)
	}
}

func (s *AccountStore) clearPersistedSession(logger *slog.Logger) {
	if err := s.adapter.Delete(CollectionSession); err != nil {
		logger.Error("failed to clear persisted session", "error", err)
	}
}
