package store

import "time"

// Role identifies the privilege tier of an account.
type Role string

const (
	// RoleAdmin grants access to administrative queries.
	RoleAdmin Role = "admin"
	// RoleUser is the tier assigned to every new registration.
	RoleUser Role = "user"
)

// Event represents a persisted community event.
type Event struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Location    string     `json:"location"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// EventInput captures caller provided event fields. All five fields are
// required after trimming.
type EventInput struct {
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
}

// Account represents a persisted user account, password included. Account
// values never leave the store; callers receive PublicAccount projections.
type Account struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Password  string     `json:"password"`
	Email     string     `json:"email"`
	FullName  string     `json:"fullName"`
	Phone     string     `json:"phone"`
	Role      Role       `json:"role"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
	LastLogin *time.Time `json:"lastLogin"`
}

// PublicAccount is the password-free projection of an Account.
type PublicAccount struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  string     `json:"fullName"`
	Phone     string     `json:"phone"`
	Role      Role       `json:"role"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
	LastLogin *time.Time `json:"lastLogin"`
}

// Public strips the password from an account.
func (a Account) Public() PublicAccount {
	return PublicAccount{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		FullName:  a.FullName,
		Phone:     a.Phone,
		Role:      a.Role,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		LastLogin: a.LastLogin,
	}
}

// Session is the single current authenticated identity: the public fields
// of one account plus the instant it logged in.
type Session struct {
	PublicAccount
	LoginTime time.Time `json:"loginTime"`
}

// RegisterInput captures caller provided registration fields. Phone is
// optional.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	FullName string
	Phone    string
}

// ProfilePatch carries the account fields a profile update may change. Nil
// pointers leave the stored value untouched.
type ProfilePatch struct {
	FullName *string
	Email    *string
	Phone    *string
}

// AccountStats aggregates counts over the account collection.
type AccountStats struct {
	Total   int
	Active  int
	Admins  int
	Regular int
	NewWeek int
}
