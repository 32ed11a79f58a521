package store

import (
	"regexp"
	"strings"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)
	phonePattern    = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{6,19}$`)
)

func normalizeEventInput(input EventInput) EventInput {
	return EventInput{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Date:        strings.TrimSpace(input.Date),
		Time:        strings.TrimSpace(input.Time),
		Location:    strings.TrimSpace(input.Location),
	}
}

func validateEventInput(input EventInput) *ValidationError {
	vErr := &ValidationError{}

	if input.Title == "" {
		vErr.add("title", "title is required")
	}
	if input.Description == "" {
		vErr.add("description", "description is required")
	}
	if input.Date == "" {
		vErr.add("date", "date is required")
	}
	if input.Time == "" {
		vErr.add("time", "time is required")
	}
	if input.Location == "" {
		vErr.add("location", "location is required")
	}

	return vErr
}

func normalizeRegisterInput(input RegisterInput) RegisterInput {
	return RegisterInput{
		Username: strings.TrimSpace(input.Username),
		Password: input.Password,
		Email:    strings.TrimSpace(input.Email),
		FullName: strings.TrimSpace(input.FullName),
		Phone:    strings.TrimSpace(input.Phone),
	}
}

func validateRegisterInput(input RegisterInput) *ValidationError {
	vErr := &ValidationError{}

	switch {
	case input.Username == "":
		vErr.add("username", "username is required")
	case len(input.Username) < 3:
		vErr.add("username", "username must be at least 3 characters")
	case !usernamePattern.MatchString(input.Username):
		vErr.add("username", "username may only contain letters, digits and underscores")
	}

	switch {
	case input.Password == "":
		vErr.add("password", "password is required")
	case len(input.Password) < 6:
		vErr.add("password", "password must be at least 6 characters")
	}

	switch {
	case input.Email == "":
		vErr.add("email", "email is required")
	case !emailPattern.MatchString(input.Email):
		vErr.add("email", "email is invalid")
	}

	if input.FullName == "" {
		vErr.add("fullName", "full name is required")
	}

	if input.Phone != "" && !phonePattern.MatchString(input.Phone) {
		vErr.add("phone", "phone number is invalid")
	}

	return vErr
}
