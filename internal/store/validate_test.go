package store

import "testing"

func TestUsernamePattern(t *testing.T) {
	t.Parallel()

	valid := []string{"abc", "alice123", "under_score", "A1_", "123"}
	invalid := []string{"has space", "dash-ed", "dot.ted", "éclair", "semi;colon", ""}

	for _, username := range valid {
		if !usernamePattern.MatchString(username) {
			t.Errorf("expected %q to match", username)
		}
	}
	for _, username := range invalid {
		if usernamePattern.MatchString(username) {
			t.Errorf("expected %q not to match", username)
		}
	}
}

func TestEmailPattern(t *testing.T) {
	t.Parallel()

	valid := []string{"a@x.com", "first.last@sub.domain.org", "user+tag@example.co"}
	invalid := []string{"plain", "@x.com", "a@", "a@x", "a b@x.com", "a@x .com", "a@x.c0m"}

	for _, email := range valid {
		if !emailPattern.MatchString(email) {
			t.Errorf("expected %q to match", email)
		}
	}
	for _, email := range invalid {
		if emailPattern.MatchString(email) {
			t.Errorf("expected %q not to match", email)
		}
	}
}

func TestPhonePattern(t *testing.T) {
	t.Parallel()

	valid := []string{"+1 (555) 010-2030", "0123456789", "+442079460958", "555-010-2030"}
	invalid := []string{"letters", "+", "12345", "(555) extension 12", "++15550102030"}

	for _, phone := range valid {
		if !phonePattern.MatchString(phone) {
			t.Errorf("expected %q to match", phone)
		}
	}
	for _, phone := range invalid {
		if phonePattern.MatchString(phone) {
			t.Errorf("expected %q not to match", phone)
		}
	}
}

func TestValidateEventInput_AllFieldsRequired(t *testing.T) {
	t.Parallel()

	vErr := validateEventInput(EventInput{})
	if !vErr.HasErrors() {
		t.Fatal("expected errors for empty input")
	}
	for _, field := range []string{"title", "description", "date", "time", "location"} {
		if _, ok := vErr.FieldErrors[field]; !ok {
			t.Errorf("expected field error for %q", field)
		}
	}

	if validateEventInput(normalizeEventInput(EventInput{
		Title:       " T ",
		Description: " D ",
		Date:        " 2025-01-01 ",
		Time:        " 10:00 ",
		Location:    " L ",
	})).HasErrors() {
		t.Error("expected trimmed input to validate")
	}
}
