package store

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
)

// The golden files pin the persisted blob format: any change to field names,
// ordering or null handling shows up as a golden diff, not as silent data
// loss on reload.
func TestCodec_EventsBlobFormat(t *testing.T) {
	updatedAt := time.Date(2025, time.March, 5, 14, 30, 0, 0, time.UTC)
	events := []Event{
		{
			ID:          1,
			Title:       "Spring Festival",
			Description: "Food stalls and live music",
			Date:        "2025-04-12",
			Time:        "12:00",
			Location:    "Main Square",
			CreatedBy:   "admin",
			CreatedAt:   testReference,
		},
		{
			ID:          2,
			Title:       "Book Club",
			Description: "Discussing the spring reading list",
			Date:        "2025-04-20",
			Time:        "18:30",
			Location:    "Library",
			CreatedBy:   "demo",
			CreatedAt:   testReference,
			UpdatedAt:   &updatedAt,
		},
	}

	blob, err := encodeEvents(events)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	g := goldie.New(t)
	g.Assert(t, "events", blob)
}

func TestCodec_SessionBlobFormat(t *testing.T) {
	lastLogin := testReference
	session := Session{
		PublicAccount: PublicAccount{
			ID:        1,
			Username:  "admin",
			Email:     "admin@example.com",
			FullName:  "System Administrator",
			Role:      RoleAdmin,
			IsActive:  true,
			CreatedAt: testReference,
			LastLogin: &lastLogin,
		},
		LoginTime: testReference,
	}

	blob, err := encodeSession(session)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	g := goldie.New(t)
	g.Assert(t, "session", blob)
}

func TestCodec_AccountsRoundTrip(t *testing.T) {
	t.Parallel()

	lastLogin := testReference.Add(time.Hour)
	accounts := []Account{
		{
			ID: 1, Username: "admin", Password: "admin123", Email: "admin@example.com",
			FullName: "System Administrator", Role: RoleAdmin, IsActive: true,
			CreatedAt: testReference, LastLogin: &lastLogin,
		},
		{
			ID: 2, Username: "casey", Password: "secret1", Email: "casey@example.com",
			FullName: "Casey C", Phone: "+1 (555) 010-2030", Role: RoleUser, IsActive: false,
			CreatedAt: testReference,
		},
	}

	blob, err := encodeAccounts(accounts)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	decoded, err := decodeAccounts(blob)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(decoded) != len(accounts) {
		t.Fatalf("decoded %d accounts, want %d", len(decoded), len(accounts))
	}
	for i := range accounts {
		want, got := accounts[i], decoded[i]
		if got.ID != want.ID || got.Username != want.Username || got.Password != want.Password ||
			got.Email != want.Email || got.FullName != want.FullName || got.Phone != want.Phone ||
			got.Role != want.Role || got.IsActive != want.IsActive || !got.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("account %d mismatch:\nwant %+v\ngot  %+v", i, want, got)
		}
	}
	if decoded[0].LastLogin == nil || !decoded[0].LastLogin.Equal(lastLogin) {
		t.Errorf("lastLogin lost in round trip: %v", decoded[0].LastLogin)
	}
	if decoded[1].LastLogin != nil {
		t.Errorf("expected nil lastLogin, got %v", decoded[1].LastLogin)
	}
}

func TestCodec_DecodeEmptyBlobs(t *testing.T) {
	t.Parallel()

	events, err := decodeEvents(nil)
	if err != nil || events != nil {
		t.Errorf("decodeEvents(nil): got %v, %v", events, err)
	}
	accounts, err := decodeAccounts([]byte("  \n"))
	if err != nil || accounts != nil {
		t.Errorf("decodeAccounts(whitespace): got %v, %v", accounts, err)
	}
	if _, err := decodeSession(nil); err == nil {
		t.Error("expected error decoding an empty session blob")
	}
}

func TestCodec_DecodeMalformedBlob(t *testing.T) {
	t.Parallel()

	if _, err := decodeEvents([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed events blob")
	}
	if _, err := decodeAccounts([]byte(`42`)); err == nil {
		t.Error("expected error for malformed accounts blob")
	}
}
