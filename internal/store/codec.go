package store

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Collection names understood by the persistence adapter. The events and
// users blobs hold JSON arrays of flat records; the session blob holds a
// single JSON object.
const (
	CollectionEvents  = "events"
	CollectionUsers   = "users"
	CollectionSession = "session"
)

func encodeEvents(events []Event) ([]byte, error) {
	if events == nil {
		events = []Event{}
	}
	blob, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode events: %w", err)
	}
	return blob, nil
}

func decodeEvents(blob []byte) ([]Event, error) {
	if len(bytes.TrimSpace(blob)) == 0 {
		return nil, nil
	}
	var events []Event
	if err := json.Unmarshal(blob, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

func encodeAccounts(accounts []Account) ([]byte, error) {
	if accounts == nil {
		accounts = []Account{}
	}
	blob, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode accounts: %w", err)
	}
	return blob, nil
}

func decodeAccounts(blob []byte) ([]Account, error) {
	if len(bytes.TrimSpace(blob)) == 0 {
		return nil, nil
	}
	var accounts []Account
	if err := json.Unmarshal(blob, &accounts); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	return accounts, nil
}

func encodeSession(session Session) ([]byte, error) {
	blob, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return blob, nil
}

func decodeSession(blob []byte) (Session, error) {
	var session Session
	if len(bytes.TrimSpace(blob)) == 0 {
		return Session{}, fmt.Errorf("decode session: empty blob")
	}
	if err := json.Unmarshal(blob, &session); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	return session, nil
}
