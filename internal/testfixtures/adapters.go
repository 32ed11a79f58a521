package testfixtures

import (
	"errors"
	"sync"

	"github.com/example/community-records/internal/persistence"
)

// ErrWriteRefused is returned by FailingAdapter when writes are disabled.
var ErrWriteRefused = errors.New("testfixtures: write refused")

// FailingAdapter wraps another adapter and refuses writes on demand, for
// exercising the stores' persistence-failure absorption.
type FailingAdapter struct {
	mu    sync.Mutex
	inner persistence.Adapter
	fail  bool
}

// NewFailingAdapter wraps inner; writes succeed until FailWrites(true).
func NewFailingAdapter(inner persistence.Adapter) *FailingAdapter {
	if inner == nil {
		inner = persistence.NewMemory()
	}
	return &FailingAdapter{inner: inner}
}

// FailWrites toggles whether Write and Delete calls are refused.
func (f *FailingAdapter) FailWrites(fail bool) {
	f.mu.Lock()
	f.fail = fail
	f.mu.Unlock()
}

// Read delegates to the wrapped adapter.
func (f *FailingAdapter) Read(collection string) ([]byte, error) {
	return f.inner.Read(collection)
}

// Write delegates unless writes are refused.
func (f *FailingAdapter) Write(collection string, blob []byte) error {
	f.mu.Lock()
	fail := f.fail
	f.mu.Unlock()
	if fail {
		return ErrWriteRefused
	}
	return f.inner.Write(collection, blob)
}

// Delete delegates unless writes are refused.
func (f *FailingAdapter) Delete(collection string) error {
	f.mu.Lock()
	fail := f.fail
	f.mu.Unlock()
	if fail {
		return ErrWriteRefused
	}
	return f.inner.Delete(collection)
}

// RecordingAdapter wraps another adapter and counts writes per collection.
type RecordingAdapter struct {
	mu     sync.Mutex
	inner  persistence.Adapter
	writes map[string]int
}

// NewRecordingAdapter wraps inner, defaulting to a fresh in-memory adapter.
func NewRecordingAdapter(inner persistence.Adapter) *RecordingAdapter {
	if inner == nil {
		inner = persistence.NewMemory()
	}
	return &RecordingAdapter{inner: inner, writes: make(map[string]int)}
}

// Writes reports how many times the collection has been written.
func (r *RecordingAdapter) Writes(collection string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes[collection]
}

// Read delegates to the wrapped adapter.
func (r *RecordingAdapter) Read(collection string) ([]byte, error) {
	return r.inner.Read(collection)
}

// Write counts the write and delegates.
func (r *RecordingAdapter) Write(collection string, blob []byte) error {
	r.mu.Lock()
	r.writes[collection]++
	r.mu.Unlock()
	return r.inner.Write(collection, blob)
}

// Delete delegates to the wrapped adapter.
func (r *RecordingAdapter) Delete(collection string) error {
	return r.inner.Delete(collection)
}
