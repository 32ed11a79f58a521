package persistence

import "sync"

// Memory is an in-process Adapter backed by a map. It is used for tests and
// for ephemeral runs where durability across restarts is not wanted.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory returns an empty in-memory adapter.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// Read returns a copy of the stored blob, or ErrNotFound when the collection
// has never been written.
func (m *Memory) Read(collection string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.blobs[collection]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

// Write stores a copy of the blob under the collection name.
func (m *Memory) Write(collection string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(blob))
	copy(stored, blob)
	m.blobs[collection] = stored
	return nil
}

// Delete removes the collection. Deleting an absent collection is a no-op.
func (m *Memory) Delete(collection string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, collection)
	return nil
}
