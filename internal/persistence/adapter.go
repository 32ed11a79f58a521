package persistence

import "errors"

var (
	// ErrNotFound is returned when the requested collection has never been written.
	ErrNotFound = errors.New("persistence: not found")
)

// Adapter is the durability capability consumed by the record stores. Each
// collection is a single named blob of serialized records; the stores own
// the serialization format and the adapter treats the payload as opaque.
//
// Implementations are synchronous and local. Read returns ErrNotFound for a
// collection that has never been written, which is distinct from a
// collection that was written with an empty payload.
type Adapter interface {
	Read(collection string) ([]byte, error)
	Write(collection string, blob []byte) error
	Delete(collection string) error
}
