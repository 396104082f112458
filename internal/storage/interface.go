package storage

// KV is the persistence contract the core depends on: a blocking key-value
// store holding opaque JSON-serialized values. It has no transactions and
// no query language; all filtering happens above it after a full read.
//
// Concurrency note:
//   - A KV is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple cadence processes against the same store path at the
//     same time is not supported and may lead to data loss or corruption.
type KV interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the raw value for key. The second return is false when
	// the key is absent.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error

	// Path returns the location of the underlying store file.
	Path() string
}
