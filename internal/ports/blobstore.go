// Package ports defines the driven-port interfaces between the timer engine
// and external infrastructure.
package ports

// BlobStore is an opaque key-value store for textual blobs. It is the only
// persistence boundary the engine knows about.
type BlobStore interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent; that is not an error.
	Get(key string) (value string, ok bool, err error)

	// Set writes the value under key, overwriting any previous value.
	Set(key, value string) error

	// Remove deletes the key. Removing an absent key is a no-op.
	Remove(key string) error

	// Close releases any underlying resources.
	Close() error
}
