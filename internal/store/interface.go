package store

// KV is a durable key-value slot. Get returns ErrRecordNotFound when key has
// never been written.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}
