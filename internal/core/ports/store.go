package ports

// Store is a durable key-value store scoped to the application's private state.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Store interface {
	// Get returns the value stored under key.
	// Returns nil, nil if the key is absent. An empty, non-nil value is a stored value.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Clear removes key. Clearing an absent key is not an error.
	Clear(key string) error
}
