package port

//go:generate mockgen -source=cache_port.go -destination=../mocks/mock_cache_port.go

// FallbackCache is the capability interface for the persistent
// key-value fallback storage holding the last resolved identity. It is
// consulted only when no primary session resolves, and a no-op
// implementation stands in where durable storage is unavailable, so the
// resolver never branches on environment.
type FallbackCache interface {
	// Load returns the cached payload and whether an entry exists.
	Load() ([]byte, bool, error)
	// Store replaces the cached payload.
	Store(payload []byte) error
	// Clear removes the entry. Clearing an absent entry is not an error.
	Clear() error
}
