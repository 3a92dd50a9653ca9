package localstore

// Noop is a fallback cache that stores nothing. It satisfies
// port.FallbackCache for environments with no durable local storage so
// callers never branch on the environment themselves.
type Noop struct{}

// NewNoop creates a no-op fallback cache
func NewNoop() *Noop {
	return &Noop{}
}

// Load always reports an absent entry
func (Noop) Load() ([]byte, bool, error) {
	return nil, false, nil
}

// Store discards the payload
func (Noop) Store([]byte) error {
	return nil
}

// Clear does nothing
func (Noop) Clear() error {
	return nil
}
