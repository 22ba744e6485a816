package folio

import "sync"

var (
	registry   = make(map[string]*Serializer)
	registryMu sync.RWMutex
)

// Use returns a cached serializer or builds a new one.
// The serializer is cached by codec content type. Only serializers are
// cached; decoded documents never are.
func Use(codec Codec) (*Serializer, error) {
	key := codec.ContentType()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached, nil
	}

	s, err := NewSerializer(codec)
	if err != nil {
		return nil, err
	}

	registry[key] = s
	return s, nil
}

// Reset clears the serializer registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]*Serializer)
}
