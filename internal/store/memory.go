package store

// MemStore is an in-memory Store for tests and for hosts with no durable
// storage. Error fields let tests simulate unavailable or failing backends.
type MemStore struct {
	data    []byte
	present bool

	// LoadErr, if set, is returned by Load (paired with the default state).
	LoadErr error
	// SaveErr, if set, is returned by Save; the write is dropped.
	SaveErr error
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Seed places raw bytes in the store, as if a previous session had written
// them. The bytes are decoded on Load, so tests can seed malformed content.
func (m *MemStore) Seed(data []byte) {
	m.data = append([]byte(nil), data...)
	m.present = true
}

// Load returns the stored state, or the default state if nothing was stored.
func (m *MemStore) Load() (State, error) {
	if m.LoadErr != nil {
		return Default(), m.LoadErr
	}
	if !m.present {
		return Default(), nil
	}
	return decode(m.data)
}

// Save serializes and retains the state.
func (m *MemStore) Save(s State) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	data, err := encode(s)
	if err != nil {
		return err
	}
	m.data = data
	m.present = true
	return nil
}

// Wipe clears the stored record.
func (m *MemStore) Wipe() error {
	m.data = nil
	m.present = false
	return nil
}
