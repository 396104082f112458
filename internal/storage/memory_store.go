package storage

// MemoryKV is a map-backed store used by tests and throwaway sessions.
type MemoryKV struct {
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		data: make(map[string][]byte),
	}
}

func (s *MemoryKV) Init() error {
	return nil
}

func (s *MemoryKV) Load() error {
	return nil
}

func (s *MemoryKV) Close() error {
	return nil
}

func (s *MemoryKV) Get(key string) ([]byte, bool, error) {
	raw, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return raw, true, nil
}

func (s *MemoryKV) Set(key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return nil
}

func (s *MemoryKV) Delete(key string) error {
	delete(s.data, key)
	return nil
}

func (s *MemoryKV) Path() string {
	return ":memory:"
}
