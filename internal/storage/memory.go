package storage

// Memory is a map-backed Backend for tests and throwaway runs. Nothing
// survives process exit.
type Memory struct {
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.data[key] = value
	return nil
}
