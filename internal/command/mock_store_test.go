package command_test

import "errors"

// mockStore implements command.Store with a flat key space for testing.
type mockStore struct {
	values    map[string]string
	saveCalls int
	SaveFn    func() error
}

func newMockStore(values map[string]string) *mockStore {
	if values == nil {
		values = make(map[string]string)
	}
	return &mockStore{values: values}
}

func (m *mockStore) Value(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

func (m *mockStore) Values() map[string]string {
	return m.values
}

func (m *mockStore) Set(key, value string) {
	m.values[key] = value
}

func (m *mockStore) Remove(key string) {
	delete(m.values, key)
}

func (m *mockStore) Save() error {
	m.saveCalls++
	if m.SaveFn != nil {
		return m.SaveFn()
	}
	return nil
}

var errDiskFull = errors.New("disk full")
