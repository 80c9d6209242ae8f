package mocks

type KeyringStoreMock struct {
	HasFunc    func() (bool, error)
	StoreFunc  func(apiKey string) error
	DeleteFunc func() error
}

func (m *KeyringStoreMock) Has() (bool, error) {
	if m.HasFunc != nil {
		return m.HasFunc()
	}
	return false, nil
}

func (m *KeyringStoreMock) Store(apiKey string) error {
	if m.StoreFunc != nil {
		return m.StoreFunc(apiKey)
	}
	return nil
}

func (m *KeyringStoreMock) Delete() error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc()
	}
	return nil
}
