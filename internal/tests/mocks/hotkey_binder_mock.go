package mocks

type HotkeyBinderMock struct {
	RebindFunc func(accel string) error
}

func (m *HotkeyBinderMock) Rebind(accel string) error {
	if m.RebindFunc != nil {
		return m.RebindFunc(accel)
	}
	return nil
}
