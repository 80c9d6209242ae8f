package mocks

import "context"

type KeyValidatorMock struct {
	ValidateFunc func(ctx context.Context, candidate string) (bool, error)
}

func (m *KeyValidatorMock) Validate(ctx context.Context, candidate string) (bool, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, candidate)
	}
	return true, nil
}
