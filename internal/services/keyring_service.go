package services

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const (
	keyringServiceName = "voice-dictator"
	keyringUser        = "openai-api-key"
)

// KeyringStore is the OS-keychain backend holding the one API key the app
// needs. The secret never leaves this package except toward the keychain.
type KeyringStore interface {
	Has() (bool, error)
	Store(apiKey string) error
	Delete() error
}

type KeyringService struct{}

func NewKeyringService() *KeyringService {
	return &KeyringService{}
}

func (s *KeyringService) Has() (bool, error) {
	_, err := keyring.Get(keyringServiceName, keyringUser)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (s *KeyringService) Store(apiKey string) error {
	if apiKey == "" {
		return errors.New("API key is empty")
	}
	return keyring.Set(keyringServiceName, keyringUser, apiKey)
}

func (s *KeyringService) Delete() error {
	err := keyring.Delete(keyringServiceName, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
