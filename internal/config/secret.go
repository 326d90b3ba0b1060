package config

import (
	"fmt"
	"os"

	"github.com/fernet/fernet-go"
)

// loadKeys reads the Fernet key from .heatwaved/.key, generating one on
// first use. Stored passwords become undecryptable if this file is lost.
func (m *Manager) loadKeys(create bool) ([]*fernet.Key, error) {
	if m.keys != nil {
		return m.keys, nil
	}

	data, err := os.ReadFile(m.keyPath)
	if os.IsNotExist(err) {
		if !create {
			return nil, fmt.Errorf("encryption key not found at %s", m.keyPath)
		}

		var key fernet.Key
		if err := key.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate encryption key: %w", err)
		}

		if err := os.WriteFile(m.keyPath, []byte(key.Encode()), 0600); err != nil {
			return nil, fmt.Errorf("failed to write encryption key: %w", err)
		}

		m.keys = []*fernet.Key{&key}
		return m.keys, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read encryption key: %w", err)
	}

	keys, err := fernet.DecodeKeys(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode encryption key: %w", err)
	}

	m.keys = keys
	return m.keys, nil
}

// Encrypt returns the Fernet token for value, creating the key file if it
// does not exist yet.
func (m *Manager) Encrypt(value string) (string, error) {
	keys, err := m.loadKeys(true)
	if err != nil {
		return "", err
	}

	token, err := fernet.EncryptAndSign([]byte(value), keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to encrypt value: %w", err)
	}

	return string(token), nil
}

// Decrypt reverses Encrypt. Tokens never expire; the config file must stay
// readable indefinitely.
func (m *Manager) Decrypt(token string) (string, error) {
	keys, err := m.loadKeys(false)
	if err != nil {
		return "", err
	}

	msg := fernet.VerifyAndDecrypt([]byte(token), 0, keys)
	if msg == nil {
		return "", fmt.Errorf("failed to decrypt value: token is invalid for the stored key")
	}

	return string(msg), nil
}
