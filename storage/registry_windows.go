//go:build windows

package storage

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// RegistryPath is the per-user key holding the application settings
const RegistryPath = `SOFTWARE\DevDuFutur\ChuckNorust`

// RegistryBackend stores values as DWORDs under HKEY_CURRENT_USER
type RegistryBackend struct {
	path string
}

// NewRegistryBackend creates a backend rooted at RegistryPath
func NewRegistryBackend() *RegistryBackend {
	return &RegistryBackend{path: RegistryPath}
}

func (b *RegistryBackend) GetUint32(key string) (uint32, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, b.path, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to open registry key: %w", err)
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(key)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if v > 0xFFFFFFFF {
		return 0, fmt.Errorf("value %d for %s out of range", v, key)
	}
	return uint32(v), nil
}

func (b *RegistryBackend) SetUint32(key string, value uint32) error {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, b.path, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to create registry key: %w", err)
	}
	defer k.Close()

	if err := k.SetDWordValue(key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
