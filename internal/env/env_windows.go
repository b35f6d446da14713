//go:build windows

package env

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

var systemEnvRegPath = `System\CurrentControlSet\Control\Session Manager\Environment`

const userEnvRegPath = `Environment`

// SystemValue returns a variable from the machine-wide environment,
// falling back to the current user's registry environment.
func SystemValue(name string) (string, error) {
	if v, err := readValue(registry.LOCAL_MACHINE, systemEnvRegPath, name); err == nil {
		return v, nil
	}

	v, err := readValue(registry.CURRENT_USER, userEnvRegPath, name)
	if err != nil {
		return "", fmt.Errorf("%s not set: %w", name, err)
	}
	return v, nil
}

func readValue(root registry.Key, path, name string) (string, error) {
	key, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("failed to open registry key: %w", err)
	}
	defer key.Close()

	value, _, err := key.GetStringValue(name)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", errors.New("empty value")
	}

	expanded, err := registry.ExpandString(value)
	if err != nil {
		return value, nil
	}
	return expanded, nil
}

func lookupSystem(name string) (string, bool) {
	v, err := SystemValue(name)
	if err != nil {
		return "", false
	}
	return v, true
}
