//go:build !windows

package env

import "errors"

var errNoSystemEnv = errors.New("no machine-wide environment on this platform")

// SystemValue is only backed by the registry on Windows.
func SystemValue(name string) (string, error) {
	return "", errNoSystemEnv
}

func lookupSystem(string) (string, bool) {
	return "", false
}
