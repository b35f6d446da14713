// Package env reads environment variables for JDK discovery.
package env

import "os"

// Lookup returns the variable from the process environment. On Windows a
// variable missing from the process falls back to the machine-wide value
// in the registry, which a shell opened before the change cannot see.
func Lookup(name string) (string, bool) {
	if v, ok := os.LookupEnv(name); ok {
		return v, true
	}
	return lookupSystem(name)
}

// Process only consults the current process environment.
func Process(name string) (string, bool) {
	return os.LookupEnv(name)
}
