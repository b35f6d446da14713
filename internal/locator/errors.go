package locator

import (
	"errors"
	"fmt"

	"jvx/internal/java"
)

// ErrKitNotFound matches every KitNotFoundError via errors.Is.
var ErrKitNotFound = errors.New("compatible JDK not found")

// KitNotFoundError reports that no validated JDK exists for Version.
type KitNotFoundError struct {
	Version java.Version
	// EnvVar is the variable the user can set to fix the lookup.
	EnvVar string
	// Candidate is the home that failed validation, empty if no provider
	// produced one.
	Candidate string
}

func (e *KitNotFoundError) Error() string {
	return fmt.Sprintf("could not locate a compatible JDK for target compatibility %s. "+
		"Change the source/target compatibility, set a %s environment variable with the location, "+
		"or install to one of the default search locations", e.Version, e.EnvVar)
}

func (e *KitNotFoundError) Is(target error) bool {
	return target == ErrKitNotFound
}

func cannotLocate(v java.Version, candidate string) *KitNotFoundError {
	return &KitNotFoundError{Version: v, EnvVar: EnvVarName(v), Candidate: candidate}
}
