package locator

import (
	"log/slog"

	"jvx/internal/java"

	"github.com/spf13/afero"
)

// Provider maps a target version to a candidate JDK home. A provider with
// no answer returns false; absence is never an error.
type Provider interface {
	// Name identifies the strategy in diagnostics.
	Name() string
	// Resolve returns the candidate home for v, if any.
	Resolve(v java.Version) (string, bool)
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// DefaultProviders returns the standard chain in priority order: the
// environment variables first, then the default installation locations.
// Pass the same logger to WithLogger to keep a resolution's diagnostics
// in one place.
func DefaultProviders(fs afero.Fs, lookup LookupFunc, logger *slog.Logger, searchPaths ...string) []Provider {
	return []Provider{
		NewEnvironmentProvider(lookup, logger),
		NewDefaultLocationProvider(java.NewDetector(fs, searchPaths...), logger),
	}
}
