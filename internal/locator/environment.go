package locator

import (
	"fmt"
	"log/slog"
	"strings"

	"jvx/internal/java"
)

// EnvironmentProvider reads the JDK home from a per-version environment
// variable such as JDK_1_8 or JDK_11.
type EnvironmentProvider struct {
	lookup LookupFunc
	logger *slog.Logger
}

// NewEnvironmentProvider creates a provider backed by lookup. A nil logger
// means slog.Default().
func NewEnvironmentProvider(lookup LookupFunc, logger *slog.Logger) *EnvironmentProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnvironmentProvider{lookup: lookup, logger: logger}
}

func (p *EnvironmentProvider) Name() string {
	return "environment"
}

func (p *EnvironmentProvider) Resolve(v java.Version) (string, bool) {
	for _, name := range EnvVarNames(v) {
		value, ok := p.lookup(name)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			p.logger.Debug("environment variable is empty", "var", name)
			continue
		}
		p.logger.Debug("found JDK home in environment", "var", name, "home", value)
		return value, true
	}
	return "", false
}

// EnvVarName is the primary variable consulted for v.
func EnvVarName(v java.Version) string {
	return EnvVarNames(v)[0]
}

// EnvVarNames lists the variables consulted for v in order. Legacy
// versions use JDK_1_N; the compact JDK_1N spelling is not accepted since
// JDK_11 through JDK_18 name modern versions.
func EnvVarNames(v java.Version) []string {
	if v.IsLegacy() {
		return []string{fmt.Sprintf("JDK_1_%d", v.Major())}
	}
	return []string{fmt.Sprintf("JDK_%d", v.Major())}
}

// VersionFromEnvVar is the inverse of EnvVarName.
func VersionFromEnvVar(name string) (java.Version, bool) {
	rest, ok := strings.CutPrefix(name, "JDK_")
	if !ok || rest == "" {
		return java.Version{}, false
	}
	legacy := strings.HasPrefix(rest, "1_")
	rest = strings.Replace(rest, "_", ".", 1)
	if strings.ContainsFunc(rest, func(r rune) bool { return (r < '0' || r > '9') && r != '.' }) {
		return java.Version{}, false
	}
	v, err := java.ParseVersion(rest)
	if err != nil || v.IsLegacy() != legacy || EnvVarName(v) != name {
		return java.Version{}, false
	}
	return v, true
}
