// Package locator finds an installed JDK matching a target compatibility
// version so that compile tasks can build against its runtime classes
// instead of the running JDK's.
package locator

import (
	"log/slog"
	"path/filepath"

	"jvx/internal/java"

	"github.com/spf13/afero"
)

// Runtime class archives probed under a JDK home, in order.
const (
	RTJarPath      = "jre/lib/rt.jar"
	ClassesJarPath = "../Classes/classes.jar"
)

// Location is a validated JDK: its home and the absolute path of the
// runtime archive found there.
type Location struct {
	JDKHome       string
	BootClasspath string
}

// Locator walks a provider chain and validates the winning candidate.
type Locator struct {
	fs        afero.Fs
	providers []Provider
	artifacts []string
	logger    *slog.Logger
}

// Option configures a Locator.
type Option func(*Locator)

// WithLogger sets the logger for probe diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Locator) {
		l.logger = logger
	}
}

// WithRuntimeArtifacts replaces the relative archive paths probed under a
// candidate home.
func WithRuntimeArtifacts(paths ...string) Option {
	return func(l *Locator) {
		l.artifacts = append([]string(nil), paths...)
	}
}

// New creates a locator querying providers in the given order.
func New(fs afero.Fs, providers []Provider, opts ...Option) *Locator {
	l := &Locator{
		fs:        fs,
		providers: append([]Provider(nil), providers...),
		artifacts: []string{RTJarPath, ClassesJarPath},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NeedsCrossCompile reports whether target differs from the running JDK.
// Callers skip Locate entirely when it does not.
func NeedsCrossCompile(target, running java.Version) bool {
	return !target.Equal(running)
}

// Locate returns the first provider's candidate home for target, validated
// by the presence of a runtime archive. A candidate without an archive is
// terminal: later providers are not consulted.
func (l *Locator) Locate(target java.Version) (Location, error) {
	l.logger.Debug("locating JDK", "version", target.String())

	home, ok := l.candidate(target)
	if !ok {
		return Location{}, cannotLocate(target, "")
	}
	l.logger.Debug("found JDK candidate", "version", target.String(), "home", home)

	// Both fields must name the same directory regardless of the working
	// directory the compiler later runs in.
	if abs, err := filepath.Abs(home); err == nil {
		home = abs
	}

	for _, rel := range l.artifacts {
		path := filepath.Join(home, filepath.FromSlash(rel))
		if !l.isFile(path) {
			l.logger.Debug("runtime classes jar does not exist", "path", path)
			continue
		}
		l.logger.Debug("found runtime classes jar", "path", path)
		return Location{JDKHome: home, BootClasspath: path}, nil
	}

	return Location{}, cannotLocate(target, home)
}

func (l *Locator) candidate(target java.Version) (string, bool) {
	for _, p := range l.providers {
		if home, ok := p.Resolve(target); ok && home != "" {
			l.logger.Debug("provider answered", "provider", p.Name(), "home", home)
			return home, true
		}
		l.logger.Debug("provider has no answer", "provider", p.Name())
	}
	return "", false
}

func (l *Locator) isFile(path string) bool {
	info, err := l.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// Probe is one provider's answer, as reported by Explain.
type Probe struct {
	Provider  string
	Home      string
	Found     bool
	Validated bool
	Location  Location
}

// Explain queries every provider, not just the first, and validates each
// candidate. It is a diagnostic view; Locate remains the authority.
func (l *Locator) Explain(target java.Version) []Probe {
	probes := make([]Probe, 0, len(l.providers))
	for _, p := range l.providers {
		probe := Probe{Provider: p.Name()}
		if home, ok := p.Resolve(target); ok && home != "" {
			probe.Home, probe.Found = home, true
			single := New(l.fs, []Provider{fixed(home)}, WithLogger(l.logger), WithRuntimeArtifacts(l.artifacts...))
			if loc, err := single.Locate(target); err == nil {
				probe.Validated, probe.Location = true, loc
			}
		}
		probes = append(probes, probe)
	}
	return probes
}

type fixed string

func (f fixed) Name() string { return "fixed" }

func (f fixed) Resolve(java.Version) (string, bool) { return string(f), f != "" }
