package locator

import (
	"log/slog"
	"path/filepath"

	"jvx/internal/java"
)

// DefaultLocationProvider looks for a JDK of the requested major version
// under the conventional installation roots.
type DefaultLocationProvider struct {
	detector  *java.Detector
	artifacts []string
	logger    *slog.Logger
}

// NewDefaultLocationProvider creates a provider scanning the detector's
// roots. A nil logger means slog.Default().
func NewDefaultLocationProvider(detector *java.Detector, logger *slog.Logger) *DefaultLocationProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultLocationProvider{
		detector:  detector,
		artifacts: []string{RTJarPath, ClassesJarPath},
		logger:    logger,
	}
}

func (p *DefaultLocationProvider) Name() string {
	return "default-location"
}

// Resolve returns the newest matching kit that carries a runtime archive.
// When none does, the newest kit is returned anyway so that the locator
// reports it as the failed candidate. Ties go to the lexically first home
// so repeated calls agree.
func (p *DefaultLocationProvider) Resolve(v java.Version) (string, bool) {
	kits := p.detector.FindMajor(v)
	if len(kits) == 0 {
		p.logger.Debug("no JDK in default locations", "version", v.String())
		return "", false
	}

	for _, k := range kits {
		if p.hasArtifact(k.Home) {
			p.logger.Debug("found JDK in default location", "version", v.String(), "home", k.Home, "candidates", len(kits))
			return k.Home, true
		}
		p.logger.Debug("skipping JDK without runtime classes", "home", k.Home)
	}
	return kits[0].Home, true
}

func (p *DefaultLocationProvider) hasArtifact(home string) bool {
	for _, rel := range p.artifacts {
		if p.detector.IsFile(filepath.Join(home, filepath.FromSlash(rel))) {
			return true
		}
	}
	return false
}
