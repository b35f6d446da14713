// Package updater replaces the running jvx binary with the latest GitHub
// release.
package updater

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"jvx/internal/config"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
)

const (
	// CheckInterval is minimum time between update checks
	CheckInterval = 24 * time.Hour

	// UpdateTimeout is maximum time for update operations
	UpdateTimeout = 5 * time.Minute
)

// ErrNoRepository is returned for builds that carry no release repository.
var ErrNoRepository = errors.New("no release repository configured")

// Updater handles checking and applying updates
type Updater struct {
	config         *config.Config
	currentVersion string
	repository     selfupdate.RepositorySlug
	selfUpdater    *selfupdate.Updater
}

// NewUpdater creates a new Updater fetching releases from repo, an
// "owner/name" GitHub slug.
func NewUpdater(cfg *config.Config, version, repo string) (*Updater, error) {
	repo = strings.TrimSpace(repo)
	if repo == "" {
		return nil, ErrNoRepository
	}
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return nil, fmt.Errorf("invalid release repository %q (want owner/name)", repo)
	}

	su, err := selfupdate.NewUpdater(selfupdate.Config{
		Validator: &selfupdate.ChecksumValidator{
			UniqueFilename: "SHA256SUMS.txt",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create updater: %w", err)
	}

	return &Updater{
		config:         cfg,
		currentVersion: cleanVersion(version),
		repository:     selfupdate.NewRepositorySlug(owner, name),
		selfUpdater:    su,
	}, nil
}

// ShouldCheckForUpdate reports whether a background check is due.
func (u *Updater) ShouldCheckForUpdate(now time.Time) bool {
	uc := u.config.UpdateConfig
	if !uc.Enabled || !uc.AutoCheck {
		return false
	}
	return now.Sub(uc.LastCheck) >= CheckInterval
}

// CheckForUpdate returns the latest release when it is newer than the
// running version and not skipped, or nil.
func (u *Updater) CheckForUpdate(ctx context.Context) (*selfupdate.Release, error) {
	latest, found, err := u.selfUpdater.DetectLatest(ctx, u.repository)
	if err != nil {
		return nil, fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("no releases found")
	}

	u.config.UpdateConfig.LastCheck = time.Now()
	if err := u.config.Save(); err != nil {
		slog.Warn("failed to save config", "err", err)
	}

	if !isNewer(u.currentVersion, latest.Version(), u.config.UpdateConfig.SkipVersion) {
		return nil, nil
	}
	return latest, nil
}

// PerformUpdate downloads and installs the update, restoring the previous
// binary if the replacement fails.
func (u *Updater) PerformUpdate(ctx context.Context, release *selfupdate.Release) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to determine executable path: %w", err)
	}

	backup := exe + ".backup"
	if err := copyFile(exe, backup); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, release.AssetURL, release.AssetName, exe); err != nil {
		if rollbackErr := os.Rename(backup, exe); rollbackErr != nil {
			return fmt.Errorf("update failed and rollback failed: update error: %w, rollback error: %v", err, rollbackErr)
		}
		return fmt.Errorf("update failed (rolled back): %w", err)
	}

	if err := os.Remove(backup); err != nil {
		slog.Debug("failed to remove backup", "path", backup, "err", err)
	}
	return nil
}

// SkipVersion marks a version as skipped by the user
func (u *Updater) SkipVersion(version string) error {
	u.config.UpdateConfig.SkipVersion = version
	return u.config.Save()
}

// isNewer reports whether latest should be offered over current. Builds
// without a release version ("dev") are always offered the latest.
func isNewer(current, latest, skipped string) bool {
	if latest == "" || cleanVersion(skipped) == cleanVersion(latest) {
		return false
	}

	lv, err := semver.NewVersion(latest)
	if err != nil {
		return false
	}
	cv, err := semver.NewVersion(current)
	if err != nil {
		return true
	}
	return lv.GreaterThan(cv)
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o755)
}

// cleanVersion removes 'v' prefix if present for consistent comparison
func cleanVersion(version string) string {
	return strings.TrimPrefix(version, "v")
}
