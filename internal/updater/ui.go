package updater

import (
	"fmt"
	"os"
	"strings"

	"jvx/internal/theme"

	"github.com/charmbracelet/huh"
	"github.com/creativeprojects/go-selfupdate"
)

// Prompt choices returned by PromptForUpdate.
const (
	ActionUpdate = "update"
	ActionSkip   = "skip"
	ActionLater  = "later"
)

// PromptForUpdate asks whether to install release now, skip it for good,
// or postpone.
func (u *Updater) PromptForUpdate(release *selfupdate.Release) (string, error) {
	sizeMB := float64(release.AssetByteSize) / 1024 / 1024
	description := fmt.Sprintf("Download size: %.1f MB\n\n%s", sizeMB, truncateChangelog(release.ReleaseNotes, 400))

	var action string
	err := huh.NewSelect[string]().
		Title(theme.Subtitle.Render(fmt.Sprintf("Update available: %s → %s", u.currentVersion, release.Version()))).
		Description(theme.Faint.Render(description)).
		Options(
			huh.NewOption(theme.SuccessStyle.Render("Update now"), ActionUpdate),
			huh.NewOption(theme.InfoStyle.Render("Skip this version"), ActionSkip),
			huh.NewOption(theme.WarningStyle.Render("Remind me later"), ActionLater),
		).
		Value(&action).
		Run()
	if err != nil {
		return "", err
	}

	if action == ActionSkip {
		if err := u.SkipVersion(release.Version()); err != nil {
			fmt.Println(theme.WarningMessage("failed to save skip preference: " + err.Error()))
		}
	}
	return action, nil
}

// ShowUpdateNotification prints a one-line hint about a newer release to
// stderr so scripted output stays clean.
func ShowUpdateNotification(currentVersion, latestVersion string) {
	fmt.Fprintf(os.Stderr, "\n%s Update available: %s → %s %s\n\n",
		theme.InfoStyle.Render("ℹ"),
		theme.Faint.Render(currentVersion),
		theme.CurrentStyle.Render(latestVersion),
		theme.Faint.Render("(run 'jvx update')"))
}

// ShowUpdateSuccess displays success message after update
func ShowUpdateSuccess(version string) {
	fmt.Println()
	fmt.Println(theme.SuccessBox.Render(theme.SuccessStyle.Padding(0, 2).Render("✓ Update Complete!")))
	fmt.Printf("\n%s %s\n\n", theme.LabelStyle.Render("Version:"), theme.CurrentStyle.Render(version))
}

// truncateChangelog shortens release notes at a line or word boundary.
func truncateChangelog(changelog string, maxLen int) string {
	changelog = strings.TrimSpace(changelog)
	if changelog == "" {
		return "See release notes on GitHub for details."
	}
	if len(changelog) <= maxLen {
		return changelog
	}

	truncated := changelog[:maxLen]
	if idx := strings.LastIndex(truncated, "\n"); idx > maxLen/2 {
		truncated = truncated[:idx]
	} else if idx := strings.LastIndex(truncated, " "); idx > maxLen/2 {
		truncated = truncated[:idx]
	}
	return truncated + "..."
}
