package java

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

// ErrNoRunningJDK is returned when the running JDK version cannot be
// determined from JAVA_HOME or the java launcher on PATH.
var ErrNoRunningJDK = errors.New("cannot determine the running JDK version")

// versionCommand runs "java -version" and returns its combined output.
// Tests replace it.
var versionCommand = func(javaExe string) (string, error) {
	out, err := exec.Command(javaExe, "-version").CombinedOutput()
	return string(out), err
}

// Running detects the version of the JDK that executes builds: the
// release file under JAVA_HOME first, then "java -version".
func Running(fs afero.Fs, lookup func(string) (string, bool)) (Version, error) {
	javaExe := "java"

	if home, ok := lookup("JAVA_HOME"); ok && strings.TrimSpace(home) != "" {
		home = strings.TrimSpace(home)
		d := NewDetectorWithRoots(fs, nil)
		if raw := d.ReadReleaseVersion(home); raw != "" {
			return ParseVersion(raw)
		}
		javaExe = filepath.Join(home, "bin", "java")
	}

	output, err := versionCommand(javaExe)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %s -version: %v", ErrNoRunningJDK, javaExe, err)
	}

	raw := parseVersionOutput(output)
	if raw == "" {
		return Version{}, ErrNoRunningJDK
	}
	return ParseVersion(raw)
}

var versionOutputPattern = regexp.MustCompile(`version\s+"([^"]+)"`)

// parseVersionOutput parses the output of 'java -version', e.g.
// `openjdk version "11.0.12" 2021-07-20`.
func parseVersionOutput(output string) string {
	matches := versionOutputPattern.FindStringSubmatch(output)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}
