package java

import (
	"bufio"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Root is a base directory scanned for JDK installations.
type Root struct {
	Path string
	// HomeSuffix is joined onto each entry to reach the JDK home, e.g.
	// "Contents/Home" for macOS bundles.
	HomeSuffix string
}

// Detector finds Java installations on the system
type Detector struct {
	fs    afero.Fs
	roots []Root
}

// NewDetector creates a detector over the platform's standard roots
// followed by any extra search paths.
func NewDetector(fs afero.Fs, searchPaths ...string) *Detector {
	roots := standardRoots()
	for _, p := range searchPaths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		roots = append(roots, Root{Path: filepath.Clean(p)})
	}
	return NewDetectorWithRoots(fs, roots)
}

// NewDetectorWithRoots creates a detector that only scans the given roots.
func NewDetectorWithRoots(fs afero.Fs, roots []Root) *Detector {
	return &Detector{fs: fs, roots: roots}
}

// Roots returns the roots in scan order.
func (d *Detector) Roots() []Root {
	out := make([]Root, len(d.roots))
	copy(out, d.roots)
	return out
}

// FindAll lists every kit under the configured roots whose version can be
// determined, newest first.
func (d *Detector) FindAll() []Kit {
	seen := make(map[string]Kit)

	for _, root := range d.roots {
		if !d.IsValidSearchPath(root.Path) {
			continue
		}

		entries, err := afero.ReadDir(d.fs, root.Path)
		if err != nil {
			slog.Debug("cannot read search root", "root", root.Path, "err", err)
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}

			home := filepath.Join(root.Path, entry.Name(), root.HomeSuffix)
			if !d.IsValidSearchPath(home) {
				continue
			}

			version := d.GetVersion(home)
			if version == "" {
				continue
			}

			key := filepath.Clean(home)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = Kit{Version: version, Home: key, Root: root.Path}
		}
	}

	kits := make([]Kit, 0, len(seen))
	for _, k := range seen {
		kits = append(kits, k)
	}
	sortKits(kits)
	return kits
}

// FindMajor returns the kits matching the major version of v, newest first.
func (d *Detector) FindMajor(v Version) []Kit {
	var out []Kit
	for _, k := range d.FindAll() {
		if k.Major().Equal(v) {
			out = append(out, k)
		}
	}
	return out
}

// IsValidSearchPath checks if a path is an existing directory
func (d *Detector) IsValidSearchPath(path string) bool {
	ok, err := afero.DirExists(d.fs, path)
	return err == nil && ok
}

// IsFile reports whether path exists and is not a directory.
func (d *Detector) IsFile(path string) bool {
	info, err := d.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// HasLauncher reports whether home contains a java launcher binary.
func (d *Detector) HasLauncher(home string) bool {
	for _, name := range []string{"java", "java.exe"} {
		if ok, _ := afero.Exists(d.fs, filepath.Join(home, "bin", name)); ok {
			return true
		}
	}
	return false
}

// GetVersion determines the version of a JDK home. The release file is
// authoritative; the directory name is the fallback.
func (d *Detector) GetVersion(home string) string {
	if v := d.ReadReleaseVersion(home); v != "" {
		return v
	}

	dir := home
	if base := filepath.Base(dir); strings.EqualFold(base, "Home") {
		// <bundle>.jdk/Contents/Home
		dir = filepath.Dir(filepath.Dir(dir))
	}
	return parseVersionFromDirName(filepath.Base(dir))
}

// ReadReleaseVersion returns JAVA_VERSION from home/release, or "".
func (d *Detector) ReadReleaseVersion(home string) string {
	f, err := d.fs.Open(filepath.Join(home, "release"))
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		value, ok := strings.CutPrefix(line, "JAVA_VERSION=")
		if !ok {
			continue
		}
		return strings.Trim(value, `"' `)
	}
	return ""
}

var dirNamePatterns = []*regexp.Regexp{
	// jdk-17, jdk-17.0.1, jdk1.8.0_322, openjdk-11
	regexp.MustCompile(`jdk-?(\d+(?:\.\d+)*(?:_\d+)?)`),
	// java-17, java-1.8.0-openjdk, graalvm-ce-java17
	regexp.MustCompile(`java-?(\d+(?:\.\d+)*(?:_\d+)?)`),
	// 1.8.0, temurin-11.jdk, zulu-8.jdk
	regexp.MustCompile(`(\d+(?:\.\d+)*(?:_\d+)?)`),
}

// parseVersionFromDirName extracts a version from directory names like
// "jdk-17", "jdk1.8.0_322" or "java-8-openjdk-amd64". Returns "" when the
// name carries no version.
func parseVersionFromDirName(dirName string) string {
	dirName = strings.ToLower(dirName)

	for _, re := range dirNamePatterns {
		if m := re.FindStringSubmatch(dirName); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}

func sortKits(kits []Kit) {
	sort.SliceStable(kits, func(i, j int) bool {
		if c := CompareFull(kits[i].Version, kits[j].Version); c != 0 {
			return c > 0
		}
		return kits[i].Home < kits[j].Home
	})
}
