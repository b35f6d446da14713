package java

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version identifies a Java major version such as "1.8" or "11".
// Two versions are equal when their major numbers match.
type Version struct {
	major int
}

var leadingVersion = regexp.MustCompile(`^(\d+)(?:\.(\d+))?`)

// ParseVersion parses a target compatibility or full version string.
// Accepted forms include "1.8", "8", "11", "1.8.0_372" and "17.0.2+8".
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "v")
	m := leadingVersion.FindStringSubmatch(raw)
	if m == nil {
		return Version{}, fmt.Errorf("invalid Java version %q", s)
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, fmt.Errorf("invalid Java version %q: %w", s, err)
	}

	// Legacy scheme: 1.N means Java N
	if major == 1 && m[2] != "" {
		major, err = strconv.Atoi(m[2])
		if err != nil {
			return Version{}, fmt.Errorf("invalid Java version %q: %w", s, err)
		}
	}

	if major < 1 {
		return Version{}, fmt.Errorf("invalid Java version %q", s)
	}

	return Version{major: major}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// VersionOf returns the version for a major number.
func VersionOf(major int) Version {
	return Version{major: major}
}

// Major returns the major version number (8 for "1.8").
func (v Version) Major() int {
	return v.major
}

// IsZero reports whether v is the zero value.
func (v Version) IsZero() bool {
	return v.major == 0
}

// IsLegacy reports whether the version uses the 1.N naming scheme.
func (v Version) IsLegacy() bool {
	return v.major <= 8
}

// Equal reports whether both versions share the same major number.
func (v Version) Equal(o Version) bool {
	return v.major == o.major
}

// Compare returns -1, 0 or +1.
func (v Version) Compare(o Version) int {
	switch {
	case v.major < o.major:
		return -1
	case v.major > o.major:
		return 1
	}
	return 0
}

// String renders the version the way build tools print target
// compatibility: "1.8" for legacy versions and "11" otherwise.
func (v Version) String() string {
	if v.major == 0 {
		return ""
	}
	if v.IsLegacy() {
		return fmt.Sprintf("1.%d", v.major)
	}
	return strconv.Itoa(v.major)
}

// Kit represents a JDK installation found on disk
type Kit struct {
	Version string // Full version string (e.g., "17.0.1", "1.8.0_322")
	Home    string // Full path to the JDK home
	Root    string // Search root the kit was found under
}

// Major returns the kit's major version, or the zero Version if the
// version string cannot be parsed.
func (k Kit) Major() Version {
	v, err := ParseVersion(k.Version)
	if err != nil {
		return Version{}
	}
	return v
}

// ParseFull parses a full Java version string into a semantic version.
// Legacy strings are rewritten so that "1.8.0_372" orders as 8.0.372.
func ParseFull(s string) (*semver.Version, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "v")

	if strings.HasPrefix(raw, "1.") {
		raw = strings.TrimPrefix(raw, "1.")
		raw = strings.Replace(raw, "_", ".", 1)
	}

	// Keep at most three numeric components; 11.0.18.1 is not semver
	core, rest := raw, ""
	if i := strings.IndexAny(raw, "+-"); i >= 0 {
		core, rest = raw[:i], raw[i:]
	}
	if parts := strings.Split(core, "."); len(parts) > 3 {
		core = strings.Join(parts[:3], ".")
	}

	v, err := semver.NewVersion(core + rest)
	if err != nil {
		return nil, fmt.Errorf("invalid Java version %q: %w", s, err)
	}
	return v, nil
}

// CompareFull orders two full version strings, newest first being the
// larger value. Unparsable versions sort below parsable ones.
func CompareFull(a, b string) int {
	va, errA := ParseFull(a)
	vb, errB := ParseFull(b)
	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	return va.Compare(vb)
}
