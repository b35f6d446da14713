//go:build !linux && !darwin && !windows

package java

import "path/filepath"

func standardRoots() []Root {
	roots := []Root{{Path: "/usr/local/openjdk"}, {Path: "/usr/local/java"}}
	if home := userHome(); home != "" {
		roots = append(roots, Root{Path: filepath.Join(home, ".jdks")})
	}
	return roots
}
