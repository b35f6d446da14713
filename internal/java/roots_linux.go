package java

import "path/filepath"

func standardRoots() []Root {
	roots := []Root{
		{Path: "/usr/lib/jvm"},
		{Path: "/usr/java"},
		{Path: "/usr/local/java"},
		{Path: "/opt/jdks"},
		{Path: "/opt/java"},
	}
	if home := userHome(); home != "" {
		roots = append(roots,
			Root{Path: filepath.Join(home, ".jdks")},
			Root{Path: filepath.Join(home, ".sdkman", "candidates", "java")},
		)
	}
	return roots
}
