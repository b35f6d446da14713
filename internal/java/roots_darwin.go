package java

import "path/filepath"

const bundleHome = "Contents/Home"

func standardRoots() []Root {
	roots := []Root{
		{Path: "/Library/Java/JavaVirtualMachines", HomeSuffix: bundleHome},
	}
	if home := userHome(); home != "" {
		roots = append(roots, Root{
			Path:       filepath.Join(home, "Library", "Java", "JavaVirtualMachines"),
			HomeSuffix: bundleHome,
		})
	}
	// Apple JDK 6 keeps classes.jar beside Home, see ../Classes/classes.jar
	return append(roots, Root{Path: "/System/Library/Java/JavaVirtualMachines", HomeSuffix: bundleHome})
}
