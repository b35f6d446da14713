package locator

import (
	"path/filepath"
	"reflect"
	"testing"

	"jvx/internal/java"
)

func TestEnvVarNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		want    []string
	}{
		{version: "1.8", want: []string{"JDK_1_8"}},
		{version: "1.6", want: []string{"JDK_1_6"}},
		{version: "9", want: []string{"JDK_9"}},
		{version: "11", want: []string{"JDK_11"}},
	}

	for _, tt := range tests {
		got := EnvVarNames(java.MustParseVersion(tt.version))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("EnvVarNames(%s) = %v, want %v", tt.version, got, tt.want)
		}
		if EnvVarName(java.MustParseVersion(tt.version)) != tt.want[0] {
			t.Errorf("EnvVarName(%s) != %s", tt.version, tt.want[0])
		}
	}
}

func TestVersionFromEnvVar(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"JDK_1_8":  8,
		"JDK_1_6":  6,
		"JDK_11":   11,
		"JDK_9":    9,
		"JDK_8":    0,
		"JDK_1_11": 0,
		"JDK_HOME": 0,
		"JDK_":     0,
		"JAVA_11":  0,
	}

	for name, want := range tests {
		v, ok := VersionFromEnvVar(name)
		if ok != (want != 0) || v.Major() != want {
			t.Errorf("VersionFromEnvVar(%q) = %v, %v; want major %d", name, v, ok, want)
		}
	}
}

func TestEnvironmentProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		vars     map[string]string
		version  string
		wantHome string
		wantOK   bool
	}{
		{name: "unset", version: "1.8"},
		{name: "empty", vars: map[string]string{"JDK_1_8": "  "}, version: "1.8"},
		{name: "legacy", vars: map[string]string{"JDK_1_8": "/jdk8", "JDK_18": "/jdk18"}, version: "1.8", wantHome: "/jdk8", wantOK: true},
		{name: "compact spelling is a modern version", vars: map[string]string{"JDK_18": "/jdk18"}, version: "8"},
		{name: "compact spelling", vars: map[string]string{"JDK_18": "/jdk18"}, version: "18", wantHome: "/jdk18", wantOK: true},
		{name: "modern", vars: map[string]string{"JDK_11": " /jdk11 "}, version: "11", wantHome: "/jdk11", wantOK: true},
		{name: "other version set", vars: map[string]string{"JDK_11": "/jdk11"}, version: "17"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewEnvironmentProvider(envOf(tt.vars), nil)
			home, ok := p.Resolve(java.MustParseVersion(tt.version))
			if home != tt.wantHome || ok != tt.wantOK {
				t.Errorf("Resolve() = %q, %v; want %q, %v", home, ok, tt.wantHome, tt.wantOK)
			}
		})
	}
}

func TestDefaultLocationProvider(t *testing.T) {
	t.Parallel()

	fs := newFs(t,
		"/usr/lib/jvm/java-8-openjdk-amd64/",
		"/usr/lib/jvm/java-11-openjdk-amd64/",
		"/opt/jdks/jdk-11.0.21/",
	)
	p := NewDefaultLocationProvider(java.NewDetectorWithRoots(fs, []java.Root{
		{Path: "/usr/lib/jvm"},
		{Path: "/opt/jdks"},
	}), nil)

	if home, ok := p.Resolve(java.VersionOf(8)); !ok || home != filepath.Clean("/usr/lib/jvm/java-8-openjdk-amd64") {
		t.Errorf("Resolve(8) = %q, %v", home, ok)
	}
	if home, ok := p.Resolve(java.VersionOf(11)); !ok || home != filepath.Clean("/opt/jdks/jdk-11.0.21") {
		t.Errorf("Resolve(11) = %q, %v; want the newest 11", home, ok)
	}
	if home, ok := p.Resolve(java.VersionOf(17)); ok {
		t.Errorf("Resolve(17) = %q, want no answer", home)
	}
}

func TestDefaultProvidersOrder(t *testing.T) {
	t.Parallel()

	chain := DefaultProviders(newFs(t), envOf(nil), nil)
	if len(chain) != 2 {
		t.Fatalf("DefaultProviders() has %d providers, want 2", len(chain))
	}
	if chain[0].Name() != "environment" || chain[1].Name() != "default-location" {
		t.Errorf("order = %s, %s", chain[0].Name(), chain[1].Name())
	}
}

func TestDefaultLocationProviderPrefersKitWithArchive(t *testing.T) {
	t.Parallel()

	fs := newFs(t,
		"/L/temurin-8.jdk/",
		"/L/zulu-8.jdk/jre/lib/rt.jar",
		"/M/jdk-8.0.2/",
		"/M/jdk-8.0.1/",
	)
	withArchive := NewDefaultLocationProvider(java.NewDetectorWithRoots(fs, []java.Root{{Path: "/L"}}), nil)
	if home, ok := withArchive.Resolve(java.VersionOf(8)); !ok || home != filepath.Clean("/L/zulu-8.jdk") {
		t.Errorf("Resolve(8) = %q, %v; want the kit carrying rt.jar", home, ok)
	}

	// With no archive anywhere the newest kit is still the candidate, so
	// the locator can name it in its error.
	without := NewDefaultLocationProvider(java.NewDetectorWithRoots(fs, []java.Root{{Path: "/M"}}), nil)
	if home, ok := without.Resolve(java.VersionOf(8)); !ok || home != filepath.Clean("/M/jdk-8.0.2") {
		t.Errorf("Resolve(8) = %q, %v; want the newest kit", home, ok)
	}
}
