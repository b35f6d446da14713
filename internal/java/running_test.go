package java

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func lookupFrom(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func stubVersionCommand(t *testing.T, output string, err error) *[]string {
	t.Helper()
	var calls []string
	orig := versionCommand
	versionCommand = func(javaExe string) (string, error) {
		calls = append(calls, javaExe)
		return output, err
	}
	t.Cleanup(func() { versionCommand = orig })
	return &calls
}

func TestRunningFromReleaseFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/jdk/release", "JAVA_VERSION=\"11.0.20\"\n")
	calls := stubVersionCommand(t, "", errors.New("must not run"))

	v, err := Running(fs, lookupFrom(map[string]string{"JAVA_HOME": "/jdk"}))
	if err != nil {
		t.Fatalf("Running() error: %v", err)
	}
	if v.Major() != 11 {
		t.Errorf("Running() = %v, want 11", v)
	}
	if len(*calls) != 0 {
		t.Errorf("java -version was run %d times, want 0", len(*calls))
	}
}

func TestRunningFromLauncher(t *testing.T) {
	fs := afero.NewMemMapFs()
	calls := stubVersionCommand(t, "openjdk version \"1.8.0_372\"\nOpenJDK Runtime Environment", nil)

	v, err := Running(fs, lookupFrom(map[string]string{"JAVA_HOME": "/jdk8"}))
	if err != nil {
		t.Fatalf("Running() error: %v", err)
	}
	if v.String() != "1.8" {
		t.Errorf("Running() = %v, want 1.8", v)
	}
	if want := filepath.Join("/jdk8", "bin", "java"); len(*calls) != 1 || (*calls)[0] != want {
		t.Errorf("launcher calls = %v, want [%s]", *calls, want)
	}
}

func TestRunningUsesPathWithoutJavaHome(t *testing.T) {
	fs := afero.NewMemMapFs()
	calls := stubVersionCommand(t, `java version "17.0.2" 2022-01-18 LTS`, nil)

	v, err := Running(fs, lookupFrom(nil))
	if err != nil {
		t.Fatalf("Running() error: %v", err)
	}
	if v.Major() != 17 {
		t.Errorf("Running() = %v, want 17", v)
	}
	if len(*calls) != 1 || (*calls)[0] != "java" {
		t.Errorf("launcher calls = %v, want [java]", *calls)
	}
}

func TestRunningFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	stubVersionCommand(t, "", errors.New("executable file not found"))

	_, err := Running(fs, lookupFrom(nil))
	if !errors.Is(err, ErrNoRunningJDK) {
		t.Fatalf("Running() error = %v, want ErrNoRunningJDK", err)
	}
}
