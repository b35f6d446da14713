package compile

import (
	"errors"
	"testing"

	"jvx/internal/java"
	"jvx/internal/locator"
)

type countingResolver struct {
	loc   locator.Location
	err   error
	calls int
}

func (r *countingResolver) Locate(java.Version) (locator.Location, error) {
	r.calls++
	return r.loc, r.err
}

var jdk8 = locator.Location{
	JDKHome:       "/opt/jdks/1.8.0",
	BootClasspath: "/opt/jdks/1.8.0/jre/lib/rt.jar",
}

func newProject(target string, plugins ...string) *Project {
	return &Project{
		TargetCompatibility: java.MustParseVersion(target),
		Plugins:             plugins,
		Tasks: []*Task{
			{Name: "compileJava", Kind: JavaCompile},
			{Name: "compileGroovy", Kind: GroovyCompile},
			{Name: "compileKotlin", Kind: KotlinCompile},
		},
	}
}

func TestConfigureSameVersionIsNoop(t *testing.T) {
	t.Parallel()

	r := &countingResolver{loc: jdk8}
	p := newProject("9", KotlinPlugin)
	p.Tasks[0].BootClasspath = "untouched"

	changed, err := NewConfigurer(r, java.MustParseVersion("9"), nil).Configure(p)
	if err != nil {
		t.Fatalf("Configure() error: %v", err)
	}
	if changed {
		t.Error("Configure() reported changes on the fast path")
	}
	if r.calls != 0 {
		t.Errorf("resolver called %d times, want 0", r.calls)
	}
	if p.Tasks[0].BootClasspath != "untouched" {
		t.Errorf("BootClasspath = %q, want untouched", p.Tasks[0].BootClasspath)
	}
}

func TestConfigureAssignsPaths(t *testing.T) {
	t.Parallel()

	r := &countingResolver{loc: jdk8}
	p := newProject("1.8", "java", "kotlin")

	changed, err := NewConfigurer(r, java.MustParseVersion("11"), nil).Configure(p)
	if err != nil {
		t.Fatalf("Configure() error: %v", err)
	}
	if !changed {
		t.Error("Configure() = false, want true")
	}

	for _, task := range p.Tasks[:2] {
		if task.BootClasspath != jdk8.BootClasspath || task.JDKHome != "" {
			t.Errorf("%s = %+v, want boot classpath only", task.Name, task)
		}
	}
	kotlin := p.Tasks[2]
	if kotlin.JDKHome != jdk8.JDKHome || kotlin.BootClasspath != "" {
		t.Errorf("compileKotlin = %+v, want JDK home only", kotlin)
	}
	if r.calls != 1 {
		t.Errorf("resolver called %d times, want 1", r.calls)
	}
}

func TestConfigureKotlinNeedsPlugin(t *testing.T) {
	t.Parallel()

	p := newProject("1.8")
	if _, err := NewConfigurer(&countingResolver{loc: jdk8}, java.VersionOf(11), nil).Configure(p); err != nil {
		t.Fatalf("Configure() error: %v", err)
	}
	if p.Tasks[2].JDKHome != "" {
		t.Errorf("compileKotlin configured without the kotlin plugin: %+v", p.Tasks[2])
	}
}

func TestConfigureMemoizesPerTarget(t *testing.T) {
	t.Parallel()

	r := &countingResolver{loc: jdk8}
	c := NewConfigurer(r, java.VersionOf(17), nil)

	for _, target := range []string{"1.8", "8", "1.8"} {
		if _, err := c.Configure(newProject(target)); err != nil {
			t.Fatalf("Configure(%s) error: %v", target, err)
		}
	}
	if r.calls != 1 {
		t.Errorf("resolver called %d times, want 1", r.calls)
	}
}

func TestConfigureFailureLeavesTasks(t *testing.T) {
	t.Parallel()

	notFound := &locator.KitNotFoundError{Version: java.VersionOf(8), EnvVar: "JDK_1_8"}
	r := &countingResolver{err: notFound}
	p := newProject("1.8", KotlinPlugin)

	_, err := NewConfigurer(r, java.VersionOf(11), nil).Configure(p)
	if !errors.Is(err, locator.ErrKitNotFound) {
		t.Fatalf("Configure() error = %v, want ErrKitNotFound", err)
	}
	for _, task := range p.Tasks {
		if task.BootClasspath != "" || task.JDKHome != "" {
			t.Errorf("%s modified after failure: %+v", task.Name, task)
		}
	}

	// Failures are not memoized.
	if _, err := NewConfigurer(r, java.VersionOf(11), nil).Configure(p); err == nil {
		t.Error("second Configure() succeeded, want error")
	}
	if r.calls != 2 {
		t.Errorf("resolver called %d times, want 2", r.calls)
	}
}

func TestConfigureWithoutTasksSkipsLookup(t *testing.T) {
	t.Parallel()

	r := &countingResolver{err: errors.New("boom")}
	p := &Project{TargetCompatibility: java.VersionOf(8), Tasks: []*Task{{Name: "compileKotlin", Kind: KotlinCompile}}}

	changed, err := NewConfigurer(r, java.VersionOf(11), nil).Configure(p)
	if err != nil || changed {
		t.Errorf("Configure() = %v, %v; want false, nil", changed, err)
	}
	if r.calls != 0 {
		t.Errorf("resolver called %d times, want 0", r.calls)
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Kind{"java": JavaCompile, " Groovy ": GroovyCompile, "KOTLIN": KotlinCompile} {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseKind("scala"); err == nil {
		t.Error("ParseKind(scala) succeeded")
	}
}
