// Package compile points a project's compile tasks at the JDK matching its
// target compatibility.
package compile

import (
	"fmt"
	"slices"
	"strings"

	"jvx/internal/java"
)

// Kind is the type of a compile task.
type Kind string

const (
	JavaCompile   Kind = "java"
	GroovyCompile Kind = "groovy"
	KotlinCompile Kind = "kotlin"
)

// KotlinPlugin must be applied for kotlin tasks to be configured.
const KotlinPlugin = "kotlin"

// ParseKind parses a task kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case JavaCompile, GroovyCompile, KotlinCompile:
		return k, nil
	}
	return "", fmt.Errorf("unknown compile task kind %q (want java, groovy or kotlin)", s)
}

// Task is a compile task with the two settings jvx manages. Java and
// Groovy compilers take the runtime archive as boot classpath; the Kotlin
// compiler takes the JDK home.
type Task struct {
	Name          string `json:"name"`
	Kind          Kind   `json:"kind"`
	BootClasspath string `json:"boot_classpath,omitempty"`
	JDKHome       string `json:"jdk_home,omitempty"`
}

// Project is the set of compile tasks sharing one target compatibility.
type Project struct {
	TargetCompatibility java.Version
	Plugins             []string
	Tasks               []*Task
}

// HasPlugin reports whether the plugin id is applied.
func (p *Project) HasPlugin(id string) bool {
	return slices.ContainsFunc(p.Plugins, func(s string) bool {
		return strings.EqualFold(s, id)
	})
}

// applicable returns the tasks Configure will touch.
func (p *Project) applicable() []*Task {
	var tasks []*Task
	for _, t := range p.Tasks {
		switch t.Kind {
		case JavaCompile, GroovyCompile:
			tasks = append(tasks, t)
		case KotlinCompile:
			if p.HasPlugin(KotlinPlugin) {
				tasks = append(tasks, t)
			}
		}
	}
	return tasks
}
