// Package project loads the jvx.toml descriptor of a build.
package project

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"jvx/internal/compile"
	"jvx/internal/java"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// FileName is the descriptor looked up in the working directory.
const FileName = "jvx.toml"

var errNoTarget = errors.New("target_compatibility is not set")

type descriptor struct {
	TargetCompatibility string      `toml:"target_compatibility"`
	Plugins             []string    `toml:"plugins"`
	Tasks               []taskEntry `toml:"tasks"`
}

type taskEntry struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"`
}

// Load reads and validates the descriptor at path.
func Load(fs afero.Fs, path string) (*compile.Project, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a descriptor. Unknown keys are rejected.
func Parse(data []byte) (*compile.Project, error) {
	var d descriptor
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("invalid project file: %w", err)
	}

	if strings.TrimSpace(d.TargetCompatibility) == "" {
		return nil, errNoTarget
	}
	target, err := java.ParseVersion(d.TargetCompatibility)
	if err != nil {
		return nil, fmt.Errorf("target_compatibility: %w", err)
	}

	p := &compile.Project{TargetCompatibility: target, Plugins: d.Plugins}
	for i, entry := range d.Tasks {
		kind, err := compile.ParseKind(entry.Kind)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		name := entry.Name
		if name == "" {
			name = defaultTaskName(kind)
		}
		p.Tasks = append(p.Tasks, &compile.Task{Name: name, Kind: kind})
	}
	return p, nil
}

func defaultTaskName(kind compile.Kind) string {
	switch kind {
	case compile.GroovyCompile:
		return "compileGroovy"
	case compile.KotlinCompile:
		return "compileKotlin"
	default:
		return "compileJava"
	}
}
