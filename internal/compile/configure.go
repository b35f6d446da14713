package compile

import (
	"fmt"
	"log/slog"

	"jvx/internal/java"
	"jvx/internal/locator"
)

// Resolver locates a validated JDK for a target version.
type Resolver interface {
	Locate(target java.Version) (locator.Location, error)
}

// Configurer assigns resolved JDK paths onto compile tasks. Resolution
// runs once per target major version. A Configurer is not safe for
// concurrent use.
type Configurer struct {
	resolver Resolver
	running  java.Version
	logger   *slog.Logger
	resolved map[int]locator.Location
}

// NewConfigurer creates a configurer for builds executed by running.
func NewConfigurer(resolver Resolver, running java.Version, logger *slog.Logger) *Configurer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Configurer{
		resolver: resolver,
		running:  running,
		logger:   logger,
		resolved: make(map[int]locator.Location),
	}
}

// Configure points p's compile tasks at the JDK for its target
// compatibility. It returns false without probing anything when the
// target matches the running JDK. On error no task is modified.
func (c *Configurer) Configure(p *Project) (bool, error) {
	target := p.TargetCompatibility
	if !locator.NeedsCrossCompile(target, c.running) {
		c.logger.Debug("target matches running JDK", "version", target.String())
		return false, nil
	}

	tasks := p.applicable()
	if len(tasks) == 0 {
		return false, nil
	}

	loc, err := c.locate(target)
	if err != nil {
		return false, fmt.Errorf("configure compile tasks: %w", err)
	}

	for _, t := range tasks {
		switch t.Kind {
		case KotlinCompile:
			t.JDKHome = loc.JDKHome
		default:
			t.BootClasspath = loc.BootClasspath
		}
		c.logger.Debug("configured task", "task", t.Name, "kind", string(t.Kind))
	}
	return true, nil
}

func (c *Configurer) locate(target java.Version) (locator.Location, error) {
	if loc, ok := c.resolved[target.Major()]; ok {
		return loc, nil
	}
	loc, err := c.resolver.Locate(target)
	if err != nil {
		return locator.Location{}, err
	}
	c.resolved[target.Major()] = loc
	return loc, nil
}
