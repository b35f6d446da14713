package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"jvx/internal/compile"
	"jvx/internal/config"
	"jvx/internal/env"
	"jvx/internal/java"
	"jvx/internal/locator"
	"jvx/internal/logging"
	"jvx/internal/project"
	"jvx/internal/theme"
	"jvx/internal/updater"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// Version and Repository are set during build time via ldflags. A build
// without a Repository cannot update itself.
var (
	Version    = "dev"
	Repository = ""
)

var fsys = afero.NewOsFs()

var (
	successStyle = theme.SuccessStyle
	errorStyle   = theme.ErrorStyle
	warningStyle = theme.WarningStyle
	infoStyle    = theme.InfoStyle
	titleStyle   = theme.Title
	boxStyle     = theme.Box
	currentStyle = theme.CurrentStyle
)

var errUsage = errors.New("invalid usage")

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command, args := os.Args[1], os.Args[2:]

	var err error
	switch command {
	case "locate":
		err = handleLocate(args)
	case "configure":
		err = handleConfigure(args)
	case "providers":
		err = handleProviders(args)
	case "list":
		err = handleList(args)
	case "add-path":
		err = handleAddPath(args)
	case "remove-path":
		err = handleRemovePath(args)
	case "list-paths":
		err = handleListPaths(args)
	case "doctor":
		err = handleDoctor(args)
	case "update":
		err = handleUpdate(args)
	case "version", "-v", "--version":
		printVersion()
		return
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Println(errorStyle.Render("Unknown command: " + command))
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		exitWithError(err)
	}

	if shouldAutoCheck(command) {
		checkForUpdate()
	}
}

// shouldAutoCheck reports whether command may look for a newer release
// afterwards. Resolution commands stay free of network access and writes
// so they can run in scripts.
func shouldAutoCheck(command string) bool {
	switch command {
	case "list", "list-paths", "doctor":
		return true
	}
	return false
}

func exitWithError(err error) {
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if errors.Is(err, errUsage) {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		fmt.Fprintln(os.Stderr, theme.Faint.Render("Run 'jvx help' for usage."))
		os.Exit(2)
	}

	var notFound *locator.KitNotFoundError
	if errors.As(err, &notFound) {
		msg := theme.ErrorMessage(fmt.Sprintf("No compatible JDK for target compatibility %s", notFound.Version))
		if notFound.Candidate != "" {
			msg += "\n\n" + theme.Faint.Render("Candidate without runtime classes: ") + theme.PathStyle.Render(notFound.Candidate)
		}
		msg += "\n\n" + theme.Bold.Render("To fix this, either:") + "\n" +
			"  • change the source/target compatibility\n" +
			"  • set " + theme.Code.Render(notFound.EnvVar) + " to the JDK home\n" +
			"  • install the JDK to one of the default search locations (see 'jvx list-paths')"
		fmt.Fprintln(os.Stderr, theme.ErrorBox.Render(msg))
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, theme.ErrorMessage(err.Error()))
	os.Exit(1)
}

// newFlagSet creates a per-command flag set carrying the shared flags.
func newFlagSet(name string) (*pflag.FlagSet, *bool) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	verbose := fs.BoolP("verbose", "v", false, "print debug diagnostics to stderr")
	return fs, verbose
}

func parseFlags(fs *pflag.FlagSet, verbose *bool, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	logging.Init(*verbose)
	return nil
}

func loadConfig() *config.Config {
	cfg, err := config.Load(fsys)
	if err != nil {
		fmt.Fprintln(os.Stderr, theme.WarningMessage("Ignoring configuration: "+err.Error()))
		cfg, _ = config.LoadFrom(afero.NewMemMapFs(), config.Path())
	}
	return cfg
}

func newLocator(cfg *config.Config) *locator.Locator {
	logger := slog.Default()
	providers := locator.DefaultProviders(fsys, env.Lookup, logger, cfg.SearchPaths...)
	return locator.New(fsys, providers, locator.WithLogger(logger))
}

// runningVersion returns the --running override or detects the JDK that
// runs builds. The zero Version means unknown.
func runningVersion(override string) (java.Version, error) {
	if strings.TrimSpace(override) != "" {
		v, err := java.ParseVersion(override)
		if err != nil {
			return java.Version{}, fmt.Errorf("%w: --running: %v", errUsage, err)
		}
		return v, nil
	}

	v, err := java.Running(fsys, env.Process)
	if err != nil {
		fmt.Fprintln(os.Stderr, theme.WarningMessage("Cannot determine the running JDK; resolving anyway"))
		return java.Version{}, nil
	}
	return v, nil
}

func handleLocate(args []string) error {
	fs, verbose := newFlagSet("locate")
	running := fs.String("running", "", "version of the JDK running the build (detected when empty)")
	quiet := fs.BoolP("quiet", "q", false, "print only the boot classpath")
	if err := parseFlags(fs, verbose, args); err != nil {
		return err
	}

	cfg := loadConfig()

	var target java.Version
	if fs.NArg() > 0 {
		v, err := java.ParseVersion(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		target = v
	} else {
		if *quiet {
			return fmt.Errorf("%w: locate --quiet needs a version", errUsage)
		}
		v, err := selectTargetVersion(java.NewDetector(fsys, cfg.SearchPaths...))
		if errors.Is(err, errUsage) {
			return err
		}
		if err != nil {
			fmt.Println(warningStyle.Render(fmt.Sprintf("Selection cancelled: %v", err)))
			return nil
		}
		target = v
	}

	runningV, err := runningVersion(*running)
	if err != nil {
		return err
	}

	if !locator.NeedsCrossCompile(target, runningV) {
		if !*quiet {
			fmt.Println(infoStyle.Render(fmt.Sprintf("Target %s matches the running JDK. Nothing to do.", target)))
		}
		return nil
	}

	l := newLocator(cfg)
	if *quiet {
		loc, err := l.Locate(target)
		if err != nil {
			return err
		}
		fmt.Println(loc.BootClasspath)
		return nil
	}

	var loc locator.Location
	err = java.WithScanner(fmt.Sprintf("Locating a JDK for %s...", target), func() error {
		var locErr error
		loc, locErr = l.Locate(target)
		return locErr
	})
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("JDK for target compatibility %s", target)))
	fmt.Println()
	fmt.Printf("  %s %s\n", theme.LabelStyle.Render("JDK home:      "), theme.PathStyle.Render(loc.JDKHome))
	fmt.Printf("  %s %s\n", theme.LabelStyle.Render("Boot classpath:"), theme.PathStyle.Render(loc.BootClasspath))
	return nil
}

func handleConfigure(args []string) error {
	fs, verbose := newFlagSet("configure")
	projectPath := fs.StringP("project", "p", project.FileName, "project descriptor")
	running := fs.String("running", "", "version of the JDK running the build (detected when empty)")
	asJSON := fs.Bool("json", false, "print the configured tasks as JSON")
	if err := parseFlags(fs, verbose, args); err != nil {
		return err
	}

	p, err := project.Load(fsys, *projectPath)
	if err != nil {
		return err
	}

	runningV, err := runningVersion(*running)
	if err != nil {
		return err
	}

	configurer := compile.NewConfigurer(newLocator(loadConfig()), runningV, nil)
	changed, err := configurer.Configure(p)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			TargetCompatibility string          `json:"target_compatibility"`
			Configured          bool            `json:"configured"`
			Tasks               []*compile.Task `json:"tasks"`
		}{p.TargetCompatibility.String(), changed, p.Tasks})
	}

	if !changed {
		fmt.Println(infoStyle.Render(fmt.Sprintf("Target %s needs no cross-compilation setup.", p.TargetCompatibility)))
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Compile tasks for target compatibility %s", p.TargetCompatibility)))
	fmt.Println()

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Left,
		theme.TableHeader.Width(22).Render("Task"),
		theme.TableHeader.Width(14).Render("Setting"),
		theme.TableHeader.Render("Value"),
	)}
	for _, t := range p.Tasks {
		setting, value := "bootClasspath", t.BootClasspath
		if t.Kind == compile.KotlinCompile {
			setting, value = "jdkHome", t.JDKHome
		}
		valueStyle := theme.PathStyle
		if value == "" {
			value = "(unchanged)"
			valueStyle = theme.Faint
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Left,
			theme.TableCell.Width(22).Render(t.Name),
			theme.TableCell.Width(14).Render(setting),
			valueStyle.Render(value),
		))
	}
	fmt.Println(theme.TableStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	return nil
}

func handleProviders(args []string) error {
	fs, verbose := newFlagSet("providers")
	if err := parseFlags(fs, verbose, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: providers needs exactly one version", errUsage)
	}

	target, err := java.ParseVersion(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	probes := newLocator(loadConfig()).Explain(target)

	fmt.Println(titleStyle.Render(fmt.Sprintf("Providers for %s", target)))
	fmt.Println()
	winner := false
	for i, p := range probes {
		fmt.Printf("%d. %s\n", i+1, theme.LabelStyle.Render(p.Provider))
		switch {
		case !p.Found:
			fmt.Println("   " + theme.Faint.Render("no candidate"))
		case p.Validated:
			fmt.Printf("   %s %s\n", theme.SuccessMessage("home"), theme.PathStyle.Render(p.Home))
			fmt.Printf("   %s %s\n", theme.Faint.Render("runtime classes"), theme.PathStyle.Render(p.Location.BootClasspath))
		default:
			fmt.Printf("   %s %s\n", theme.ErrorMessage("home without runtime classes"), theme.PathStyle.Render(p.Home))
		}
		if p.Found && !winner {
			winner = true
			fmt.Println("   " + currentStyle.Render("→ used by locate"))
		}
	}
	fmt.Println()
	fmt.Println(theme.Faint.Render(fmt.Sprintf("Environment variable: %s", locator.EnvVarName(target))))
	return nil
}

func handleList(args []string) error {
	fs, verbose := newFlagSet("list")
	if err := parseFlags(fs, verbose, args); err != nil {
		return err
	}

	cfg := loadConfig()
	detector := java.NewDetector(fsys, cfg.SearchPaths...)

	var kits []java.Kit
	if err := java.WithScanner("Scanning for Java installations...", func() error {
		kits = detector.FindAll()
		return nil
	}); err != nil {
		return err
	}

	if len(kits) == 0 {
		fmt.Println(warningStyle.Render("No Java installations found."))
		fmt.Println(infoStyle.Render("Run 'jvx list-paths' to see where jvx looks."))
		return nil
	}

	current, _ := env.Process("JAVA_HOME")

	fmt.Println(titleStyle.Render("Available Java Versions:"))
	fmt.Println()
	for _, k := range kits {
		marker := "  "
		versionStr := k.Version
		if current != "" && samePath(k.Home, current) {
			marker = "→ "
			versionStr = currentStyle.Render(k.Version)
		}

		note := ""
		if cfg.HasSearchPath(k.Root) {
			note = " " + theme.Faint.Render("(search path)")
		}
		if !detector.HasLauncher(k.Home) {
			note += " " + theme.WarningStyle.Render("(no bin/java)")
		}

		pad := 0
		if w := lipgloss.Width(versionStr); w < 15 {
			pad = 15 - w
		}
		fmt.Printf("%s%s%s %s%s\n", marker, versionStr, strings.Repeat(" ", pad), k.Home, note)
	}
	fmt.Println()
	return nil
}

func handleAddPath(args []string) error {
	fs, verbose := newFlagSet("add-path")
	if err := parseFlags(fs, verbose, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: add-path needs a directory", errUsage)
	}

	cfg, err := config.Load(fsys)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	dir := fs.Arg(0)
	if !java.NewDetectorWithRoots(fsys, nil).IsValidSearchPath(dir) {
		return fmt.Errorf("not a directory: %s", dir)
	}
	if !cfg.AddSearchPath(dir) {
		fmt.Println(infoStyle.Render("Search path already configured: " + dir))
		return nil
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	fmt.Println(theme.SuccessMessage("Added search path: " + dir))
	return nil
}

func handleRemovePath(args []string) error {
	fs, verbose := newFlagSet("remove-path")
	if err := parseFlags(fs, verbose, args); err != nil {
		return err
	}

	cfg, err := config.Load(fsys)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if len(cfg.SearchPaths) == 0 {
		fmt.Println(warningStyle.Render("No custom search paths configured."))
		return nil
	}

	var dir string
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	} else {
		options := make([]huh.Option[string], len(cfg.SearchPaths))
		for i, p := range cfg.SearchPaths {
			options[i] = huh.NewOption(p, p)
		}
		err := huh.NewSelect[string]().
			Title(theme.Subtitle.Render("Remove Search Path")).
			Description(theme.Faint.Render("Use arrow keys to navigate, Enter to select")).
			Options(options...).
			Value(&dir).
			Run()
		if err != nil {
			fmt.Println(warningStyle.Render(fmt.Sprintf("Selection cancelled: %v", err)))
			return nil
		}
	}

	if !cfg.RemoveSearchPath(dir) {
		return fmt.Errorf("search path not configured: %s", dir)
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	fmt.Println(theme.SuccessMessage("Removed search path: " + dir))
	return nil
}

func handleListPaths(args []string) error {
	fs, verbose := newFlagSet("list-paths")
	if err := parseFlags(fs, verbose, args); err != nil {
		return err
	}

	cfg := loadConfig()
	detector := java.NewDetector(fsys, cfg.SearchPaths...)

	fmt.Println(titleStyle.Render("Search Paths"))
	fmt.Println()
	for _, root := range detector.Roots() {
		status := theme.Faint.Render("(missing)")
		if detector.IsValidSearchPath(root.Path) {
			status = successStyle.Render("(exists)")
		}
		source := "standard"
		if cfg.HasSearchPath(root.Path) {
			source = "custom"
		}
		path := root.Path
		if root.HomeSuffix != "" {
			path += " " + theme.Faint.Render("*/"+root.HomeSuffix)
		}
		fmt.Printf("  %s %s %s\n", theme.PathStyle.Render(path), status, theme.Faint.Render("["+source+"]"))
	}
	fmt.Println()
	fmt.Println(theme.Faint.Render("Config file: " + cfg.ConfigPath()))
	return nil
}

func handleDoctor(args []string) error {
	fs, verbose := newFlagSet("doctor")
	if err := parseFlags(fs, verbose, args); err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("jvx - System Diagnostics"))
	fmt.Println()

	var issues, warnings []string

	// 1. JAVA_HOME and the running JDK
	fmt.Println(theme.LabelStyle.Render("Checking the running JDK..."))
	javaHome, _ := env.Process("JAVA_HOME")
	switch {
	case javaHome != "":
		fmt.Printf("  %s %s\n", theme.SuccessMessage("JAVA_HOME:"), theme.PathStyle.Render(javaHome))
	default:
		if sys, err := env.SystemValue("JAVA_HOME"); err == nil && sys != "" {
			fmt.Println("  " + theme.InfoMessage("JAVA_HOME is set system-wide, but not visible in this session"))
			warnings = append(warnings, "Restart your terminal to pick up JAVA_HOME")
		} else {
			fmt.Println("  " + theme.WarningMessage("JAVA_HOME is not set"))
		}
	}
	running, err := java.Running(fsys, env.Process)
	if err != nil {
		fmt.Println("  " + theme.ErrorMessage(err.Error()))
		warnings = append(warnings, "Running JDK unknown; pass --running to locate and configure")
	} else {
		fmt.Printf("  %s %s\n", theme.SuccessMessage("Running JDK:"), currentStyle.Render(running.String()))
	}
	fmt.Println()

	// 2. Version-specific environment variables
	fmt.Println(theme.LabelStyle.Render("Checking JDK_* environment variables..."))
	vars := jdkEnvVars()
	if len(vars) == 0 {
		fmt.Println("  " + theme.Faint.Render("none set"))
	}
	for _, name := range vars {
		v, _ := locator.VersionFromEnvVar(name)
		envOnly := locator.New(fsys, []locator.Provider{locator.NewEnvironmentProvider(env.Process, nil)})
		loc, err := envOnly.Locate(v)
		if err != nil {
			home, _ := env.Process(name)
			fmt.Printf("  %s %s\n", theme.ErrorMessage(name+" has no runtime classes:"), theme.PathStyle.Render(home))
			issues = append(issues, fmt.Sprintf("%s does not point to a JDK %s home", name, v))
			continue
		}
		fmt.Printf("  %s %s\n", theme.SuccessMessage(name+":"), theme.PathStyle.Render(loc.BootClasspath))
	}
	fmt.Println()

	// 3. Installations in default locations
	fmt.Println(theme.LabelStyle.Render("Checking default locations..."))
	cfg, cfgErr := config.Load(fsys)
	if cfgErr != nil {
		issues = append(issues, fmt.Sprintf("Configuration file error: %v", cfgErr))
		cfg = loadConfig()
	}
	kits := java.NewDetector(fsys, cfg.SearchPaths...).FindAll()
	if len(kits) == 0 {
		fmt.Println("  " + theme.WarningMessage("No Java installations found"))
		warnings = append(warnings, "No JDKs in default locations; use JDK_* variables or 'jvx add-path'")
	} else {
		fmt.Printf("  %s %d\n", theme.SuccessMessage("Found installations:"), len(kits))
		majors := map[int]bool{}
		for _, k := range kits {
			if m := k.Major(); !m.IsZero() {
				majors[m.Major()] = true
			}
		}
		list := make([]int, 0, len(majors))
		for m := range majors {
			list = append(list, m)
		}
		sort.Ints(list)
		names := make([]string, len(list))
		for i, m := range list {
			names[i] = java.VersionOf(m).String()
		}
		fmt.Println("  " + theme.Faint.Render("Versions: "+strings.Join(names, ", ")))
	}
	fmt.Println()

	fmt.Println(titleStyle.Render("Diagnostics Summary"))
	fmt.Println()

	if len(issues) == 0 && len(warnings) == 0 {
		fmt.Println(theme.SuccessBox.Render(theme.SuccessMessage("All checks passed!")))
		return nil
	}

	var summary string
	if len(issues) > 0 {
		summary += errorStyle.Render(fmt.Sprintf("Issues Found: %d", len(issues))) + "\n\n"
		for _, issue := range issues {
			summary += theme.ErrorMessage(issue) + "\n"
		}
	}
	if len(warnings) > 0 {
		if len(issues) > 0 {
			summary += "\n"
		}
		summary += warningStyle.Render(fmt.Sprintf("Warnings: %d", len(warnings))) + "\n\n"
		for _, w := range warnings {
			summary += theme.WarningMessage(w) + "\n"
		}
	}
	fmt.Println(boxStyle.Render(strings.TrimRight(summary, "\n")))
	return nil
}

// jdkEnvVars lists the set, non-empty JDK_* variables jvx understands.
func jdkEnvVars() []string {
	var names []string
	for _, kv := range os.Environ() {
		name, value, _ := strings.Cut(kv, "=")
		if strings.TrimSpace(value) == "" {
			continue
		}
		if _, ok := locator.VersionFromEnvVar(name); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func handleUpdate(args []string) error {
	fs, verbose := newFlagSet("update")
	if err := parseFlags(fs, verbose, args); err != nil {
		return err
	}

	cfg, err := config.Load(fsys)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if !cfg.UpdateConfig.Enabled {
		fmt.Println(warningStyle.Render("Updates are disabled in configuration."))
		fmt.Println(theme.Faint.Render("To enable, set update_config.enabled to true in " + cfg.ConfigPath()))
		return nil
	}

	upd, err := updater.NewUpdater(cfg, Version, Repository)
	if errors.Is(err, updater.ErrNoRepository) {
		fmt.Println(warningStyle.Render("This build of jvx has no release repository and cannot update itself."))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(infoStyle.Render("Checking for updates..."))

	ctx, cancel := context.WithTimeout(context.Background(), updater.UpdateTimeout)
	defer cancel()

	release, err := upd.CheckForUpdate(ctx)
	if err != nil {
		return err
	}
	if release == nil {
		fmt.Println(theme.SuccessMessage(fmt.Sprintf("You're already running the latest version (%s)", Version)))
		return nil
	}

	action, err := upd.PromptForUpdate(release)
	if err != nil {
		fmt.Println(warningStyle.Render("Update cancelled."))
		return nil
	}
	switch action {
	case updater.ActionSkip:
		fmt.Println(theme.InfoMessage(fmt.Sprintf("Skipped version %s", release.Version())))
		return nil
	case updater.ActionLater:
		fmt.Println(theme.InfoMessage("Update postponed"))
		return nil
	}

	fmt.Println(infoStyle.Render(fmt.Sprintf("Downloading jvx %s...", release.Version())))
	if err := upd.PerformUpdate(ctx, release); err != nil {
		return err
	}

	updater.ShowUpdateSuccess(release.Version())
	return nil
}

// checkForUpdate prints a hint when a newer release exists. It runs at
// most once per updater.CheckInterval and never fails the command.
func checkForUpdate() {
	cfg, err := config.Load(fsys)
	if err != nil {
		return
	}

	upd, err := updater.NewUpdater(cfg, Version, Repository)
	if err != nil || !upd.ShouldCheckForUpdate(time.Now()) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	release, err := upd.CheckForUpdate(ctx)
	if err != nil || release == nil {
		return
	}
	updater.ShowUpdateNotification(Version, release.Version())
}

// selectTargetVersion offers the major versions found on disk.
func selectTargetVersion(detector *java.Detector) (java.Version, error) {
	seen := map[int]bool{}
	var versions []java.Version
	for _, k := range detector.FindAll() {
		v := k.Major()
		if v.IsZero() || seen[v.Major()] {
			continue
		}
		seen[v.Major()] = true
		versions = append(versions, v)
	}
	if len(versions) == 0 {
		return java.Version{}, fmt.Errorf("%w: no installed JDKs to choose from; pass a version", errUsage)
	}

	options := make([]huh.Option[int], len(versions))
	for i, v := range versions {
		options[i] = huh.NewOption(currentStyle.Render(v.String())+" "+theme.Faint.Render("("+locator.EnvVarName(v)+")"), i)
	}

	var selected int
	err := huh.NewSelect[int]().
		Title(theme.Subtitle.Render("Select Target Compatibility")).
		Description(theme.Faint.Render("Use arrow keys to navigate, Enter to select")).
		Options(options...).
		Value(&selected).
		Run()
	if err != nil {
		return java.Version{}, err
	}
	return versions[selected], nil
}

func samePath(a, b string) bool {
	return strings.EqualFold(strings.TrimRight(a, `/\`), strings.TrimRight(b, `/\`))
}

func printVersion() {
	fmt.Printf("%s %s %s\n",
		theme.Subtitle.Render("jvx"),
		theme.Faint.Render("version"),
		theme.HighlightText(Version))
}

func printUsage() {
	fmt.Println(theme.Banner.Render("jvx"))
	fmt.Println(theme.Subtitle.Render("Cross-compilation JDK locator"))
	fmt.Println()

	fmt.Println(theme.Title.Render("USAGE"))
	fmt.Println(theme.Faint.Render("  jvx <command> [arguments] [--verbose]"))
	fmt.Println()

	commands := []struct{ category, name, desc string }{
		{"RESOLUTION", "locate [version]", "Find the JDK and boot classpath for a target version"},
		{"RESOLUTION", "configure", "Point the compile tasks in jvx.toml at the target JDK"},
		{"RESOLUTION", "providers <version>", "Show what each discovery strategy finds"},
		{"INSTALLATIONS", "list", "List JDKs in the search paths"},
		{"INSTALLATIONS", "add-path <dir>", "Add a directory to scan for JDKs"},
		{"INSTALLATIONS", "remove-path [dir]", "Remove a directory from the search paths"},
		{"INSTALLATIONS", "list-paths", "Show all search paths (standard + custom)"},
		{"OTHER", "doctor", "Run diagnostics on your Java environment"},
		{"OTHER", "update", "Check for and install updates"},
		{"OTHER", "version", "Show version information"},
		{"OTHER", "help", "Show this help message"},
	}

	category := ""
	for _, c := range commands {
		if c.category != category {
			if category != "" {
				fmt.Println()
			}
			category = c.category
			fmt.Println(theme.Subtitle.Render(category))
		}
		fmt.Printf("  %s %s\n", theme.CommandStyle.Width(22).Render(c.name), theme.Faint.Render(c.desc))
	}
	fmt.Println()

	fmt.Println(theme.Title.Render("EXAMPLES"))
	fmt.Println("  " + theme.Code.Render("jvx locate 1.8") + "                 # JDK 8 home and rt.jar")
	fmt.Println("  " + theme.Code.Render("jvx locate 1.8 -q --running 17") + " # rt.jar path only, for scripts")
	fmt.Println("  " + theme.Code.Render("jvx configure --json") + "           # Configure tasks from jvx.toml")
	fmt.Println()

	fmt.Println(theme.InfoBox.Render("JDK homes are read from JDK_1_N (Java ≤ 8) or JDK_N (Java 9+)\nbefore the default search paths are scanned."))
}
