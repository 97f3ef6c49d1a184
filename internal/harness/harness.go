package harness

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Names of the generated artifacts, relative to the harness directory.
const (
	FeatureListFile = "feature_list.json"
	ProgressFile    = "progress.txt"
	InitScriptFile  = "init.sh"
)

// HarnessRoot is the directory under the project path that holds all
// harnesses, one subdirectory per feature name.
const HarnessRoot = "long_running"

// initScriptMode is applied explicitly after writing init.sh so a re-run
// against an existing file still ends with the executable bit set.
const initScriptMode = os.FileMode(0o755)

// Clock supplies the timestamps embedded in the generated artifacts.
// Injecting it keeps rendering deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// Options are the inputs to a single initialization run.
type Options struct {
	ProjectPath string // project directory, created if missing
	FeatureName string // single path segment under long_running/
	Description string // free-text project description
}

// Result describes what an initialization run did.
type Result struct {
	ProjectName       string   `json:"project_name"`
	ProjectPath       string   `json:"project_path"`
	HarnessDir        string   `json:"harness_dir"`
	CreatedProjectDir bool     `json:"created_project_dir"`
	Files             []string `json:"files"`
}

// NameError reports a feature name that cannot be used as a harness
// directory segment.
type NameError struct {
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("invalid feature name %q: %s", e.Name, e.Reason)
}

// InitError reports a filesystem operation that failed during
// initialization. Op is one of "resolve", "mkdir", "write", "chmod".
type InitError struct {
	Op   string
	Path string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// ValidateFeatureName checks that name is usable as a single directory
// segment under long_running/. It runs before any filesystem side effect.
func ValidateFeatureName(name string) error {
	switch {
	case name == "":
		return &NameError{Name: name, Reason: "must not be empty"}
	case name == "." || name == "..":
		return &NameError{Name: name, Reason: "must not be a relative path element"}
	case strings.ContainsAny(name, `/\`):
		return &NameError{Name: name, Reason: "must not contain a path separator"}
	}
	return nil
}

// Initializer renders and writes the harness artifacts.
type Initializer struct {
	clock Clock
}

// NewInitializer creates an Initializer. A nil clock defaults to the system
// clock.
func NewInitializer(clock Clock) *Initializer {
	if clock == nil {
		clock = systemClock{}
	}
	return &Initializer{clock: clock}
}

// Initialize creates the harness directory for opts and writes the three
// artifacts, overwriting any previous contents. All three artifacts share a
// single clock reading.
//
// Errors abort at the point of failure; files already written are left in
// place.
func (in *Initializer) Initialize(opts Options) (*Result, error) {
	if err := ValidateFeatureName(opts.FeatureName); err != nil {
		return nil, err
	}

	projectPath, err := filepath.Abs(opts.ProjectPath)
	if err != nil {
		return nil, &InitError{Op: "resolve", Path: opts.ProjectPath, Err: err}
	}

	createdProject := false
	if _, statErr := os.Stat(projectPath); os.IsNotExist(statErr) {
		if err := os.MkdirAll(projectPath, 0o755); err != nil {
			return nil, &InitError{Op: "mkdir", Path: projectPath, Err: err}
		}
		createdProject = true
		slog.Debug("created project directory", "path", projectPath)
	}

	harnessDir := filepath.Join(projectPath, HarnessRoot, opts.FeatureName)
	if err := os.MkdirAll(harnessDir, 0o755); err != nil {
		return nil, &InitError{Op: "mkdir", Path: harnessDir, Err: err}
	}

	now := in.clock.Now()
	projectName := filepath.Base(projectPath)

	featureListPath := filepath.Join(harnessDir, FeatureListFile)
	featureList, err := RenderFeatureList(SeedFeatureList(projectName, opts.Description, now))
	if err != nil {
		return nil, &InitError{Op: "write", Path: featureListPath, Err: err}
	}
	if err := os.WriteFile(featureListPath, featureList, 0o644); err != nil {
		return nil, &InitError{Op: "write", Path: featureListPath, Err: err}
	}
	slog.Debug("wrote feature list", "path", featureListPath)

	progressPath := filepath.Join(harnessDir, ProgressFile)
	progress, err := RenderProgress(projectName, opts.Description, now)
	if err != nil {
		return nil, &InitError{Op: "write", Path: progressPath, Err: err}
	}
	if err := os.WriteFile(progressPath, progress, 0o644); err != nil {
		return nil, &InitError{Op: "write", Path: progressPath, Err: err}
	}
	slog.Debug("wrote progress log", "path", progressPath)

	initPath := filepath.Join(harnessDir, InitScriptFile)
	if err := os.WriteFile(initPath, []byte(InitScript), initScriptMode); err != nil {
		return nil, &InitError{Op: "write", Path: initPath, Err: err}
	}
	// WriteFile only applies the mode to newly created files; chmod covers
	// the overwrite case.
	if err := os.Chmod(initPath, initScriptMode); err != nil {
		return nil, &InitError{Op: "chmod", Path: initPath, Err: err}
	}
	slog.Debug("wrote init script", "path", initPath)

	return &Result{
		ProjectName:       projectName,
		ProjectPath:       projectPath,
		HarnessDir:        harnessDir,
		CreatedProjectDir: createdProject,
		Files:             []string{featureListPath, progressPath, initPath},
	}, nil
}
