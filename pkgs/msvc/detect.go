package msvc

import (
	"context"
	"path/filepath"
	"runtime"
	"sort"
)

// Instance is one installed Visual Studio found on the host.
type Instance struct {
	Version
	InstallPath string
	DisplayName string
	RawVersion  string // installationVersion as reported, e.g. "17.8.34330.188"
	Source      string // strategy that found it
}

// Detection is the result of a detection run. Warnings describe
// strategies that failed; they never make the run fail.
type Detection struct {
	Instances []Instance
	Warnings  []string
}

// Strategy is one way of finding installations. Detect returns what it
// found plus warnings for anything that went wrong along the way.
type Strategy interface {
	Name() string
	Detect(ctx context.Context) ([]Instance, []string)
}

// Detector runs its strategies in order and stops at the first that
// finds something.
type Detector struct {
	goos       string
	strategies []Strategy
}

type detectorConfig struct {
	goos        string
	runner      Runner
	locatorPath string
	roots       []string
}

// DetectorOption configures a Detector.
type DetectorOption func(*detectorConfig)

// WithRunner sets the process runner used for the installation locator.
func WithRunner(r Runner) DetectorOption {
	return func(c *detectorConfig) {
		c.runner = r
	}
}

// WithLocatorPath sets the path of vswhere.exe.
func WithLocatorPath(path string) DetectorOption {
	return func(c *detectorConfig) {
		c.locatorPath = path
	}
}

// WithProbeRoots sets the Program Files directories probed when the
// locator finds nothing. No roots disables probing.
func WithProbeRoots(roots ...string) DetectorOption {
	return func(c *detectorConfig) {
		c.roots = append([]string{}, roots...)
	}
}

// WithGOOS overrides the host operating system.
func WithGOOS(goos string) DetectorOption {
	return func(c *detectorConfig) {
		c.goos = goos
	}
}

// NewDetector returns a Detector that asks vswhere first and falls back
// to probing well-known installation directories.
func NewDetector(opts ...DetectorOption) *Detector {
	c := &detectorConfig{
		goos:   runtime.GOOS,
		runner: execRunner{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.locatorPath == "" {
		c.locatorPath = defaultLocatorPath()
	}
	if c.roots == nil {
		c.roots = defaultProbeRoots()
	}
	return &Detector{
		goos: c.goos,
		strategies: []Strategy{
			&locatorStrategy{path: c.locatorPath, runner: c.runner},
			&probeStrategy{roots: c.roots},
		},
	}
}

// Detect lists installed releases, newest first, at most one per release.
// Hosts other than Windows have no installations.
func (d *Detector) Detect(ctx context.Context) Detection {
	var det Detection
	if d.goos != "windows" {
		return det
	}
	for _, s := range d.strategies {
		found, warnings := s.Detect(ctx)
		det.Warnings = append(det.Warnings, warnings...)
		if len(found) > 0 {
			sort.SliceStable(found, func(i, j int) bool {
				return catalogRank(found[i].Year) < catalogRank(found[j].Year)
			})
			det.Instances = found
			return det
		}
	}
	return det
}

// Latest returns the newest installed release.
func (d *Detector) Latest(ctx context.Context) (Instance, bool) {
	det := d.Detect(ctx)
	if len(det.Instances) == 0 {
		return Instance{}, false
	}
	return det.Instances[0], true
}

// DetectInstalled lists installed releases on this host, newest first.
func DetectInstalled(ctx context.Context) []Instance {
	return NewDetector().Detect(ctx).Instances
}

// Latest returns the newest release installed on this host.
func Latest(ctx context.Context) (Instance, bool) {
	return NewDetector().Latest(ctx)
}

func defaultLocatorPath() string {
	dir := programFilesX86()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "Microsoft Visual Studio", "Installer", "vswhere.exe")
}

func defaultProbeRoots() []string {
	var roots []string
	seen := make(map[string]bool)
	for _, dir := range []string{programFiles(), programFilesX86()} {
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		roots = append(roots, dir)
	}
	return roots
}
