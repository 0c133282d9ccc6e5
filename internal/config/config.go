// Package config loads and saves the cppkit.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goplus/cppkit/pkgs/msvc"
	"gopkg.in/yaml.v3"
)

// FileName is the project file name at the project root.
const FileName = "cppkit.yaml"

// Project is the content of cppkit.yaml.
type Project struct {
	Name        string    `yaml:"name"`
	Version     string    `yaml:"version,omitempty"`
	Description string    `yaml:"description,omitempty"`
	CXXStandard int       `yaml:"cxx_standard,omitempty"`
	Build       Build     `yaml:"build,omitempty"`
	Framework   Framework `yaml:"framework,omitempty"`
}

// Build holds configure and build settings.
type Build struct {
	Dir  string `yaml:"dir,omitempty"`
	Type string `yaml:"type,omitempty"`
	// Generator is passed to cmake -G as is. It wins over VSVersion.
	Generator string `yaml:"generator,omitempty"`
	// VSVersion selects a Visual Studio generator by year, e.g. "2022".
	VSVersion string `yaml:"vs_version,omitempty"`
	// Toolchain is passed as CMAKE_TOOLCHAIN_FILE.
	Toolchain string `yaml:"toolchain,omitempty"`
	// InstallDir is the install prefix used by `cppkit build --install`.
	InstallDir string `yaml:"install_dir,omitempty"`
	// PrefixPaths are installed dependencies made visible to cmake and the
	// compiler (include/, lib/, lib/pkgconfig/ below each).
	PrefixPaths []string `yaml:"prefix_paths,omitempty"`
	// Defines are passed as -D<key>:STRING=<value>.
	Defines map[string]string `yaml:"defines,omitempty"`
	// Options are passed as -D<key>:BOOL=ON/OFF.
	Options map[string]bool `yaml:"options,omitempty"`
}

// Framework is an external repository cloned into the project.
type Framework struct {
	URL string `yaml:"url,omitempty"`
	Ref string `yaml:"ref,omitempty"`
}

// validVersion matches the VERSION argument of cmake's project().
// An empty version is allowed.
var validVersion = regexp.MustCompile(`^(\d+(\.\d+){0,3})?$`)

// Defaults returns the settings used when cppkit.yaml is absent.
func Defaults() *Project {
	return &Project{
		Version:     "0.1.0",
		CXXStandard: 17,
		Build: Build{
			Dir:  "build",
			Type: "Release",
		},
	}
}

// Load reads cppkit.yaml from dir. A missing file yields Defaults with
// Name set to the directory name.
func Load(dir string) (*Project, error) {
	p := Defaults()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if abs, err := filepath.Abs(dir); err == nil {
				p.Name = filepath.Base(abs)
			}
			return p, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", FileName, err)
	}
	return p, nil
}

// Validate checks field values.
func (p *Project) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if !validVersion.MatchString(p.Version) {
		return fmt.Errorf("invalid version %q (want up to four dot-separated numbers)", p.Version)
	}
	if strings.ContainsAny(p.Description, "\r\n") {
		return errors.New("description must be a single line")
	}
	if p.Build.VSVersion != "" && !msvc.IsSupported(p.Build.VSVersion) {
		return &msvc.InvalidVersionError{Requested: p.Build.VSVersion, Supported: msvc.Years()}
	}
	switch p.CXXStandard {
	case 0, 11, 14, 17, 20, 23, 26:
	default:
		return fmt.Errorf("unsupported cxx_standard %d", p.CXXStandard)
	}
	return nil
}

// Save writes p to dir/cppkit.yaml.
func (p *Project) Save(dir string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, FileName), data, 0644)
}

// BuildDir returns the build directory resolved against the project root.
func (p *Project) BuildDir(root string) string {
	dir := p.Build.Dir
	if dir == "" {
		dir = "build"
	}
	return resolve(root, dir)
}

// InstallDir returns the install prefix resolved against the project
// root, defaulting to <root>/install.
func (p *Project) InstallDir(root string) string {
	dir := p.Build.InstallDir
	if dir == "" {
		dir = "install"
	}
	return resolve(root, dir)
}

// ToolchainFile returns the toolchain file resolved against the project
// root, or "" when none is set.
func (p *Project) ToolchainFile(root string) string {
	if p.Build.Toolchain == "" {
		return ""
	}
	return resolve(root, p.Build.Toolchain)
}

// Prefixes returns PrefixPaths resolved against the project root.
func (p *Project) Prefixes(root string) []string {
	dirs := make([]string, 0, len(p.Build.PrefixPaths))
	for _, dir := range p.Build.PrefixPaths {
		dirs = append(dirs, resolve(root, dir))
	}
	return dirs
}

func resolve(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}
