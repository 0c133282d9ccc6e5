package fileapi

import (
	"fmt"
	"path/filepath"
)

// Option configures artifact extraction.
type Option func(*options)

type options struct {
	config string
}

// WithConfig restricts extraction to the named configuration.
// An empty name keeps every configuration.
func WithConfig(name string) Option {
	return func(o *options) {
		o.config = name
	}
}

// artifactTypes are the target types that produce something to run or link.
var artifactTypes = map[string]bool{
	Executable:    true,
	StaticLibrary: true,
	SharedLibrary: true,
}

// ReadTarget reads the target document of ref from replyDir.
func ReadTarget(replyDir string, ref TargetRef) (*Target, error) {
	path := filepath.Join(replyDir, filepath.FromSlash(ref.JSONFile))
	t := &Target{}
	if err := readJSON(path, t); err != nil {
		return nil, &TargetError{ID: ref.ID, File: ref.JSONFile, Err: err}
	}
	if t.Name == "" || t.Type == "" {
		return nil, &TargetError{ID: ref.ID, File: ref.JSONFile, Err: fmt.Errorf("%w: name and type are required", ErrMalformed)}
	}
	return t, nil
}

// ExtractArtifacts returns one Artifact per declared output of every
// executable, static library and shared library target in cm. Output
// follows configuration order, then target order. Any unreadable target
// fails the whole call.
func ExtractArtifacts(replyDir string, cm *CodeModel, opts ...Option) ([]Artifact, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	configs := cm.Configurations
	if o.config != "" {
		configs = nil
		for _, cfg := range cm.Configurations {
			if cfg.Name == o.config {
				configs = append(configs, cfg)
			}
		}
		if len(configs) == 0 {
			return nil, &ConfigNotFoundError{Name: o.config, Available: cm.ConfigNames()}
		}
	}

	buildRoot := filepath.FromSlash(cm.Paths.Build)
	artifacts := []Artifact{}
	for _, cfg := range configs {
		for _, ref := range cfg.Targets {
			t, err := ReadTarget(replyDir, ref)
			if err != nil {
				return nil, err
			}
			if !artifactTypes[t.Type] {
				continue
			}
			for _, a := range t.Artifacts {
				if a.Path == "" {
					return nil, &TargetError{ID: ref.ID, File: ref.JSONFile, Err: fmt.Errorf("%w: empty artifact path", ErrMalformed)}
				}
				artifacts = append(artifacts, Artifact{
					Name:   t.Name,
					Type:   t.Type,
					Path:   resolvePath(buildRoot, a.Path),
					Config: cfg.Name,
				})
			}
		}
	}
	return artifacts, nil
}

// resolvePath roots p at buildRoot unless cmake already reported it
// absolute (outputs placed outside the build tree).
func resolvePath(buildRoot, p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(buildRoot, p)
}

// GroupByType groups artifacts by target type, keeping their order.
func GroupByType(artifacts []Artifact) map[string][]Artifact {
	groups := make(map[string][]Artifact)
	for _, a := range artifacts {
		groups[a.Type] = append(groups[a.Type], a)
	}
	return groups
}
