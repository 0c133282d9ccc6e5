package fileapi

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ReadCodeModel loads the code model referenced by idx from replyDir.
func ReadCodeModel(replyDir string, idx *Index) (*CodeModel, error) {
	ref, err := idx.Object(CodeModelKind)
	if err != nil {
		if errors.Is(err, ErrNoObject) {
			return nil, fmt.Errorf("%w: %w", ErrNoCodeModel, err)
		}
		return nil, err
	}
	path := filepath.Join(replyDir, filepath.FromSlash(ref.JSONFile))
	cm := &CodeModel{}
	if err := readJSON(path, cm); err != nil {
		return nil, fmt.Errorf("code model: %w", err)
	}
	if cm.Version.Major != CodeModelMajor {
		return nil, &SchemaVersionError{Kind: "codemodel", Major: cm.Version.Major, Minor: cm.Version.Minor}
	}
	if cm.Paths.Build == "" {
		return nil, fmt.Errorf("%w: %s: paths.build is empty", ErrMalformed, path)
	}
	for _, cfg := range cm.Configurations {
		for _, t := range cfg.Targets {
			if t.JSONFile == "" {
				return nil, fmt.Errorf("%w: %s: target %q has no jsonFile", ErrMalformed, path, t.ID)
			}
		}
	}
	return cm, nil
}

// ConfigNames lists the configuration names in order.
func (cm *CodeModel) ConfigNames() []string {
	names := make([]string, 0, len(cm.Configurations))
	for _, cfg := range cm.Configurations {
		names = append(names, cfg.Name)
	}
	return names
}
