package msvc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// editions are probed in this order; the first installed one wins.
var editions = []string{"Enterprise", "Professional", "Community", "BuildTools", "Preview"}

// markerPath must exist below an edition directory for it to count as an
// installation with the C++ toolset.
var markerPath = filepath.Join("VC", "Tools", "MSVC")

// probeStrategy looks for <root>/Microsoft Visual Studio/<year>/<edition>.
type probeStrategy struct {
	roots []string
}

func (p *probeStrategy) Name() string { return "probe" }

func (p *probeStrategy) Detect(ctx context.Context) ([]Instance, []string) {
	var instances []Instance
	var warnings []string
	for _, v := range versions {
		if err := ctx.Err(); err != nil {
			warnings = append(warnings, fmt.Sprintf("probe: %v", err))
			break
		}
		inst, ok, warns := p.find(v)
		warnings = append(warnings, warns...)
		if ok {
			instances = append(instances, inst)
		}
	}
	return instances, warnings
}

func (p *probeStrategy) find(v Version) (Instance, bool, []string) {
	var warnings []string
	for _, root := range p.roots {
		for _, edition := range editions {
			dir := filepath.Join(root, "Microsoft Visual Studio", v.Year, edition)
			ok, err := isDir(dir)
			if err == nil && ok {
				ok, err = isDir(filepath.Join(dir, markerPath))
			}
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("probe: %v", err))
				continue
			}
			if !ok {
				continue
			}
			return Instance{
				Version:     v,
				InstallPath: dir,
				DisplayName: fmt.Sprintf("Visual Studio %s %s", edition, v.Year),
				Source:      "probe",
			}, true, warnings
		}
	}
	return Instance{}, false, warnings
}

// isDir reports whether path is a directory. A missing path is not an error.
func isDir(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return fi.IsDir(), nil
}
