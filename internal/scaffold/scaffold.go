// Package scaffold creates a new CMake C++ project tree.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/goplus/cppkit/internal/config"
	"github.com/goplus/cppkit/internal/vcs"
	"github.com/goplus/cppkit/pkgs/fileapi"
)

// ErrNotEmpty is returned when the target directory already has content.
var ErrNotEmpty = errors.New("scaffold: directory is not empty")

var validName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Options controls what Generate does besides writing files.
type Options struct {
	// VCS clones the framework and initializes the repository.
	// Nil skips both.
	VCS vcs.VCS
	// GitInit runs VCS.Init on the new project.
	GitInit bool
}

type templateData struct {
	*config.Project
	FrameworkDir string
}

// Generate writes a project described by p into dir.
func Generate(ctx context.Context, dir string, p *config.Project, opts Options) error {
	if !validName.MatchString(p.Name) {
		return fmt.Errorf("scaffold: invalid project name %q", p.Name)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("scaffold: %w", err)
	}
	if err := ensureEmpty(dir); err != nil {
		return err
	}

	data := templateData{Project: p}
	if p.Framework.URL != "" {
		data.FrameworkDir = "external/" + frameworkName(p.Framework.URL)
	}

	files := []struct {
		name string
		tmpl *template.Template
	}{
		{"CMakeLists.txt", cmakeListsTmpl},
		{filepath.Join("src", "main.cpp"), mainTmpl},
		{".gitignore", gitignoreTmpl},
	}
	for _, f := range files {
		if err := render(filepath.Join(dir, f.name), f.tmpl, data); err != nil {
			return err
		}
	}
	if err := p.Save(dir); err != nil {
		return fmt.Errorf("scaffold: %w", err)
	}
	if err := fileapi.WriteQuery(p.BuildDir(dir)); err != nil {
		return fmt.Errorf("scaffold: %w", err)
	}

	if opts.VCS == nil {
		return nil
	}
	if opts.GitInit {
		if err := opts.VCS.Init(ctx, dir); err != nil {
			return fmt.Errorf("scaffold: %w", err)
		}
	}
	if data.FrameworkDir != "" {
		dest := filepath.Join(dir, filepath.FromSlash(data.FrameworkDir))
		if err := opts.VCS.Clone(ctx, p.Framework.URL, p.Framework.Ref, dest); err != nil {
			return fmt.Errorf("scaffold: clone %s: %w", p.Framework.URL, err)
		}
	}
	return nil
}

func ensureEmpty(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return os.MkdirAll(dir, 0755)
		}
		return err
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s", ErrNotEmpty, dir)
	}
	return nil
}

func render(name string, tmpl *template.Template, data templateData) error {
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(f, data); err != nil {
		f.Close()
		return fmt.Errorf("scaffold: render %s: %w", filepath.Base(name), err)
	}
	return f.Close()
}

// frameworkName derives a directory name from a repository URL.
func frameworkName(url string) string {
	url = strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	return path.Base(filepath.ToSlash(url))
}
