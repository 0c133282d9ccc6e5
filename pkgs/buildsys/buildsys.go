package buildsys

import (
	"context"

	"github.com/goplus/cppkit/pkgs/fileapi"
)

// BuildSystem captures the lifecycle of a build helper.
// Implementations add their own extras.
type BuildSystem interface {
	// Use makes an installed dependency rooted at dir visible to the build.
	Use(dir string)

	// Basic paths.
	Source(dir string)
	InstallDir(dir string)

	// Environment helper.
	Env(key, val string)

	// Lifecycle.
	Configure(ctx context.Context, args ...string) error
	Build(ctx context.Context, args ...string) error
	Install(ctx context.Context, args ...string) error

	// Where artifacts land.
	OutputDir() string

	// Artifacts lists the executables and libraries the build produces.
	Artifacts() ([]fileapi.Artifact, error)
}
