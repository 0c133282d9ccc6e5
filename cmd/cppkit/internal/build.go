package internal

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/goplus/cppkit/internal/config"
	"github.com/goplus/cppkit/internal/report"
	"github.com/goplus/cppkit/pkgs/buildsys"
	"github.com/goplus/cppkit/pkgs/buildsys/cmake"
	"github.com/goplus/cppkit/pkgs/msvc"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	buildConfig        string
	buildVS            string
	buildGenerator     string
	buildConfigureOnly bool
	buildInstall       bool
)

var buildCmd = &cobra.Command{
	Use:   "build [projectDir]",
	Short: "Configure and build a project, then list its artifacts",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildConfig, "config", "c", "", "Build configuration (default from cppkit.yaml)")
	buildCmd.Flags().StringVar(&buildVS, "vs", "", "Visual Studio version (e.g. 2022)")
	buildCmd.Flags().StringVarP(&buildGenerator, "generator", "G", "", "CMake generator, overrides --vs")
	buildCmd.Flags().BoolVar(&buildConfigureOnly, "configure-only", false, "Stop after the configure step")
	buildCmd.Flags().BoolVar(&buildInstall, "install", false, "Install into build.install_dir after building")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	p, err := config.Load(root)
	if err != nil {
		return err
	}
	if buildConfig != "" {
		p.Build.Type = buildConfig
	}
	if buildConfigureOnly && buildInstall {
		return fmt.Errorf("--install needs a build, drop --configure-only")
	}

	ctx := cmd.Context()
	generator, err := pickGenerator(ctx, p, buildGenerator, buildVS, runtime.GOOS)
	if err != nil {
		return err
	}
	c := newDriver(root, p, generator)
	if !verbose {
		c.SetOutput(io.Discard, os.Stderr)
	}

	var bs buildsys.BuildSystem = c
	log.Infof("configuring %s in %s", p.Name, c.BuildDir())
	if err := bs.Configure(ctx); err != nil {
		return fmt.Errorf("configure %s: %w", p.Name, err)
	}
	if !buildConfigureOnly {
		log.Infof("building %s (%s)", p.Name, p.Build.Type)
		if err := bs.Build(ctx); err != nil {
			return fmt.Errorf("build %s: %w", p.Name, err)
		}
	}
	if buildInstall {
		log.Infof("installing %s into %s", p.Name, bs.OutputDir())
		if err := bs.Install(ctx); err != nil {
			return fmt.Errorf("install %s: %w", p.Name, err)
		}
	}

	artifacts, err := bs.Artifacts()
	if err != nil {
		return explain(err, c.BuildDir())
	}
	report.Artifacts(cmd.OutOrStdout(), artifacts)
	return nil
}

// newDriver sets up cmake from the project's build settings.
func newDriver(root string, p *config.Project, generator string) *cmake.CMake {
	c := cmake.New(root, p.BuildDir(root))
	c.BuildType(p.Build.Type)
	if generator != "" {
		c.Generator(generator)
	}
	if tc := p.ToolchainFile(root); tc != "" {
		c.Toolchain(tc)
	}
	if buildInstall || p.Build.InstallDir != "" {
		c.InstallDir(p.InstallDir(root))
	}
	for k, v := range p.Build.Defines {
		c.Define(k, v)
	}
	for k, v := range p.Build.Options {
		c.DefineBool(k, v)
	}
	for _, dir := range p.Prefixes(root) {
		if _, err := os.Stat(dir); err != nil {
			log.Warnf("prefix path %s: %v", dir, err)
			continue
		}
		c.Use(dir)
	}
	return c
}

// pickGenerator returns the -G value: an explicit generator, then the
// configured one, then a Visual Studio one when a version was asked for
// or the host is Windows. Elsewhere cmake picks its own default.
func pickGenerator(ctx context.Context, p *config.Project, generator, vs, goos string) (string, error) {
	if generator != "" {
		return generator, nil
	}
	if p.Build.Generator != "" {
		return p.Build.Generator, nil
	}
	requested := vs
	if requested == "" {
		requested = p.Build.VSVersion
	}
	if requested == "" && goos != "windows" {
		return "", nil
	}
	res, err := msvc.NewResolver(msvc.NewDetector(msvc.WithGOOS(goos))).Resolve(ctx, requested)
	if err != nil {
		return "", err
	}
	logWarnings(res.Warnings, res.Source == msvc.SourceFallback)
	return res.Generator, nil
}
