package internal

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goplus/cppkit/internal/config"
	"github.com/goplus/cppkit/internal/report"
	"github.com/goplus/cppkit/pkgs/fileapi"
	"github.com/spf13/cobra"
)

var (
	artifactsConfig string
	artifactsJSON   bool
)

var artifactsCmd = &cobra.Command{
	Use:   "artifacts [buildDir]",
	Short: "List executables and libraries of a configured build",
	Long: `Artifacts reads the CMake File API reply of a build directory and lists
the executables, shared and static libraries it declares. Without an
argument the build directory of the project in the current directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runArtifacts,
}

func init() {
	artifactsCmd.Flags().StringVarP(&artifactsConfig, "config", "c", "", "Only list this configuration (e.g. Release)")
	artifactsCmd.Flags().BoolVar(&artifactsJSON, "json", false, "Print artifacts as JSON")
	rootCmd.AddCommand(artifactsCmd)
}

func runArtifacts(cmd *cobra.Command, args []string) error {
	var buildDir string
	if len(args) == 1 {
		buildDir = args[0]
	} else {
		p, err := config.Load(".")
		if err != nil {
			return err
		}
		buildDir = p.BuildDir(".")
	}

	artifacts, err := fileapi.ReadBuildArtifacts(buildDir, fileapi.WithConfig(artifactsConfig))
	if err != nil {
		return explain(err, buildDir)
	}
	if artifactsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(artifacts)
	}
	report.Artifacts(cmd.OutOrStdout(), artifacts)
	return nil
}

// explain adds the next step to configuration-state errors.
func explain(err error, buildDir string) error {
	switch {
	case errors.Is(err, fileapi.ErrNoReply), errors.Is(err, fileapi.ErrNoIndex), errors.Is(err, fileapi.ErrNoCodeModel):
		return fmt.Errorf("%w\nrun `cppkit build` (or configure %s with cmake) first", err, buildDir)
	}
	return err
}
