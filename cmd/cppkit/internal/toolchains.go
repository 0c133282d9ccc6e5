package internal

import (
	"github.com/goplus/cppkit/internal/report"
	"github.com/goplus/cppkit/pkgs/msvc"
	"github.com/spf13/cobra"
)

var toolchainsCmd = &cobra.Command{
	Use:   "toolchains",
	Short: "List installed Visual Studio toolchains",
	Args:  cobra.NoArgs,
	RunE:  runToolchains,
}

func init() {
	rootCmd.AddCommand(toolchainsCmd)
}

func runToolchains(cmd *cobra.Command, args []string) error {
	det := msvc.NewDetector().Detect(cmd.Context())
	logWarnings(det.Warnings, false)
	report.Toolchains(cmd.OutOrStdout(), det.Instances)
	return nil
}
