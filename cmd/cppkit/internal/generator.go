package internal

import (
	"fmt"

	"github.com/goplus/cppkit/pkgs/msvc"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var generatorVS string

var generatorCmd = &cobra.Command{
	Use:   "generator",
	Short: "Print the Visual Studio CMake generator to use",
	Long: `Generator prints the CMake generator for the requested Visual Studio
version, or for the newest installed one when --vs is omitted.`,
	Args: cobra.NoArgs,
	RunE: runGenerator,
}

func init() {
	generatorCmd.Flags().StringVar(&generatorVS, "vs", "", "Visual Studio version (e.g. 2022)")
	rootCmd.AddCommand(generatorCmd)
}

func runGenerator(cmd *cobra.Command, args []string) error {
	res, err := msvc.NewResolver(nil).Resolve(cmd.Context(), generatorVS)
	if err != nil {
		return err
	}
	logWarnings(res.Warnings, res.Source == msvc.SourceFallback)
	log.Debugf("generator from %s", res.Source)
	fmt.Fprintln(cmd.OutOrStdout(), res.Generator)
	return nil
}

// logWarnings prints detection warnings. Strategy failures that still
// led to a result are only interesting in verbose mode.
func logWarnings(warnings []string, fellBack bool) {
	for i, w := range warnings {
		if fellBack && i == len(warnings)-1 {
			log.Warn(w)
			continue
		}
		log.Debug(w)
	}
}
