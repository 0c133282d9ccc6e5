package internal

import (
	"fmt"
	"path/filepath"

	"github.com/goplus/cppkit/internal/config"
	"github.com/goplus/cppkit/internal/scaffold"
	"github.com/goplus/cppkit/internal/vcs"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	newDir          string
	newDescription  string
	newVersion      string
	newCXXStandard  int
	newVS           string
	newFramework    string
	newFrameworkRef string
	newNoGit        bool
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new CMake C++ project",
	Long: `New creates a project directory with CMakeLists.txt, a source stub,
.gitignore and cppkit.yaml, optionally clones a framework repository into
external/, and initializes a git repository.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	flags := newCmd.Flags()
	flags.StringVarP(&newDir, "dir", "d", "", "Target directory (default ./<name>)")
	flags.StringVar(&newDescription, "description", "", "Project description")
	flags.StringVar(&newVersion, "version", "0.1.0", "Project version")
	flags.IntVar(&newCXXStandard, "cxx", 17, "C++ standard")
	flags.StringVar(&newVS, "vs", "", "Visual Studio version recorded in cppkit.yaml (e.g. 2022)")
	flags.StringVar(&newFramework, "framework", "", "Git URL of a framework to clone into external/")
	flags.StringVar(&newFrameworkRef, "framework-ref", "", "Framework branch, tag or commit")
	flags.BoolVar(&newNoGit, "no-git", false, "Do not initialize a git repository")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	dir := newDir
	if dir == "" {
		dir = name
	}

	p := config.Defaults()
	p.Name = name
	p.Description = newDescription
	p.Version = newVersion
	p.CXXStandard = newCXXStandard
	p.Build.VSVersion = newVS
	p.Framework = config.Framework{URL: newFramework, Ref: newFrameworkRef}

	opts := scaffold.Options{GitInit: !newNoGit}
	if opts.GitInit || newFramework != "" {
		opts.VCS = vcs.NewGitVCS()
	}
	if err := scaffold.Generate(cmd.Context(), dir, p, opts); err != nil {
		return err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	log.Infof("created %s", abs)
	fmt.Fprintf(cmd.OutOrStdout(), "Next: cd %s && cppkit build\n", dir)
	return nil
}
