package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sortbench/cmd/util"
)

var gobenchCmd = &cobra.Command{
	Use:   "gobench",
	Short: "Run the algorithms' Go benchmarks with go test and summarise them",
	Long: `gobench runs "go test -bench" on the algorithms package of the module in
--project and prints the average ns/op of every benchmark. This needs the Go
toolchain on PATH.`,
	Aliases: []string{"gb"},
	Args:    cobra.NoArgs,
	RunE:    gobench,
}

var (
	benchName   string
	benchCount  int
	projectPath string
)

func init() {
	gobenchCmd.Flags().StringVarP(&benchName, "benchname", "b", ".", "The pattern of the benchmarks to run")
	gobenchCmd.Flags().IntVarP(&benchCount, "count", "c", 1, "The number of times to run each benchmark")
	gobenchCmd.Flags().StringVarP(&projectPath, "project", "p", ".", "The path to the module root")
	RootCmd.AddCommand(gobenchCmd)
}

func gobench(cmd *cobra.Command, args []string) error {
	modPath, err := util.ModulePath(projectPath)
	if err != nil {
		return err
	}
	pkg := modPath + "/algorithms"
	log.Infof("running benchmarks of %s", pkg)

	out, err := util.RunGoBench(projectPath, pkg, benchName, benchCount)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), out)
		return err
	}
	summaries, err := util.ParseBench(out)
	if err != nil {
		return err
	}
	for _, s := range summaries {
		fmt.Fprintf(cmd.OutOrStdout(), "%-40s %14.0f ns/op %8d B/op %6d allocs/op (%d runs)\n",
			s.Name, s.NsPerOp, s.BytesPerOp, s.AllocsPerOp, s.Runs)
	}
	return nil
}
