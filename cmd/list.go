package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"sortbench/algorithms"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available algorithms in run order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, a := range algorithms.All(rand.New(rand.NewSource(1))) {
			note := ""
			if a.Tiny {
				note = " (tiny inputs only)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s%s\n", a.Key, a.Name, note)
		}
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
}
