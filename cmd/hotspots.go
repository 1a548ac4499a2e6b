package cmd

import (
	"regexp"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"sortbench/cmd/util"
	"sortbench/graph"
)

var hotspotsCmd = &cobra.Command{
	Use:   "hotspots <profile>",
	Short: "Show where the CPU time of a recorded profile went",
	Args:  cobra.ExactArgs(1),
	RunE:  hotspots,
}

var (
	hotspotsTop    int
	hotspotsFilter string
)

func init() {
	hotspotsCmd.Flags().IntVarP(&hotspotsTop, "top", "t", 10, "number of functions to show")
	hotspotsCmd.Flags().StringVarP(&hotspotsFilter, "filter", "f", util.SortFunctions.String(), "only show functions matching this regexp (empty shows all)")
	RootCmd.AddCommand(hotspotsCmd)
}

func hotspots(cmd *cobra.Command, args []string) error {
	var filter *regexp.Regexp
	if hotspotsFilter != "" {
		re, err := regexp.Compile(hotspotsFilter)
		if err != nil {
			return errors.Wrap(err, "invalid filter")
		}
		filter = re
	}
	g, prof, err := graph.Load(args[0])
	if err != nil {
		return err
	}
	log.Infof("profile covers %d samples over %d ns", len(prof.Sample), prof.DurationNanos)
	util.PrintHotspots(cmd.OutOrStdout(), g, filter, hotspotsTop)
	return nil
}
