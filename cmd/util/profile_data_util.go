package util

import (
	"fmt"
	"io"
	"regexp"

	"sortbench/graph"
)

// SortFunctions matches the functions of the sorting routines in a profile.
var SortFunctions = regexp.MustCompile(`sortbench/algorithms\.`)

// PrintHotspots writes the top functions of g matching filter, hottest first.
// A nil filter keeps every function.
func PrintHotspots(w io.Writer, g *graph.Graph, filter *regexp.Regexp, top int) {
	nodes := g.Nodes
	if filter != nil {
		nodes = g.Matching(filter)
	}
	if len(nodes) == 0 {
		fmt.Fprintln(w, "No matching functions in profile")
		return
	}
	fmt.Fprintf(w, "%10s %7s %10s %7s  %s\n", "flat", "flat%", "cum", "cum%", "function")
	for _, n := range nodes.Top(top) {
		fmt.Fprintf(w, "%10s %6.2f%% %10s %6.2f%%  %s\n",
			weight(g, n.Flat), g.Percent(n.Flat),
			weight(g, n.Cum), g.Percent(n.Cum),
			n.Info.Name)
	}
}

func weight(g *graph.Graph, w int64) string {
	if d := g.Duration(w); d > 0 || w == 0 {
		return d.String()
	}
	return fmt.Sprint(w)
}
