package graph

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/google/pprof/profile"
)

// The aggregation below follows pprof's own graph builder (internal/graph in
// github.com/google/pprof), which is not importable. Unlike pprof it only keeps
// one node per function, since sortbench reports which sorting routine the CPU
// time went to, not which line.

// Graph is the set of functions seen in a CPU profile, hottest first.
type Graph struct {
	Nodes Nodes
	// Total is the summed sample weight of the profile.
	Total int64
	// Unit is the unit of the sample values, "nanoseconds" for CPU profiles.
	Unit string
}

// Node is one function of the profile.
type Node struct {
	Info NodeInfo
	// Flat is the weight of samples where the function was on top of the stack,
	// Cum the weight of samples where it appeared anywhere.
	Flat, Cum int64
}

// NodeInfo identifies a function.
type NodeInfo struct {
	Name, File string
	StartLine  int
}

type Nodes []*Node

type NodeMap map[NodeInfo]*Node

// FromProfile attributes every sample of prof to the functions on its stack.
// The last sample value is used as the weight, which for Go CPU profiles is
// the sampled CPU time.
func FromProfile(prof *profile.Profile) *Graph {
	valueIndex := len(prof.SampleType) - 1
	g := &Graph{}
	if valueIndex >= 0 {
		g.Unit = prof.SampleType[valueIndex].Unit
	}

	nm := make(NodeMap)
	seen := make(map[*Node]bool)
	for _, sample := range prof.Sample {
		if valueIndex < 0 || valueIndex >= len(sample.Value) {
			continue
		}
		w := sample.Value[valueIndex]
		if w == 0 {
			continue
		}
		g.Total += w
		for k := range seen {
			delete(seen, k)
		}

		// Location[0] is the leaf. Inlined frames are listed callee first
		// within a location, so the first line of the first location is where
		// the time was spent.
		leaf := true
		for _, loc := range sample.Location {
			for _, line := range loc.Line {
				n := nm.FindOrInsert(line)
				if n == nil {
					continue
				}
				if leaf {
					n.Flat += w
					leaf = false
				}
				// recursion must not count the same sample twice
				if !seen[n] {
					seen[n] = true
					n.Cum += w
				}
			}
		}
	}

	g.Nodes = nm.Nodes()
	sortNodes(g.Nodes)
	return g
}

// FindOrInsert returns the node for line's function, creating it when needed.
// Lines without function information are dropped.
func (nm NodeMap) FindOrInsert(line profile.Line) *Node {
	if line.Function == nil {
		return nil
	}
	info := NodeInfo{
		Name:      line.Function.Name,
		StartLine: int(line.Function.StartLine),
	}
	if fname := line.Function.Filename; fname != "" {
		info.File = filepath.Clean(fname)
	}
	if n, ok := nm[info]; ok {
		return n
	}
	n := &Node{Info: info}
	nm[info] = n
	return n
}

func (nm NodeMap) Nodes() Nodes {
	nodes := make(Nodes, 0, len(nm))
	for _, n := range nm {
		nodes = append(nodes, n)
	}
	return nodes
}

// Matching returns the nodes whose function name matches re, keeping the
// graph's order.
func (g *Graph) Matching(re *regexp.Regexp) Nodes {
	nodes := make(Nodes, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if re.MatchString(n.Info.Name) {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Top returns at most n of the hottest nodes.
func (ns Nodes) Top(n int) Nodes {
	if n < 0 || n > len(ns) {
		return ns
	}
	return ns[:n]
}

// Duration converts a weight to a time.Duration when the profile is measured
// in nanoseconds, and returns 0 otherwise.
func (g *Graph) Duration(w int64) time.Duration {
	if g.Unit != "nanoseconds" {
		return 0
	}
	return time.Duration(w)
}

// Percent is w as a share of the graph total.
func (g *Graph) Percent(w int64) float64 {
	if g.Total == 0 {
		return 0
	}
	return 100 * float64(w) / float64(g.Total)
}

type nodeSorter struct {
	rs   Nodes
	less func(l, r *Node) bool
}

func (s nodeSorter) Len() int           { return len(s.rs) }
func (s nodeSorter) Swap(i, j int)      { s.rs[i], s.rs[j] = s.rs[j], s.rs[i] }
func (s nodeSorter) Less(i, j int) bool { return s.less(s.rs[i], s.rs[j]) }

// sortNodes orders by cumulative weight, then flat weight, then name.
func sortNodes(ns Nodes) {
	sort.Sort(nodeSorter{ns, func(l, r *Node) bool {
		if iv, jv := abs64(l.Cum), abs64(r.Cum); iv != jv {
			return iv > jv
		}
		if iv, jv := abs64(l.Flat), abs64(r.Flat); iv != jv {
			return iv > jv
		}
		if l.Info.Name != r.Info.Name {
			return l.Info.Name < r.Info.Name
		}
		return fmt.Sprint(l.Info) < fmt.Sprint(r.Info)
	}})
}

func abs64(i int64) int64 {
	if i < 0 {
		return -i
	}
	return i
}
