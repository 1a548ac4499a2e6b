package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"sortbench/algorithms"
)

var verifyCmd = &cobra.Command{
	Use:     "verify",
	Short:   "Check every algorithm against a fixed set of inputs",
	Aliases: []string{"v"},
	Args:    cobra.NoArgs,
	RunE:    runVerify,
}

var verifySeed int64

func init() {
	verifyCmd.Flags().Int64Var(&verifySeed, "seed", 1, "seed for the random source used by bogo sort")
	RootCmd.AddCommand(verifyCmd)
}

// Scenario is a named input every algorithm must sort.
type Scenario struct {
	Name  string
	Input []int
}

// Scenarios are the inputs checked by verify. Bogo sort only gets the ones
// short enough to finish.
var Scenarios = []Scenario{
	{"empty", []int{}},
	{"single", []int{42}},
	{"mixed", []int{5, 3, 8, 1, 9, 2}},
	{"duplicates", []int{2, 2, 1, 1}},
	{"sorted", []int{1, 2, 3}},
	{"inverted", []int{1, 3, 2}},
	{"negative", []int{0, -5, 12, -5, 7}},
	{"reversed", []int{20, 19, 18, 17, 16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
	{"all equal", []int{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7}},
}

// maxBogoScenario is the longest scenario handed to tiny algorithms.
const maxBogoScenario = 6

type Result struct {
	Correct   int
	Incorrect int
	Skipped   int
}

func runVerify(cmd *cobra.Command, args []string) error {
	res := VerifyAll(cmd.OutOrStdout(), rand.New(rand.NewSource(verifySeed)))
	fmt.Fprintf(cmd.OutOrStdout(), "Correct: %d\n", res.Correct)
	fmt.Fprintf(cmd.OutOrStdout(), "Incorrect: %d\n", res.Incorrect)
	fmt.Fprintf(cmd.OutOrStdout(), "Skipped: %d\n", res.Skipped)
	if res.Incorrect > 0 {
		return errors.Errorf("%d scenario(s) sorted incorrectly", res.Incorrect)
	}
	return nil
}

// VerifyAll sorts every scenario with every algorithm and compares the
// output with slices.Sort. Only mismatches are written to out.
func VerifyAll(out io.Writer, rng *rand.Rand) Result {
	var res Result
	for _, alg := range algorithms.All(rng) {
		for _, sc := range Scenarios {
			if alg.Tiny && len(sc.Input) > maxBogoScenario {
				res.Skipped++
				continue
			}
			got := slices.Clone(sc.Input)
			want := slices.Clone(sc.Input)
			alg.Sort(got)
			slices.Sort(want)
			if !algorithms.IsSorted(got) || !slices.Equal(got, want) {
				res.Incorrect++
				fmt.Fprintf(out, "%s: %s gave %v, want %v\n", color.RedString("Rejected"), alg.Name, got, want)
				continue
			}
			log.Debugf("%s sorted %s", alg.Name, sc.Name)
			res.Correct++
		}
	}
	return res
}
