package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexshd/bigbench"
)

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <plan.yaml>",
		Short: "Run a batch of evaluations and profiles from a YAML plan",
		Long: `Run every evaluation, then every profile, listed in a plan file.

Example plan:

  trials: 5
  seed: 42
  evaluations:
    - {algorithm: 3, n1: 500, n2: 1000}
  profiles:
    - {algorithm: 1, sizes: [100000, 200000, 400000]}

Environment variables and flags override the plan's settings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := bigbench.LoadPlanFile(args[0])
			if err != nil {
				return wrapError("load plan", fmt.Errorf("%w: %v", errBadArgument, err))
			}

			plan.Harness, err = opts.harnessConfig(cmd, plan.Harness)
			if err != nil {
				return wrapError("run", err)
			}

			report, err := bigbench.RunPlan(cmd.Context(), plan, opts.logger)
			if err != nil {
				return wrapError("run", err)
			}

			return opts.print(cmd.OutOrStdout(), report, func(w io.Writer) {
				printReport(w, report)
			})
		},
	}
}

func printReport(w io.Writer, r bigbench.Report) {
	fmt.Fprintf(w, "run %s (%d trials, %v)\n", r.RunID, r.Trials, r.Elapsed)

	if len(r.Evaluations) > 0 {
		fmt.Fprintln(w, "\nEvaluations:")
		fmt.Fprintln(w, "  ALG  N1        N2        PREDICTED     ACTUAL        ERROR")
		for _, e := range r.Evaluations {
			errCol := fmt.Sprintf("%+.2f%%", e.PercentError*100)
			if e.Error != "" {
				errCol = "undetermined"
				if !e.Undetermined {
					errCol = e.Error
				}
			}
			fmt.Fprintf(w, "  %-4d %-9d %-9d %-12.6f  %-12.6f  %s\n",
				int(e.Algorithm), e.N1, e.N2, e.Predicted, e.T2, errCol)
		}
	}

	if len(r.Profiles) > 0 {
		fmt.Fprintln(w, "\nProfiles:")
		for _, p := range r.Profiles {
			printProfile(w, p)
		}
	}
}
