package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexshd/bigbench"
)

func newGrowthCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "growth <id> <n>",
		Short: "Print the theoretical growth value of an algorithm at size n",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAlgorithm(args[0])
			if err != nil {
				return wrapError("growth", err)
			}
			n, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return wrapError("growth", fmt.Errorf("%w: input size %q", errBadArgument, args[1]))
			}

			g, err := bigbench.Growth(id, n)
			if err != nil {
				return wrapError("growth", err)
			}

			out := struct {
				Algorithm int     `json:"algorithm"`
				Class     string  `json:"class"`
				N         float64 `json:"n"`
				Growth    float64 `json:"growth"`
			}{int(id), id.Class(), n, g}

			return opts.print(cmd.OutOrStdout(), out, func(w io.Writer) {
				fmt.Fprintf(w, "%s %s growth(%g) = %g\n", id, id.Class(), n, g)
			})
		},
	}
}

func newTimeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "time <id> <n>",
		Short: "Time an algorithm at size n (best of --trials)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAlgorithm(args[0])
			if err != nil {
				return wrapError("time", err)
			}
			if !id.Valid() {
				return wrapError("time", fmt.Errorf("%w: %d", bigbench.ErrInvalidAlgorithm, int(id)))
			}
			n, err := parseSize(args[1])
			if err != nil {
				return wrapError("time", err)
			}

			h, err := opts.newHarness(cmd)
			if err != nil {
				return wrapError("time", err)
			}

			s := h.Sample(id, n, h.Config().Trials)
			stats := s.Stats()

			out := struct {
				Algorithm int       `json:"algorithm"`
				N         int       `json:"n"`
				Best      float64   `json:"best"`
				Trials    []float64 `json:"trials"`
				Mean      float64   `json:"mean"`
				Stddev    float64   `json:"stddev"`
			}{Algorithm: int(id), N: n, Best: s.Best.Seconds(), Mean: stats.Mean.Seconds(), Stddev: stats.Stddev.Seconds()}
			for _, d := range s.Trials {
				out.Trials = append(out.Trials, d.Seconds())
			}

			return opts.print(cmd.OutOrStdout(), out, func(w io.Writer) {
				fmt.Fprintf(w, "%s n=%d best=%v mean=%v stddev=%v (%d trials)\n",
					id, n, s.Best, stats.Mean, stats.Stddev, len(s.Trials))
			})
		},
	}
}

func newEstimateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "estimate <id> <n1> <t1> <n2>",
		Short: "Scale a time t1 (seconds) measured at n1 to size n2",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAlgorithm(args[0])
			if err != nil {
				return wrapError("estimate", err)
			}
			n1, err := parseSize(args[1])
			if err != nil {
				return wrapError("estimate", err)
			}
			t1, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return wrapError("estimate", fmt.Errorf("%w: time %q", errBadArgument, args[2]))
			}
			n2, err := parseSize(args[3])
			if err != nil {
				return wrapError("estimate", err)
			}

			predicted, err := bigbench.NewEstimator(nil, opts.logger).Estimate(id, n1, t1, n2)
			if err != nil {
				return wrapError("estimate", err)
			}

			out := struct {
				Algorithm int     `json:"algorithm"`
				N1        int     `json:"n1"`
				T1        float64 `json:"t1"`
				N2        int     `json:"n2"`
				Predicted float64 `json:"predicted"`
			}{int(id), n1, t1, n2, predicted}

			return opts.print(cmd.OutOrStdout(), out, func(w io.Writer) {
				fmt.Fprintf(w, "%s n=%d t=%gs -> n=%d t≈%gs\n", id, n1, t1, n2, predicted)
			})
		},
	}
}

func newEvaluateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <id> <n1> <n2>",
		Short: "Time n1, predict n2, time n2, and report the percent error",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAlgorithm(args[0])
			if err != nil {
				return wrapError("evaluate", err)
			}
			n1, err := parseSize(args[1])
			if err != nil {
				return wrapError("evaluate", err)
			}
			n2, err := parseSize(args[2])
			if err != nil {
				return wrapError("evaluate", err)
			}

			h, err := opts.newHarness(cmd)
			if err != nil {
				return wrapError("evaluate", err)
			}

			ev, err := bigbench.NewEstimator(h, opts.logger).Evaluate(id, n1, n2)
			if err != nil && !errors.Is(err, bigbench.ErrUndetermined) {
				return wrapError("evaluate", err)
			}

			if perr := opts.print(cmd.OutOrStdout(), ev, func(w io.Writer) {
				printEvaluation(w, ev, err)
			}); perr != nil {
				return perr
			}
			if err != nil {
				return wrapError("evaluate", err)
			}
			return nil
		},
	}
}

func newProfileCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "profile <id> <n> <n>...",
		Short: "Time an algorithm across sizes and fit its growth exponent",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAlgorithm(args[0])
			if err != nil {
				return wrapError("profile", err)
			}
			sizes := make([]int, 0, len(args)-1)
			for _, a := range args[1:] {
				n, err := parseSize(a)
				if err != nil {
					return wrapError("profile", err)
				}
				sizes = append(sizes, n)
			}

			h, err := opts.newHarness(cmd)
			if err != nil {
				return wrapError("profile", err)
			}

			points, err := h.Profile(cmd.Context(), id, sizes)
			if err != nil {
				return wrapError("profile", err)
			}
			fit, err := bigbench.FitPowerLaw(points)
			if err != nil {
				return wrapError("profile", err)
			}

			out := bigbench.ProfileResult{
				Algorithm: id,
				Class:     id.Class(),
				Points:    points,
				Fit:       &fit,
			}
			for _, m := range fit.Classify() {
				out.Matches = append(out.Matches, int(m))
			}

			return opts.print(cmd.OutOrStdout(), out, func(w io.Writer) {
				printProfile(w, out)
			})
		},
	}
}

func printEvaluation(w io.Writer, ev bigbench.Evaluation, err error) {
	fmt.Fprintf(w, "%s %s\n", ev.Algorithm, ev.Algorithm.Class())
	fmt.Fprintf(w, "  n1=%-8d t1=%.6fs\n", ev.N1, ev.T1)
	fmt.Fprintf(w, "  n2=%-8d t2=%.6fs predicted=%.6fs\n", ev.N2, ev.T2, ev.Predicted)
	if err != nil {
		fmt.Fprintf(w, "  percent error: undetermined (%v)\n", err)
		return
	}
	fmt.Fprintf(w, "  percent error: %+.2f%%\n", ev.PercentError*100)
}

func printProfile(w io.Writer, p bigbench.ProfileResult) {
	fmt.Fprintf(w, "%s theory %s\n", p.Algorithm, p.Class)
	for _, pt := range p.Points {
		fmt.Fprintf(w, "  n=%-10d %.6fs\n", pt.N, pt.Seconds)
	}
	if p.Fit != nil {
		fmt.Fprintf(w, "  fit: t ≈ %.3e · n^%.3f (R² = %.4f)\n", p.Fit.Coefficient, p.Fit.Exponent, p.Fit.RSquared)
		fmt.Fprintf(w, "  closest class: O(n^%d) %v\n", p.Fit.NearestExponent(), p.Matches)
	}
	if p.Error != "" {
		fmt.Fprintf(w, "  error: %s\n", p.Error)
	}
}
