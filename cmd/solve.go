package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathduel/internal/compare"
	"github.com/abhisek/mathduel/internal/mathtext"
	"github.com/abhisek/mathduel/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve <problem>",
	Short: "Solve one problem with both models and print the results",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logger, closer := clientLogger(cfg)
		defer closer.Close()

		client, err := newSolverClient(cfg, logger)
		if err != nil {
			return err
		}

		board := compare.NewBoard()
		opts := []compare.Option{compare.WithLogger(logger)}
		if raw, _ := cmd.Flags().GetBool("raw"); !raw {
			opts = append(opts, compare.WithTypesetter(mathtext.Over(board.TextRegions())))
		}

		input := compare.NewField(strings.Join(args, " "))
		c, err := compare.New(board.Handles(input), client, opts...)
		if err != nil {
			return err
		}

		job := c.Submit(cmd.Context())
		if job != nil {
			c.Apply(job())
		}
		if board.Error.Visible() {
			return errors.New(board.Error.Text())
		}

		showReasoning, _ := cmd.Flags().GetBool("show-reasoning")
		printComparison(cmd.OutOrStdout(), c.State().Problem, board, showReasoning)
		return nil
	},
}

func init() {
	solveCmd.Flags().Bool("show-reasoning", false, "Print each model's reasoning")
	solveCmd.Flags().Bool("raw", false, "Print model output without typesetting LaTeX")
}

func printComparison(w io.Writer, problem string, board *compare.Board, showReasoning bool) {
	fmt.Fprintln(w, "\n=== Math Problem Solver ===")
	fmt.Fprintf(w, "\nProblem: %s\n", problem)

	for _, v := range solver.Variants {
		p := board.Panel(v)
		fmt.Fprintf(w, "\n--- %s (%ss) ---\n", v.Label(), p.Time.Text())
		if showReasoning {
			fmt.Fprintln(w, "\nReasoning:")
			fmt.Fprintln(w, p.Reasoning.Text())
		}
		fmt.Fprintln(w, "\nAnswer:")
		answer := p.Answer.Text()
		if p.Answer.Marked() {
			answer += "  ≠ different"
		}
		fmt.Fprintln(w, answer)
	}
}
