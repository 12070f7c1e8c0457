package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/task-classifier/internal/domain/classification"
	"github.com/jsamuelsen11/task-classifier/internal/domain/heuristic"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <description>",
		Short: "Show the keyword score board behind a heuristic result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			board := heuristic.Board(text)
			result := heuristic.Score(text)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "AXIS\tLABEL\tSCORE")
			for _, p := range classification.Priorities {
				fmt.Fprintf(w, "priority\t%s\t%.2f\n", p, board.PriorityScore(p))
			}
			for _, s := range classification.Statuses {
				fmt.Fprintf(w, "status\t%s\t%.2f\n", s, board.StatusScore(s))
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("writing board: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "\nresult: priority=%s status=%s source=%s confidence=%.2f\n",
				result.Priority, result.Status, result.Source, result.Confidence)
			return err
		},
	}
}
