package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/task-classifier/internal/adapters/model/linear"
)

func newVerifyModelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-model <path>",
		Short: "Load a model bundle and run its self-test",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := linear.Load(args[0])
			if err != nil {
				return fmt.Errorf("verifying %s: %w", args[0], err)
			}

			s := m.Summary()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "model OK: %s\n", s.Path)
			fmt.Fprintf(out, "  version:  %s\n", s.Version)
			fmt.Fprintf(out, "  priority: %s (%d terms)\n", strings.Join(s.PriorityClasses, ", "), s.PriorityTerms)
			fmt.Fprintf(out, "  status:   %s (%d terms)\n", strings.Join(s.StatusClasses, ", "), s.StatusTerms)
			return nil
		},
	}
}
