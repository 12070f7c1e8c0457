package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/task-classifier/internal/platform/logging"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "taskclf",
		Short:         "Classify task descriptions by priority and status",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(newClassifyCmd())
	root.AddCommand(newExplainCmd())
	root.AddCommand(newVerifyModelCmd())
	return root
}

// commandLogger writes text logs to the command's stderr so that stdout
// carries only results.
func commandLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(level, "text", cmd.ErrOrStderr())
}
