package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/task-classifier/internal/adapters/http/dto"
	"github.com/jsamuelsen11/task-classifier/internal/adapters/model"
	"github.com/jsamuelsen11/task-classifier/internal/app"
	"github.com/jsamuelsen11/task-classifier/internal/ports"
)

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [description...]",
		Short: "Classify descriptions and print one JSON result per line",
		Long: "Classify each argument as a separate task description. With no " +
			"arguments, descriptions are read from stdin, one per line.\n\n" +
			"Without --model, or when the bundle fails to load, results come " +
			"from the keyword heuristic.",
		RunE: runClassify,
	}
	cmd.Flags().String("model", "", "Path to a JSON model bundle")
	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	logger := commandLogger(cmd)

	var adapter ports.ModelAdapter = model.Disabled{}
	if path, _ := cmd.Flags().GetString("model"); path != "" {
		handle := model.NewHandle(model.FileLoader(path), logger)
		_ = handle.Reload(cmd.Context())
		adapter = handle
	}
	classifier := app.NewArbitrator(adapter, logger)

	descriptions := args
	if len(descriptions) == 0 {
		lines, err := readLines(cmd)
		if err != nil {
			return err
		}
		descriptions = lines
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, d := range descriptions {
		result := classifier.Classify(cmd.Context(), strings.TrimSpace(d))
		if err := enc.Encode(dto.ToPredictResponse(result)); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
	return nil
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}
