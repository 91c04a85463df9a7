package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"support-router/internal/scenariorun"
)

var flagOutput string

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Run the example queries and save the transcript",
	Args:  cobra.NoArgs,
	RunE:  runScenarios,
}

func init() {
	scenariosCmd.Flags().StringVarP(&flagOutput, "output", "o", "results.txt", "transcript file")
}

func runScenarios(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	f, err := os.Create(flagOutput)
	if err != nil {
		return fmt.Errorf("create %s: %w", flagOutput, err)
	}
	defer f.Close()

	w := io.MultiWriter(f, cmd.OutOrStdout())
	results, err := scenariorun.Run(ctx, app.Router, scenariorun.Queries, w)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "\nSaved %d scenario outputs to %s\n", len(results), flagOutput)
	return nil
}
