package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"support-router/internal/scenariorun"
)

var flagJSON bool

var askCmd = &cobra.Command{
	Use:   "ask <query>",
	Short: "Route a single query and print the transcript",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&flagJSON, "json", false, "print the result as JSON")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	res := app.Router.HandleQuery(ctx, strings.Join(args, " "))
	if flagJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), scenariorun.Format(res))
	return err
}
