package main

import (
	"fmt"
	"strings"

	"github.com/neon-law-foundation/notation/internal/cli"
	"github.com/neon-law-foundation/notation/pkg/jsonfield"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <kind> [file|-]",
	Short: "Validate a JSON field value",
	Long: `Validates a JSON field such as a question map, document mappings or a
changelog. The value is read from the file, or from standard input when the
file is - or omitted. Run without arguments to list the kinds.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := cli.NewEngine(cfg, logger, nil, nil)
		if len(args) == 0 {
			for _, k := range engine.FieldKinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		}

		path := cli.StdinPath
		if len(args) == 2 {
			path = args[1]
		}
		text, err := cli.ReadDocument(path, cmd.InOrStdin())
		if err != nil {
			return err
		}

		res, err := engine.ValidateField(jsonfield.Kind(args[0]), text)
		if err != nil {
			return fmt.Errorf("%w (kinds: %s)", err, kindList(engine.FieldKinds()))
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if err := cli.WriteJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
		} else if res.IsValid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
		} else {
			for _, e := range res.Errors {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
		}
		if !res.IsValid {
			return errFindings
		}
		return nil
	},
}

func kindList(kinds []jsonfield.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().Bool("json", false, "Print the result as JSON")
}
