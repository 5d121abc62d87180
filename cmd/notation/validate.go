package main

import (
	"fmt"
	"path/filepath"

	"github.com/neon-law-foundation/notation"
	"github.com/neon-law-foundation/notation/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file|-]...",
	Short: "Validate notation documents",
	Long: `Runs every check over each document and reports the findings.
Use - to read a document from standard input. The command exits with
status 1 when any document is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		warnings, _ := cmd.Flags().GetBool("warnings")
		skipUnique, _ := cmd.Flags().GetBool("skip-uniqueness")

		regs, err := cli.OpenRegistries(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer regs.Close()
		engine := cli.NewEngine(cfg, logger, regs, nil)

		var opts []notation.ValidateOption
		if warnings {
			opts = append(opts, notation.WithWarnings())
		}
		if skipUnique {
			opts = append(opts, notation.SkipUniqueness())
		}

		invalid := false
		for _, path := range args {
			doc, err := cli.ReadDocument(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			res, err := engine.Validate(cmd.Context(), doc, opts...)
			if err != nil {
				return fmt.Errorf("validate %s: %w", path, err)
			}
			if !res.Valid {
				invalid = true
			}

			name := filepath.Base(path)
			if path == cli.StdinPath {
				name = "stdin"
			}
			if asJSON {
				err = cli.WriteJSON(cmd.OutOrStdout(), res)
			} else {
				err = cli.WriteReport(cmd.OutOrStdout(), name, res)
			}
			if err != nil {
				return err
			}
		}
		if invalid {
			return errFindings
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("json", false, "Print the validation response as JSON")
	validateCmd.Flags().BoolP("warnings", "w", false, "Include warnings")
	validateCmd.Flags().Bool("skip-uniqueness", false, "Do not check the code against existing notations")
}
