package main

import (
	"fmt"

	"github.com/neon-law-foundation/notation"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notation",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "notation version %s\n", notation.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
