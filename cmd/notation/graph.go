package main

import (
	"fmt"

	"github.com/neon-law-foundation/notation/internal/cli"
	"github.com/neon-law-foundation/notation/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file|->",
	Short: "Export a state machine as a Mermaid flowchart",
	Long: `Outputs a Mermaid diagram (graph TD) of the flow or alignment machine of a
notation. Unreachable states and states on a cycle are highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		machine, _ := cmd.Flags().GetString("machine")
		if machine != string(domain.MachineFlow) && machine != string(domain.MachineAlignment) {
			return fmt.Errorf("unknown machine %q: use flow or alignment", machine)
		}

		doc, err := cli.ReadDocument(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		out, err := cli.NewEngine(cfg, logger, nil, nil).Graph(doc, domain.Machine(machine))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("machine", "m", string(domain.MachineFlow), "Machine to render: flow or alignment")
}
