package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/pthm/sysmllink/internal/cli"
	"github.com/pthm/sysmllink/pkg/metamodel"
	"github.com/pthm/sysmllink/pkg/resolver"
)

var resolveGraph string

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a graph document's cross-references",
	Long: `Load a graph document and run the resolver (spec §4.3) against the
built-in or configured metamodel table, printing a summary of how many
references were resolved and how many were not, and the diagnostics for
the unresolved ones.`,
	Example: `  # Resolve a graph dumped by an external parser
  sysmllink resolve --graph build/graph.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		graphPath := resolveString(resolveGraph, cfg.Resolve.Graph)
		if graphPath == "" {
			return cli.ConfigError("--graph is required", nil)
		}

		table, err := loadTableForCommand()
		if err != nil {
			return cli.ArtifactParseError("generating metamodel table", err)
		}

		g, err := cli.LoadGraphDocument(graphPath, table)
		if err != nil {
			return cli.GraphLoadError("loading graph document", err)
		}

		result := resolver.Resolve(g, table)

		if !quiet {
			log.Printf("[sysmllink] resolved %d references (%d unresolved)",
				result.ResolvedCount, result.UnresolvedCount)
		}
		for _, d := range result.Diagnostics {
			fmt.Println(d.String())
		}

		if !result.IsComplete() {
			return cli.GeneralError(fmt.Sprintf("%d unresolved reference(s)", result.UnresolvedCount), nil)
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveGraph, "graph", "", "path to the graph document to resolve")
}

// loadTableForCommand builds the metamodel table resolve/validate run
// against, from the same artifact configuration generate uses.
func loadTableForCommand() (*metamodel.Table, error) {
	artifacts, err := loadArtifacts(
		cfg.Metamodel.Vocabulary,
		cfg.Metamodel.Shapes,
		cfg.Metamodel.ClassMetamodel,
		cfg.Metamodel.CrossReferences,
	)
	if err != nil {
		return nil, err
	}
	return metamodel.Generate(artifacts, metamodel.GenerateOptions{
		Handlers: metamodel.ResolverDispatchHandledKeys(),
		Strict:   cfg.Metamodel.Strict,
	})
}
