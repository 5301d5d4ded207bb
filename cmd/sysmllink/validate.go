package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/pthm/sysmllink/internal/cli"
	"github.com/pthm/sysmllink/pkg/resolver"
	"github.com/pthm/sysmllink/pkg/validator"
)

var (
	validateGraph    string
	validateUnlinked bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a graph document's structure",
	Long: `Load a graph document and run the structural validator (spec §4.4):
relationship endpoint kinds, the owning-membership/owner consistency
invariant, and each element's per-kind property validator.

By default the resolver runs first, since most structural checks are only
meaningful against resolved references; pass --unlinked to validate a graph
as-is without resolving it first.`,
	Example: `  # Resolve then validate
  sysmllink validate --graph build/graph.json

  # Validate structure only, without resolving references first
  sysmllink validate --graph build/graph.json --unlinked`,
	RunE: func(cmd *cobra.Command, args []string) error {
		graphPath := resolveString(validateGraph, cfg.Resolve.Graph)
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

		if !validateUnlinked {
			resolution := resolver.Resolve(g, table)
			if !quiet && resolution.UnresolvedCount > 0 {
				log.Printf("[sysmllink] WARNING: %d unresolved reference(s) before validation", resolution.UnresolvedCount)
			}
		}

		result := validator.Validate(g, table)

		if !quiet {
			log.Printf("[sysmllink] validated %d elements", len(g.Elements()))
		}
		for _, d := range result.Diagnostics {
			fmt.Println(d.String())
		}

		if result.HasErrors() {
			return cli.GeneralError("structural validation failed", nil)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateGraph, "graph", "", "path to the graph document to validate")
	validateCmd.Flags().BoolVar(&validateUnlinked, "unlinked", false, "skip resolution, validate the graph as loaded")
}
