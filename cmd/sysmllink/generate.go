package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pthm/sysmllink/internal/cli"
	"github.com/pthm/sysmllink/pkg/metamodel"
	"github.com/pthm/sysmllink/pkg/metamodel/jsonschemadump"
)

var (
	genVocabulary      string
	genShapes          string
	genClassMetamodel  string
	genCrossReferences string
	genStrict          bool
	genSchemaOut       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a metamodel table from the four generator artifacts",
	Long: `Decode the vocabulary, property-shapes, class-metamodel, and
cross-reference artifacts, cross-validate them, and build the metamodel
table the resolver and validator consume.

With no artifact paths configured, the built-in default artifacts are used.`,
	Example: `  # Generate from the built-in defaults
  sysmllink generate

  # Generate from custom artifacts, emitting a JSON Schema description
  sysmllink generate --vocabulary v.yaml --shapes s.yaml \
    --class-metamodel c.yaml --cross-references x.yaml \
    --schema-out schema.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vocabulary := resolveString(genVocabulary, cfg.Metamodel.Vocabulary)
		shapes := resolveString(genShapes, cfg.Metamodel.Shapes)
		classMetamodel := resolveString(genClassMetamodel, cfg.Metamodel.ClassMetamodel)
		crossReferences := resolveString(genCrossReferences, cfg.Metamodel.CrossReferences)
		strict := resolveBool(genStrict, cfg.Metamodel.Strict)

		artifacts, err := loadArtifacts(vocabulary, shapes, classMetamodel, crossReferences)
		if err != nil {
			return cli.ArtifactParseError("loading artifacts", err)
		}

		table, err := metamodel.Generate(artifacts, metamodel.GenerateOptions{
			Handlers: metamodel.ResolverDispatchHandledKeys(),
			Strict:   strict,
		})
		if err != nil {
			return cli.ArtifactParseError("generating metamodel table", err)
		}

		if !quiet {
			log.Printf("[sysmllink] generated metamodel table: %d kinds", len(table.Kinds()))
		}

		schemaOut := resolveString(genSchemaOut, filepathJoinIfSet(cfg.Output.Dir, "schema.json"))
		if schemaOut != "" {
			if err := writeJSONSchema(table, schemaOut); err != nil {
				return cli.GeneralError("writing JSON schema", err)
			}
			if !quiet {
				log.Printf("[sysmllink] wrote %s", schemaOut)
			}
		}

		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genVocabulary, "vocabulary", "", "path to the vocabulary artifact (default: built in)")
	f.StringVar(&genShapes, "shapes", "", "path to the property-shapes artifact (default: built in)")
	f.StringVar(&genClassMetamodel, "class-metamodel", "", "path to the class-metamodel artifact (default: built in)")
	f.StringVar(&genCrossReferences, "cross-references", "", "path to the cross-reference artifact (default: built in)")
	f.BoolVar(&genStrict, "strict", false, "fail on resolver-only cross-reference entries")
	f.StringVar(&genSchemaOut, "schema-out", "", "path to write a JSON Schema description of the generated table (default: none)")
}

// loadArtifacts decodes the four generator artifacts from disk, or falls
// back to the built-in defaults if none of the four paths are set.
func loadArtifacts(vocabulary, shapes, classMetamodel, crossReferences string) (metamodel.Artifacts, error) {
	if vocabulary == "" && shapes == "" && classMetamodel == "" && crossReferences == "" {
		return metamodel.DefaultArtifacts(), nil
	}

	vb, err := os.ReadFile(vocabulary)
	if err != nil {
		return metamodel.Artifacts{}, fmt.Errorf("reading vocabulary: %w", err)
	}
	sb, err := os.ReadFile(shapes)
	if err != nil {
		return metamodel.Artifacts{}, fmt.Errorf("reading shapes: %w", err)
	}
	cb, err := os.ReadFile(classMetamodel)
	if err != nil {
		return metamodel.Artifacts{}, fmt.Errorf("reading class metamodel: %w", err)
	}
	xb, err := os.ReadFile(crossReferences)
	if err != nil {
		return metamodel.Artifacts{}, fmt.Errorf("reading cross references: %w", err)
	}

	return metamodel.DecodeArtifacts(vb, sb, cb, xb)
}

func writeJSONSchema(table *metamodel.Table, path string) error {
	dumper := jsonschemadump.NewDumper(
		jsonschemadump.WithTitle("sysmllink model graph"),
		jsonschemadump.WithDescription("Per-kind element shapes generated from the configured metamodel artifacts."),
	)
	schema := dumper.Dump(table)

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling schema: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	return os.WriteFile(path, data, 0o644)
}

func filepathJoinIfSet(dir, name string) string {
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, name)
}
