package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/Annany2002/schema-builder/internal/core"
	"github.com/Annany2002/schema-builder/internal/render"
	"github.com/Annany2002/schema-builder/internal/storage"
)

// SeedFlag selects a YAML seed file instead of the built-in schemas.
func SeedFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "seed",
		Aliases: []string{"s"},
		Usage:   "YAML seed file (defaults to the built-in sample schemas)",
		EnvVars: []string{"SEED_FILE"},
	}
}

// loadStore builds an in-memory store from the --seed flag.
func loadStore(c *cli.Context) (*storage.SchemaStore, error) {
	seed, err := storage.LoadSeed(c.String("seed"))
	if err != nil {
		return nil, err
	}
	return storage.NewSchemaStore(seed), nil
}

// NewListCommand lists schemas, optionally filtered by name.
func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List schemas",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "Case-insensitive name filter",
			},
		},
		Action: func(c *cli.Context) error {
			store, err := loadStore(c)
			if err != nil {
				return err
			}

			summaries := store.List(c.String("filter"))
			if len(summaries) == 0 {
				fmt.Fprintln(c.App.Writer, "No schemas found.")
				return nil
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tELEMENTS")
			fmt.Fprintln(w, "--\t----\t--------\t--------")
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", s.ID, s.Name, s.Category, s.ElementCount)
			}
			return w.Flush()
		},
	}
}

// NewShowCommand prints one schema's element cards.
func NewShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a schema and its elements",
		ArgsUsage: "<schema-id>",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("schema id is required")
			}
			store, err := loadStore(c)
			if err != nil {
				return err
			}
			schema, ok := store.Get(c.Args().First())
			if !ok {
				return fmt.Errorf("%w: '%s'", storage.ErrSchemaNotFound, c.Args().First())
			}

			fmt.Fprintf(c.App.Writer, "Schema: %s\nID: %s • %d Elements\n\n", schema.Name, schema.ID, len(schema.Elements))
			w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NR\tNAME\tTAG\tTYPE\tVARIANT\tLABEL")
			for _, card := range render.Cards(schema) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					card.ElementNr, card.DisplayName, card.Tag, card.TypeBadge, card.Variant, card.Label)
			}
			return w.Flush()
		},
	}
}

// NewPreviewCommand renders a schema to HTML on stdout or into a file.
func NewPreviewCommand() *cli.Command {
	return &cli.Command{
		Name:      "preview",
		Usage:     "Render a schema as an HTML form",
		ArgsUsage: "<schema-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write HTML to this file instead of stdout",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("schema id is required")
			}
			store, err := loadStore(c)
			if err != nil {
				return err
			}
			schema, ok := store.Get(c.Args().First())
			if !ok {
				return fmt.Errorf("%w: '%s'", storage.ErrSchemaNotFound, c.Args().First())
			}

			page, err := render.PreviewHTML(schema)
			if err != nil {
				return err
			}
			if out := c.String("out"); out != "" {
				if err := os.WriteFile(out, page, 0o644); err != nil {
					return fmt.Errorf("failed to write preview: %w", err)
				}
				fmt.Fprintf(c.App.Writer, "Preview of '%s' written to %s\n", schema.Name, out)
				return nil
			}
			_, err = c.App.Writer.Write(page)
			return err
		},
	}
}

// NewValidateCommand checks a YAML seed file against the save rules.
func NewValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate a YAML schema file",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("file is required")
			}
			schemas, err := storage.LoadSeed(c.Args().First())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%d schema(s) valid\n", len(schemas))
			return nil
		},
	}
}

// NewPresetsCommand lists the element toolbar shortcuts.
func NewPresetsCommand() *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: "List element presets",
		Action: func(c *cli.Context) error {
			w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tTAG\tTYPE\tLABEL")
			draft := core.NewEditor(core.NewSequenceGenerator("preset-")).NewSchemaDraft()
			for _, kind := range core.PresetKinds {
				e, err := core.Preset(kind, draft)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", kind, e.HTMLTag, e.Type, e.Label)
			}
			return w.Flush()
		},
	}
}
