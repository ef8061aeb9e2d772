package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"invoicegen/m/internal/builder"
	"invoicegen/m/internal/render"
	"invoicegen/m/internal/seed"
	"invoicegen/m/internal/suggest"
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "generate a document from a config file or the sample data",
		ArgsUsage: "<invoice|po|purchase-order|receipt>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "config file path (JSON or YAML)"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file path (default: standard output)"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "output format: text, json, html or pdf"},
			&cli.BoolFlag{Name: "save", Usage: "also save the document in the local database"},
		},
		Action: generate,
	}
}

func generate(c *cli.Context) error {
	cfg := loadConfig(c.App.ErrWriter)

	if err := parseTrailingFlags(c); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	variant := c.Args().First()
	if variant == "" {
		return cli.Exit("missing document type (valid types: invoice, po, receipt)", 1)
	}

	out, err := render.ParseOutput(c.String("format"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	raw := seed.CLIFields()
	if path := c.String("config"); path != "" {
		if raw, err = builder.LoadFile(path); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	doc, err := builder.New(cfg.Company).Build(variant, raw)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error generating document: %v", err), 1)
	}

	suggestions, err := suggest.Rules{}.Suggest(c.Context, doc)
	if err != nil {
		return err
	}
	for _, s := range suggestions {
		fmt.Fprintf(c.App.ErrWriter, "%s: %s\n", s.Kind, s)
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, doc, out); err != nil {
		return cli.Exit(fmt.Sprintf("error rendering document: %v", err), 1)
	}

	if c.Bool("save") {
		saved, err := saveDocument(c, cfg.DatabaseDSN, cfg.NodeID, doc)
		if err != nil {
			return cli.Exit(fmt.Sprintf("error saving document: %v", err), 1)
		}
		slog.Info("document saved", "id", saved, "number", doc.Number)
	}

	path := c.String("output")
	if path == "" {
		_, err := buf.WriteTo(c.App.Writer)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return cli.Exit(fmt.Sprintf("error writing output file: %v", err), 1)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return cli.Exit(fmt.Sprintf("error writing output file: %v", err), 1)
	}
	fmt.Fprintf(c.App.Writer, "Document generated successfully: %s\n", path)
	return nil
}

// parseTrailingFlags applies flags given after the document type, as in
// "generate invoice -c data.json". cli stops flag parsing at the first
// positional argument, so the tail is parsed again with the command's flags
// and copied onto c under each flag's primary name.
func parseTrailingFlags(c *cli.Context) error {
	tail := c.Args().Tail()
	if len(tail) == 0 {
		return nil
	}

	set := flag.NewFlagSet(c.Command.Name, flag.ContinueOnError)
	set.SetOutput(io.Discard)
	for _, f := range c.Command.Flags {
		if err := f.Apply(set); err != nil {
			return err
		}
	}
	if err := set.Parse(tail); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if rest := set.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}

	seen := map[string]string{}
	set.Visit(func(f *flag.Flag) { seen[f.Name] = f.Value.String() })
	for _, f := range c.Command.Flags {
		names := f.Names()
		for _, name := range names {
			if v, ok := seen[name]; ok {
				if err := c.Set(names[0], v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
