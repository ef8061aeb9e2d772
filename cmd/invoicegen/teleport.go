package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"invoicegen/m/internal/builder"
	"invoicegen/m/internal/render"
	"invoicegen/m/internal/seed"
	"invoicegen/m/internal/suggest"
)

func teleportCommand() *cli.Command {
	return &cli.Command{
		Name:      "teleport",
		Usage:     "demonstrate the assistant session with a sample invoice",
		ArgsUsage: "[session-id]",
		Action:    teleport,
	}
}

func teleport(c *cli.Context) error {
	cfg := loadConfig(c.App.ErrWriter)
	w := c.App.Writer
	rule := strings.Repeat("=", 60)

	session := suggest.NewSession(c.Args().First())
	defer session.Close()

	info := session.Info()
	status := "Inactive"
	if info.Active {
		status = "Active"
	}
	fmt.Fprintln(w, "Invoice Generator - Assistant Session")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Session Information:")
	fmt.Fprintf(w, "  Session ID: %s\n", info.SessionID)
	fmt.Fprintf(w, "  Model: %s\n", info.Model)
	fmt.Fprintf(w, "  Status: %s\n", status)
	fmt.Fprintln(w, rule)

	doc, err := builder.New(cfg.Company).Build("invoice", seed.SessionFields())
	if err != nil {
		return err
	}

	suggestions, err := session.Provider().Suggest(c.Context, doc)
	if err != nil {
		return err
	}
	if len(suggestions) == 0 {
		fmt.Fprintln(w, "No suggestions - invoice looks good!")
	} else {
		fmt.Fprintln(w, "Suggestions:")
		for _, s := range suggestions {
			fmt.Fprintf(w, "  %-13s %s\n", s.Kind, s)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Description: %q\n", suggest.Describe(doc))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, render.Text(doc))
	return nil
}
