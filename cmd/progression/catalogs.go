package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/services/progression"
)

var catalogsCmd = &cobra.Command{
	Use:   "catalogs [character-id]",
	Short: "List the catalogs the character can reach",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogs,
}

func runCatalogs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(cmd, nil)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	char, err := a.load(ctx, args[0])
	if err != nil {
		return err
	}

	out, err := a.service.ReachableCatalogs(ctx, &progression.ReachableCatalogsInput{Character: char})
	if err != nil {
		return err
	}

	for _, id := range out.CatalogIDs {
		name := id
		if c, ok := a.registry.Get(id); ok && c.Name() != "" {
			name = c.Name()
		}
		_, _ = fmt.Fprintf(a.out, "%-14s %s\n", id, name)
	}
	return nil
}
