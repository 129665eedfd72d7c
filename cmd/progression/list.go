package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/services/progression"
)

var listWhy bool

var listCmd = &cobra.Command{
	Use:   "list [character-id] [catalog-id]",
	Short: "List the purchasable abilities of a catalog",
	Args:  cobra.ExactArgs(2),
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listWhy, "why", false, "also print why the other abilities are not purchasable")
}

func runList(cmd *cobra.Command, args []string) error {
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

	out, err := a.service.Purchasable(ctx, &progression.PurchasableInput{Character: char, CatalogID: args[1]})
	if err != nil {
		return err
	}

	if len(out.Records) == 0 {
		_, _ = fmt.Fprintln(a.out, "Nothing to buy")
	}
	for _, r := range out.Records {
		_, _ = fmt.Fprintf(a.out, "%-40s %-30s %4d EP\n", r.ID, r.Name, r.Cost)
	}

	if listWhy {
		for _, d := range out.Decisions {
			if d.Eligible {
				continue
			}
			_, _ = fmt.Fprintf(a.out, "  %s: %s (%s)\n", d.AbilityID, d.Reason, d.Rule)
		}
	}

	_, _ = fmt.Fprintf(a.out, "EP left: %d\n", char.RemainingEP())
	return nil
}
