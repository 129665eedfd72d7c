package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/services/progression"
)

var openAnswers []string

var openCmd = &cobra.Command{
	Use:   "open [character-id] [catalog-id]",
	Short: "Enter a catalog, running its free grant the first time",
	Args:  cobra.ExactArgs(2),
	RunE:  runOpen,
}

func init() {
	openCmd.Flags().StringSliceVar(&openAnswers, "answers", nil, "answer grant choices with these ability IDs instead of asking")
}

func runOpen(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	choices, err := choicePort(cmd, openAnswers)
	if err != nil {
		return err
	}
	a, err := newApp(cmd, choices)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	char, err := a.load(ctx, args[0])
	if err != nil {
		return err
	}

	out, err := a.service.OpenCatalog(ctx, &progression.OpenCatalogInput{Character: char, CatalogID: args[1]})
	if err != nil {
		return err
	}

	if out.Grant != nil {
		if err := a.runGrant(ctx, char, out.Grant.Class); err != nil {
			return err
		}
		if err := a.save(ctx, char); err != nil {
			return err
		}

		// the grant changes what is purchasable
		again, err := a.service.Purchasable(ctx, &progression.PurchasableInput{Character: char, CatalogID: args[1]})
		if err != nil {
			return err
		}
		out.Records = again.Records
	}

	for _, r := range out.Records {
		_, _ = fmt.Fprintf(a.out, "%-40s %-30s %4d EP\n", r.ID, r.Name, r.Cost)
	}
	return nil
}
