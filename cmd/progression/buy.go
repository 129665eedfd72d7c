package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/services/progression"
)

var buyAnswers []string

var buyCmd = &cobra.Command{
	Use:   "buy [character-id] [catalog-id] [ability-id]",
	Short: "Buy an ability",
	Long: `Buy an ability from a reachable catalog. Buying a god selects it; a free
marker or a first god runs the free class grant.`,
	Args: cobra.ExactArgs(3),
	RunE: runBuy,
}

func init() {
	buyCmd.Flags().StringSliceVar(&buyAnswers, "answers", nil, "answer grant choices with these ability IDs instead of asking")
}

func runBuy(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	choices, err := choicePort(cmd, buyAnswers)
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

	out, err := a.service.Purchase(ctx, &progression.PurchaseInput{
		Character: char,
		CatalogID: args[1],
		AbilityID: args[2],
	})
	if err != nil {
		return err
	}

	switch {
	case out.GodSelected:
		_, _ = fmt.Fprintf(a.out, "Selected %s\n", out.Record.Name)
	case out.Grant == nil && out.Record.Kind() == entities.KindFree:
		_, _ = fmt.Fprintf(a.out, "%s was already used\n", out.Record.Name)
	case out.Grant == nil:
		_, _ = fmt.Fprintf(a.out, "Bought %s for %d EP\n", out.Record.Name, out.CostPaid)
	}

	// the staged grant is replayed through the choice port
	if out.Grant != nil {
		if err := a.runGrant(ctx, char, out.Grant.Class); err != nil {
			if saveErr := a.save(ctx, char); saveErr != nil {
				return saveErr
			}
			return err
		}
	}

	if err := a.save(ctx, char); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.out, "EP left: %d\n", char.RemainingEP())
	return nil
}
