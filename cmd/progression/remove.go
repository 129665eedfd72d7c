package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/services/progression"
)

var removeRefund bool

var removeCmd = &cobra.Command{
	Use:   "remove [character-id] [ability-id]",
	Short: "Remove an owned ability",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemove,
}

func init() {
	removeCmd.Flags().BoolVar(&removeRefund, "refund", false, "give back the EP paid for the ability")
}

func runRemove(cmd *cobra.Command, args []string) error {
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

	out, err := a.service.RemoveAbility(ctx, &progression.RemoveAbilityInput{
		Character: char,
		AbilityID: args[1],
		Refund:    removeRefund,
	})
	if err != nil {
		return err
	}

	if err := a.save(ctx, char); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.out, "Removed %s, refunded %d EP\n", a.displayName(out.Removed.ID), out.Refunded)
	return nil
}
