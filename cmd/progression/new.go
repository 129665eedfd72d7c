package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
)

var (
	newID      string
	newName    string
	newRace    string
	newLPMax   int
	newTotalEP int
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a character",
	Long:  `Create a character with the default EP budget and save it to the store.`,
	Args:  cobra.NoArgs,
	RunE:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&newID, "id", "", "character ID, generated when empty")
	newCmd.Flags().StringVar(&newName, "name", "", "character name")
	newCmd.Flags().StringVar(&newRace, "race", "menneske", "character race")
	newCmd.Flags().IntVar(&newLPMax, "lp-max", 0, "maximum life points")
	newCmd.Flags().IntVar(&newTotalEP, "total-ep", entities.DefaultTotalEP, "EP budget")
	_ = newCmd.MarkFlagRequired("name")
}

func runNew(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", newName, vb)
	errors.ValidateNonNegative("lp-max", newLPMax, vb)
	errors.ValidateNonNegative("total-ep", newTotalEP, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	a, err := newApp(cmd, nil)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	id := newID
	if id == "" {
		id = idgen.NewUUID("char").Generate()
	}

	char := entities.NewCharacterState(id, newName, newRace)
	char.LPMax = newLPMax
	char.TotalEP = newTotalEP

	if err := a.save(ctx, char); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.out, "Created %s (%s)\n", char.Name, char.ID)
	return nil
}
