package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/services/progression"
)

var showCmd = &cobra.Command{
	Use:   "show [character-id]",
	Short: "Print the character sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
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

	summary, err := a.service.Summary(ctx, &progression.SummaryInput{Character: char})
	if err != nil {
		return err
	}

	w := a.out
	_, _ = fmt.Fprintf(w, "%s (%s)\n", char.Name, char.ID)
	_, _ = fmt.Fprintf(w, "Race: %s  LP: %d\n", char.Race, char.LPMax)
	_, _ = fmt.Fprintf(w, "EP: %d of %d left\n", char.RemainingEP(), char.TotalEP)
	if char.HasGod() {
		_, _ = fmt.Fprintf(w, "God: %s\n", a.displayName(char.SelectedGod))
	}

	if len(summary.General) > 0 {
		_, _ = fmt.Fprintln(w, "\nAbilities")
		for _, e := range summary.General {
			_, _ = fmt.Fprintf(w, "  %s\n", e.Name)
		}
	}

	for _, section := range summary.Classes {
		_, _ = fmt.Fprintf(w, "\n%s\n", section.Name)
		if section.Stat != nil {
			_, _ = fmt.Fprintf(w, "  %s: %d\n", section.Stat.Name, section.Stat.Value)
		}
		if len(section.GradeAbilities) > 0 {
			_, _ = fmt.Fprintf(w, "  %s\n", strings.Join(section.GradeAbilities, ", "))
		}
		for _, name := range section.Abilities {
			_, _ = fmt.Fprintf(w, "  %s\n", name)
		}
	}

	return nil
}
