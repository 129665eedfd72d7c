package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/clients/choice"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/services/progression"
)

var grantAnswers []string

var grantCmd = &cobra.Command{
	Use:   "grant [character-id] [class]",
	Short: "Run the free grant of a class",
	Long: `Run the free abilities a class hands out on first access. Each pick is
asked on the terminal unless --answers is given.`,
	Args: cobra.ExactArgs(2),
	RunE: runGrant,
}

func init() {
	grantCmd.Flags().StringSliceVar(&grantAnswers, "answers", nil, "answer grant choices with these ability IDs instead of asking")
}

func runGrant(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	class, err := entities.ParseClassTag(args[1])
	if err != nil {
		return err
	}

	choices, err := choicePort(cmd, grantAnswers)
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

	if err := a.runGrant(ctx, char, class); err != nil {
		return err
	}
	return a.save(ctx, char)
}

// choicePort answers from the list when given, from the terminal otherwise
func choicePort(cmd *cobra.Command, answers []string) (progression.ChoicePort, error) {
	if len(answers) > 0 {
		return choice.NewScripted(answers...), nil
	}
	return choice.NewTerminal(&choice.TerminalConfig{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
	})
}
