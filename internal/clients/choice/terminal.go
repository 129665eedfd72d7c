// Package choice provides ChoicePort implementations for free grants
package choice

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/services/progression"
)

// TerminalConfig configures the terminal chooser
type TerminalConfig struct {
	// In defaults to os.Stdin
	In io.Reader
	// Out defaults to os.Stdout
	Out io.Writer
	// MaxAttempts bounds invalid answers before the choice is canceled, 0 means unbounded
	MaxAttempts int
}

// Terminal asks for each grant pick on a numbered list
type Terminal struct {
	in          *bufio.Reader
	out         *termenv.Output
	maxAttempts int
}

// NewTerminal creates a terminal chooser
func NewTerminal(cfg *TerminalConfig) (*Terminal, error) {
	if cfg == nil {
		cfg = &TerminalConfig{}
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("MaxAttempts", cfg.MaxAttempts, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	return &Terminal{
		in:          bufio.NewReader(in),
		out:         termenv.NewOutput(out),
		maxAttempts: cfg.MaxAttempts,
	}, nil
}

// Choose prints the candidates and reads a number. "q" or end of input cancels,
// "0" skips an optional step.
func (t *Terminal) Choose(ctx context.Context, req *progression.ChoiceRequest) (*entities.AbilityRecord, error) {
	if req == nil {
		return nil, errors.InvalidArgument("choice request is required")
	}

	t.render(req)

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.ChoiceCanceled(err.Error())
		}

		_, _ = fmt.Fprint(t.out, "> ")
		line, err := t.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if err != nil && answer == "" {
			if err == io.EOF {
				return nil, errors.ChoiceCanceled("input closed")
			}
			return nil, errors.Wrap(err, "failed to read choice")
		}

		if strings.EqualFold(answer, "q") {
			return nil, errors.ChoiceCanceled("choice canceled")
		}

		n, convErr := strconv.Atoi(answer)
		switch {
		case convErr == nil && n == 0 && req.Optional:
			return nil, nil
		case convErr == nil && n >= 1 && n <= len(req.Candidates):
			return req.Candidates[n-1], nil
		}

		if t.maxAttempts > 0 && attempt >= t.maxAttempts {
			return nil, errors.ChoiceCanceled("too many invalid answers")
		}
		_, _ = fmt.Fprintf(t.out, "%q is not a choice\n", answer)
		if err != nil {
			return nil, errors.ChoiceCanceled("input closed")
		}
	}
}

func (t *Terminal) render(req *progression.ChoiceRequest) {
	_, _ = fmt.Fprintln(t.out, t.out.String(req.Prompt).Bold())
	for i, c := range req.Candidates {
		_, _ = fmt.Fprintf(t.out, "  %d) %s", i+1, c.Name)
		if c.Cost > 0 {
			_, _ = fmt.Fprintf(t.out, " (%d EP)", c.Cost)
		}
		_, _ = fmt.Fprintln(t.out)
	}
	if req.Optional {
		_, _ = fmt.Fprintln(t.out, "  0) skip")
	}
	_, _ = fmt.Fprintln(t.out, t.out.String("  q) cancel").Faint())
}
