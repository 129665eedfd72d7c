package choice

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/services/progression"
)

// Skip is the scripted answer that leaves an optional step unanswered
const Skip = "-"

// Scripted answers grant steps from a fixed list of ability ids, used for
// batch runs and tests
type Scripted struct {
	mu      sync.Mutex
	answers []string
	asked   []string
}

// NewScripted creates a chooser that answers with the ids in order
func NewScripted(answers ...string) *Scripted {
	return &Scripted{answers: answers}
}

// Choose returns the candidate named by the next answer. Running out of
// answers cancels the choice.
func (s *Scripted) Choose(_ context.Context, req *progression.ChoiceRequest) (*entities.AbilityRecord, error) {
	if req == nil {
		return nil, errors.InvalidArgument("choice request is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.asked = append(s.asked, req.Prompt)
	if len(s.answers) == 0 {
		return nil, errors.ChoiceCanceled("no scripted answer left")
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]

	if answer == Skip {
		if !req.Optional {
			return nil, errors.ChoiceCanceled("scripted skip of a required choice")
		}
		return nil, nil
	}

	for _, c := range req.Candidates {
		if c.ID == answer {
			return c, nil
		}
	}
	return nil, errors.InvalidArgumentf("scripted answer %s is not a candidate", answer).
		WithMeta("ability_id", answer)
}

// Asked returns the prompts seen so far
func (s *Scripted) Asked() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.asked...)
}

// Remaining returns the answers not used yet
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}
