// Package engine decides which abilities a character can acquire
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-progression/internal/engine Engine

import (
	"context"
)

// Engine evaluates catalogs against a character. Every method is a pure
// function of its input and never mutates the character.
type Engine interface {
	// Eligibility
	Purchasable(ctx context.Context, input *PurchasableInput) (*PurchasableOutput, error)
	Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error)

	// Presentation data
	CalculateStats(ctx context.Context, input *CalculateStatsInput) (*CalculateStatsOutput, error)
	Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error)
}
