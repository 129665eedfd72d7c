package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

func (e *engine) CalculateStats(ctx context.Context, input *CalculateStatsInput) (*CalculateStatsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	out := &CalculateStatsOutput{}
	for _, c := range input.Catalogs {
		if c == nil {
			continue
		}
		formula, ok := c.StatFormula()
		if !ok {
			continue
		}
		out.Stats = append(out.Stats, computeStat(input.Character, c, formula))
	}

	slog.DebugContext(ctx, "calculated class stats",
		"character_id", input.Character.ID,
		"stats", len(out.Stats))

	return out, nil
}

func computeStat(char *entities.CharacterState, c *catalog.Catalog, f entities.StatFormula) ClassStat {
	stat := ClassStat{
		CatalogID: c.ID(),
		Class:     c.Class(),
		Name:      f.Name,
		Value:     f.Base,
	}

	for _, o := range char.Owned {
		term, ok := matchTerm(f.Terms, o.ID)
		if !ok {
			continue
		}
		if add, ok := termValue(term, o.ID, c); ok {
			stat.Value += add
			stat.Contributors++
		}
	}

	return stat
}

// matchTerm returns the first term whose match is part of the id
func matchTerm(terms []entities.StatTerm, abilityID string) (entities.StatTerm, bool) {
	for _, t := range terms {
		if t.Match != "" && strings.Contains(abilityID, t.Match) {
			return t, true
		}
	}
	return entities.StatTerm{}, false
}

func termValue(t entities.StatTerm, abilityID string, c *catalog.Catalog) (int, bool) {
	switch t.Kind {
	case entities.StatTermTierDigit:
		last := abilityID[len(abilityID)-1]
		if last < '0' || last > '9' {
			return 0, false
		}
		digit := int(last - '0')
		if digit < t.MinDigit || digit > t.MaxDigit {
			return 0, false
		}
		return digit, true
	case entities.StatTermGrade:
		r, ok := c.Get(abilityID)
		if !ok {
			return 0, false
		}
		mult := t.Multiplier
		if mult == 0 {
			mult = 1
		}
		return r.Grade * mult, true
	case entities.StatTermFlat:
		return t.Amount, true
	default:
		return 0, false
	}
}
