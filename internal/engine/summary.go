package engine

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// ExtraManaID marks wizard mana purchases, which are never collapsed as levels
const ExtraManaID = "wizard_ekstra_mana"

var gradePattern = regexp.MustCompile(`^(.*?)\s*Grad\s+(\d+)\s*$`)

func (e *engine) Summarize(ctx context.Context, input *SummarizeInput) (*SummarizeOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	out := &SummarizeOutput{}
	if input.Base != nil {
		out.General = generalEntries(input.Character, input.Base)
	}

	var classes []*catalog.Catalog
	for _, c := range input.Classes {
		if c != nil {
			classes = append(classes, c)
		}
	}

	stats, err := e.CalculateStats(ctx, &CalculateStatsInput{Character: input.Character, Catalogs: classes})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate stats")
	}
	byCatalog := make(map[string]ClassStat, len(stats.Stats))
	for _, s := range stats.Stats {
		byCatalog[s.CatalogID] = s
	}

	for _, c := range classes {
		section, ok := classSection(input.Character, c)
		if !ok {
			continue
		}
		if s, ok := byCatalog[c.ID()]; ok {
			stat := s
			section.Stat = &stat
		}
		out.Classes = append(out.Classes, section)
	}

	return out, nil
}

// splitLevel splits ability_koordination_2 into ability_koordination and 2
func splitLevel(abilityID string) (string, int, bool) {
	i := strings.LastIndex(abilityID, "_")
	if i <= 0 || i == len(abilityID)-1 {
		return abilityID, 0, false
	}
	level, err := strconv.Atoi(abilityID[i+1:])
	if err != nil || level < 0 {
		return abilityID, 0, false
	}
	return abilityID[:i], level, true
}

func generalEntries(char *entities.CharacterState, base *catalog.Catalog) []SheetEntry {
	var order []string
	best := make(map[string]int)

	for _, o := range char.Owned {
		key, level := o.ID, 0
		if !strings.Contains(o.ID, ExtraManaID) {
			if b, l, ok := splitLevel(o.ID); ok {
				key, level = b, l
			}
		}
		prev, seen := best[key]
		if !seen {
			order = append(order, key)
		}
		if !seen || level > prev {
			best[key] = level
		}
	}

	var entries []SheetEntry
	for _, key := range order {
		level := best[key]
		id := key
		if level > 0 {
			id = fmt.Sprintf("%s_%d", key, level)
		}
		r, ok := base.Get(id)
		if !ok {
			continue
		}
		entries = append(entries, SheetEntry{AbilityID: id, Name: r.Name, Level: level})
	}
	return entries
}

func classSection(char *entities.CharacterState, c *catalog.Catalog) (ClassSection, bool) {
	section := ClassSection{CatalogID: c.ID(), Name: c.Name(), Class: c.Class()}

	var gradeOrder []string
	gradeBest := make(map[string]int)

	for _, o := range char.Owned {
		r, ok := c.Get(o.ID)
		if !ok {
			continue
		}
		m := gradePattern.FindStringSubmatch(r.Name)
		if m == nil {
			section.Abilities = append(section.Abilities, r.Name)
			continue
		}
		grade, _ := strconv.Atoi(m[2])
		if prev, seen := gradeBest[m[1]]; !seen {
			gradeOrder = append(gradeOrder, m[1])
			gradeBest[m[1]] = grade
		} else if grade > prev {
			gradeBest[m[1]] = grade
		}
	}

	for _, name := range gradeOrder {
		section.GradeAbilities = append(section.GradeAbilities, fmt.Sprintf("%s Grad %d", name, gradeBest[name]))
	}

	return section, len(section.Abilities)+len(section.GradeAbilities) > 0
}
