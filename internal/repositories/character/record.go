package character

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

const (
	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
)

// Record is the persisted shape of a character. The first seven fields are
// the classic save file; the rest are optional.
type Record struct {
	Name         string         `json:"name"`
	Race         string         `json:"race"`
	LPMax        int            `json:"lp_max"`
	Abilities    []string       `json:"abilities"`
	SpentEP      int            `json:"spent_ep"`
	TotalEP      int            `json:"total_ep"`
	SelectedGod  *string        `json:"selected_god"`
	ID           string         `json:"id,omitempty"`
	AbilityCosts map[string]int `json:"ability_costs,omitempty"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
}

// ToRecord converts a character to its persisted shape
func ToRecord(char *entities.CharacterState) *Record {
	rec := &Record{
		ID:        char.ID,
		Name:      char.Name,
		Race:      char.Race,
		LPMax:     char.LPMax,
		Abilities: make([]string, 0, len(char.Owned)),
		SpentEP:   char.SpentEP,
		TotalEP:   char.TotalEP,
	}
	for _, o := range char.Owned {
		rec.Abilities = append(rec.Abilities, o.ID)
		if o.CostPaid != 0 {
			if rec.AbilityCosts == nil {
				rec.AbilityCosts = make(map[string]int)
			}
			rec.AbilityCosts[o.ID] = o.CostPaid
		}
	}
	if char.HasGod() {
		god := char.SelectedGod
		rec.SelectedGod = &god
	}
	if !char.UpdatedAt.IsZero() {
		ts := char.UpdatedAt.UTC()
		rec.UpdatedAt = &ts
	}
	return rec
}

// ToCharacter restores a character from its persisted shape. id is used
// when the record carries none, as classic save files do.
func (r *Record) ToCharacter(id string) (*entities.CharacterState, error) {
	if r.ID != "" {
		id = r.ID
	}
	if id == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if r.SpentEP < 0 || r.TotalEP < 0 {
		return nil, errors.ParseErrorf("character %s has negative EP", id)
	}
	if r.SpentEP > r.TotalEP {
		return nil, errors.ParseErrorf("character %s spent %d of %d EP", id, r.SpentEP, r.TotalEP)
	}

	char := entities.NewCharacterState(id, r.Name, r.Race)
	char.LPMax = r.LPMax
	char.SpentEP = r.SpentEP
	char.TotalEP = r.TotalEP
	if r.SelectedGod != nil {
		char.SelectedGod = *r.SelectedGod
	}
	if r.UpdatedAt != nil {
		char.UpdatedAt = r.UpdatedAt.UTC()
	}

	seen := make(map[string]bool, len(r.Abilities))
	for _, a := range r.Abilities {
		a = strings.TrimSpace(a)
		if a == "" {
			return nil, errors.ParseErrorf("character %s has an empty ability id", id)
		}
		if seen[a] {
			return nil, errors.ParseErrorf("character %s owns %s twice", id, a)
		}
		seen[a] = true
		char.Owned = append(char.Owned, entities.OwnedAbility{ID: a, CostPaid: r.AbilityCosts[a]})
	}

	char.RebuildDerived()
	return char, nil
}

// Encode marshals a character for storage
func Encode(char *entities.CharacterState) ([]byte, error) {
	data, err := json.MarshalIndent(ToRecord(char), "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character data")
	}
	return data, nil
}

// Decode unmarshals stored character data. Absent fields take the defaults
// of a new character.
func Decode(data []byte, id string) (*entities.CharacterState, error) {
	rec := Record{TotalEP: entities.DefaultTotalEP}
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.WrapParseError(err, fmt.Sprintf("failed to unmarshal character %s", id))
	}
	return rec.ToCharacter(id)
}
