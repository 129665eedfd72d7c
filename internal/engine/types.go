package engine

import (
	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Decision is the outcome of one class rule for one record
type Decision struct {
	AbilityID string
	Eligible  bool
	// Rule names the check that decided, e.g. "requires_ability"
	Rule string
	// Reason explains a rejection for display
	Reason string
}

// PurchasableInput contains the character and the catalog to evaluate
type PurchasableInput struct {
	Character *entities.CharacterState
	Catalog   *catalog.Catalog
	// Aux resolves owned ids that live outside Catalog
	Aux []*catalog.Catalog
}

// PurchasableOutput lists the eligible records in catalog order
type PurchasableOutput struct {
	AbilityIDs []string
	Records    []*entities.AbilityRecord
	// Decisions holds the trace of every record not owned yet, in catalog order
	Decisions []Decision
}

// EvaluateInput names a single record to evaluate
type EvaluateInput struct {
	Character *entities.CharacterState
	Catalog   *catalog.Catalog
	Aux       []*catalog.Catalog
	AbilityID string
}

// EvaluateOutput contains the decision for the record
type EvaluateOutput struct {
	Record   *entities.AbilityRecord
	Decision Decision
}

// ClassStat is a derived class value such as a druid's Hjerteslag
type ClassStat struct {
	CatalogID string
	Class     entities.ClassTag
	Name      string
	Value     int
	// Contributors counts the owned abilities that added to Value
	Contributors int
}

// CalculateStatsInput contains the character and the class catalogs
type CalculateStatsInput struct {
	Character *entities.CharacterState
	Catalogs  []*catalog.Catalog
}

// CalculateStatsOutput contains one stat per catalog with a formula
type CalculateStatsOutput struct {
	Stats []ClassStat
}

// SheetEntry is one line of the general ability list
type SheetEntry struct {
	AbilityID string
	Name      string
	// Level is the numeric suffix of a leveled ability, 0 when not leveled
	Level int
}

// ClassSection groups the owned abilities of one class catalog
type ClassSection struct {
	CatalogID string
	Name      string
	Class     entities.ClassTag
	// GradeAbilities holds "<name> Grad N" lines collapsed to the highest grade
	GradeAbilities []string
	Abilities      []string
	Stat           *ClassStat
}

// SummarizeInput contains the character and every catalog to summarize
type SummarizeInput struct {
	Character *entities.CharacterState
	Base      *catalog.Catalog
	Classes   []*catalog.Catalog
}

// SummarizeOutput is the character sheet content
type SummarizeOutput struct {
	General []SheetEntry
	Classes []ClassSection
}
