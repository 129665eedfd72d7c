package entities

// StatTermKind selects how a matching owned ability adds to a stat
type StatTermKind string

// Stat term kinds
const (
	// StatTermTierDigit adds the last digit of the ability id when it lies in [MinDigit, MaxDigit]
	StatTermTierDigit StatTermKind = "tier_digit"
	// StatTermGrade adds the record grade times Multiplier
	StatTermGrade StatTermKind = "grade"
	// StatTermFlat adds Amount
	StatTermFlat StatTermKind = "flat"
)

// StatTerm contributes to a stat for every owned ability whose id contains Match
type StatTerm struct {
	Match      string       `json:"match" yaml:"match"`
	Kind       StatTermKind `json:"kind" yaml:"kind"`
	Multiplier int          `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
	Amount     int          `json:"amount,omitempty" yaml:"amount,omitempty"`
	MinDigit   int          `json:"min_digit,omitempty" yaml:"min_digit,omitempty"`
	MaxDigit   int          `json:"max_digit,omitempty" yaml:"max_digit,omitempty"`
}

// StatFormula derives a class stat from the owned abilities. Each owned id
// is scored by the first term that matches it.
type StatFormula struct {
	Name  string     `json:"name" yaml:"name"`
	Base  int        `json:"base" yaml:"base"`
	Terms []StatTerm `json:"terms" yaml:"terms"`
}

// DefaultStatFormulas are the class stats used when a catalog carries none
var DefaultStatFormulas = map[ClassTag]StatFormula{
	ClassDruid: {
		Name: "Hjerteslag",
		Base: 2,
		Terms: []StatTerm{
			{Match: "druid_ability", Kind: StatTermTierDigit, MinDigit: 2, MaxDigit: 6},
			{Match: "druid_spell", Kind: StatTermGrade, Multiplier: 1},
		},
	},
	ClassWizard: {
		Name: "Mana",
		Terms: []StatTerm{
			{Match: "wizard_spell", Kind: StatTermGrade, Multiplier: 3},
			{Match: "wizard_ekstra_mana", Kind: StatTermFlat, Amount: 6},
		},
	},
	ClassPriest: {
		Name: "Gudetro",
		Terms: []StatTerm{
			{Match: "priest_spell", Kind: StatTermGrade, Multiplier: 3},
		},
	},
	ClassPaladin: {
		Name: "Tro",
		Terms: []StatTerm{
			{Match: "paladin_spell", Kind: StatTermGrade, Multiplier: 3},
		},
	},
	ClassWitch: {
		Name: "Skyggeskår",
		Base: 1,
		Terms: []StatTerm{
			{Match: "witch_ability", Kind: StatTermTierDigit, MinDigit: 0, MaxDigit: 9},
			{Match: "witch_spell", Kind: StatTermGrade, Multiplier: 1},
		},
	},
}
