// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// AbilityRecordBuilder provides a fluent interface for building test AbilityRecord instances
type AbilityRecordBuilder struct {
	record entities.AbilityRecord
}

// NewAbilityRecordBuilder creates a new builder with minimal defaults
func NewAbilityRecordBuilder(id string) *AbilityRecordBuilder {
	return &AbilityRecordBuilder{
		record: entities.AbilityRecord{
			ID:   id,
			Name: id,
			Cost: 10,
		},
	}
}

// WithName sets the display name
func (b *AbilityRecordBuilder) WithName(name string) *AbilityRecordBuilder {
	b.record.Name = name
	return b
}

// WithCost sets the EP cost
func (b *AbilityRecordBuilder) WithCost(cost int) *AbilityRecordBuilder {
	b.record.Cost = cost
	return b
}

// WithType sets the ability type
func (b *AbilityRecordBuilder) WithType(t entities.AbilityType) *AbilityRecordBuilder {
	b.record.Type = t
	return b
}

// WithGrade sets the record grade
func (b *AbilityRecordBuilder) WithGrade(grade int) *AbilityRecordBuilder {
	b.record.Grade = grade
	return b
}

// WithSchool sets the school
func (b *AbilityRecordBuilder) WithSchool(school string) *AbilityRecordBuilder {
	b.record.School = school
	return b
}

// WithDiscipline sets the warrior discipline
func (b *AbilityRecordBuilder) WithDiscipline(discipline string) *AbilityRecordBuilder {
	b.record.Discipline = discipline
	return b
}

// WithPrerequisite replaces the prerequisite
func (b *AbilityRecordBuilder) WithPrerequisite(p *entities.Prerequisite) *AbilityRecordBuilder {
	b.record.Prerequisite = p
	return b
}

// RequiresAbility sets the single required ability
func (b *AbilityRecordBuilder) RequiresAbility(id string) *AbilityRecordBuilder {
	b.prerequisite().RequiresAbility = id
	return b
}

// RequiresAbilities sets the abilities that must all be owned
func (b *AbilityRecordBuilder) RequiresAbilities(ids ...string) *AbilityRecordBuilder {
	b.prerequisite().RequiresAbilities = ids
	return b
}

// RequiresOneOf sets the abilities of which one must be owned
func (b *AbilityRecordBuilder) RequiresOneOf(ids ...string) *AbilityRecordBuilder {
	b.prerequisite().RequiresOneOf = ids
	return b
}

// RequiresSpell sets the single required spell
func (b *AbilityRecordBuilder) RequiresSpell(id string) *AbilityRecordBuilder {
	b.prerequisite().RequiresSpell = id
	return b
}

// WithPrerequisiteGrade sets the prerequisite grade
func (b *AbilityRecordBuilder) WithPrerequisiteGrade(grade int) *AbilityRecordBuilder {
	b.prerequisite().Grade = entities.IntPtr(grade)
	return b
}

// WithLowerLevelRecipes sets the alchemist lower grade recipe requirement
func (b *AbilityRecordBuilder) WithLowerLevelRecipes(n int) *AbilityRecordBuilder {
	b.prerequisite().LowerLevelRecipesRequired = entities.IntPtr(n)
	return b
}

// Build returns the record
func (b *AbilityRecordBuilder) Build() entities.AbilityRecord {
	r := b.record
	if r.Prerequisite != nil {
		p := *r.Prerequisite
		r.Prerequisite = &p
	}
	return r
}

func (b *AbilityRecordBuilder) prerequisite() *entities.Prerequisite {
	if b.record.Prerequisite == nil {
		b.record.Prerequisite = &entities.Prerequisite{}
	}
	return b.record.Prerequisite
}
