package testutils

import (
	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/builders"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Eldrin Skovgaard"

// CreateTestBaseCatalog creates a small general catalog with the class triggers
// and the leveled abilities used by the sheet tests
func CreateTestBaseCatalog() *catalog.Catalog {
	b := builders.NewCatalogBuilder(entities.BaseCatalogID, entities.ClassGeneral)
	b.With(
		builders.NewAbilityRecordBuilder("ability_styrke").WithName("Styrke").WithCost(200),
		builders.NewAbilityRecordBuilder("ability_ekstra_livspoint_1").WithName("Ekstra livspoint 1").WithCost(50),
		builders.NewAbilityRecordBuilder("ability_ekstra_livspoint_2").WithName("Ekstra livspoint 2").WithCost(50).
			RequiresAbility("ability_ekstra_livspoint_1"),
		builders.NewAbilityRecordBuilder("ability_koordination_1").WithName("Koordination 1").WithCost(40),
		builders.NewAbilityRecordBuilder("ability_koordination_2").WithName("Koordination 2").WithCost(40).
			RequiresAbility("ability_koordination_1"),
		builders.NewAbilityRecordBuilder("ability_klatre").WithName("Klatre").WithCost(30),
		builders.NewAbilityRecordBuilder("ability_afstandsvaaben").WithName("Afstandsvåben").WithCost(60),
		builders.NewAbilityRecordBuilder("ability_kamptraening").WithName("Kamptræning").WithCost(100),
	)
	for _, u := range entities.CatalogUnlocks {
		if u.Trigger == "ability_kamptraening" {
			continue
		}
		b.With(builders.NewAbilityRecordBuilder(u.Trigger).WithName(u.Name).WithCost(100))
	}
	return b.Build()
}

// CreateTestPriestCatalog creates a priest catalog with two gods and common and sol spells
func CreateTestPriestCatalog() *catalog.Catalog {
	return builders.NewCatalogBuilder("praest", entities.ClassPriest).
		With(
			builders.NewAbilityRecordBuilder("god_sol").WithType("priest_god").WithCost(0),
			builders.NewAbilityRecordBuilder("god_maane").WithType("priest_god").WithCost(0),
			builders.NewAbilityRecordBuilder("priest_spell_velsignelse").WithName("Velsignelse").
				WithType("priest_spell").WithSchool(entities.SchoolCommon).WithGrade(1).WithCost(20),
			builders.NewAbilityRecordBuilder("priest_spell_lysstraale").WithName("Lysstråle").
				WithType("priest_spell").WithSchool("sol").WithGrade(1).WithCost(20),
			builders.NewAbilityRecordBuilder("priest_spell_skygge").WithName("Skygge").
				WithType("priest_spell").WithSchool("maane").WithGrade(1).WithCost(20),
			builders.NewAbilityRecordBuilder("priest_spell_solild").WithName("Solild").
				WithType("priest_spell").WithSchool("sol").WithGrade(2).WithCost(40).
				RequiresAbility("priest_spell_lysstraale"),
		).
		Build()
}
