package entities

import "strings"

// BaseCatalogID is the general catalog every character can reach
const BaseCatalogID = "standardevner"

// BaseCatalogName is the display name of the base catalog
const BaseCatalogName = "Standardevner"

// CatalogUnlock maps a trigger ability to the class catalog it opens
type CatalogUnlock struct {
	Trigger   string
	CatalogID string
	Name      string
	Class     ClassTag
}

// CatalogUnlocks is the fixed unlock table in menu order
var CatalogUnlocks = []CatalogUnlock{
	{Trigger: "ability_alkymi", CatalogID: "alkymi", Name: "Alkymievner", Class: ClassAlchemist},
	{Trigger: "ability_guddommelig_vassal", CatalogID: "paladin", Name: "Paladinevner", Class: ClassPaladin},
	{Trigger: "ability_hellig_ed", CatalogID: "praest", Name: "Præsteevner", Class: ClassPriest},
	{Trigger: "ability_kaste_skrive_magi", CatalogID: "trolddom", Name: "Trolddomsevner", Class: ClassWizard},
	{Trigger: "ability_shamanisme", CatalogID: "shaman", Name: "Shamanevner", Class: ClassShaman},
	{Trigger: "ability_skyggepagt", CatalogID: "heks", Name: "Hekseevner", Class: ClassWitch},
	{Trigger: "ability_vogter_af_naturens_sjael", CatalogID: "druide", Name: "Druideevner", Class: ClassDruid},
	{Trigger: "ability_kamptraening", CatalogID: "kriger", Name: "Krigerevner", Class: ClassWarrior},
	{Trigger: "ability_runesmedning", CatalogID: "runesmed", Name: "Runesmedevner", Class: ClassRunesmith},
}

// UnlockFor returns the unlock triggered by an ability id
func UnlockFor(abilityID string) (CatalogUnlock, bool) {
	for _, u := range CatalogUnlocks {
		if u.Trigger == abilityID {
			return u, true
		}
	}
	return CatalogUnlock{}, false
}

// UnlockForCatalog returns the unlock entry of a class catalog
func UnlockForCatalog(catalogID string) (CatalogUnlock, bool) {
	for _, u := range CatalogUnlocks {
		if u.CatalogID == catalogID {
			return u, true
		}
	}
	return CatalogUnlock{}, false
}

// UnlockForClass returns the unlock entry of a class
func UnlockForClass(class ClassTag) (CatalogUnlock, bool) {
	for _, u := range CatalogUnlocks {
		if u.Class == class {
			return u, true
		}
	}
	return CatalogUnlock{}, false
}

// ClassForCatalog returns the class tag bound to a catalog id
func ClassForCatalog(catalogID string) ClassTag {
	if u, ok := UnlockForCatalog(catalogID); ok {
		return u.Class
	}
	return ClassGeneral
}

// GodSchool strips the god prefix, "god_sol" -> "sol"
func GodSchool(godID string) string {
	return strings.TrimPrefix(godID, "god_")
}
