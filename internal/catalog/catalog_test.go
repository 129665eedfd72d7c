package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	catalogmock "github.com/KirkDiggler/rpg-progression/internal/catalog/mock"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

const druidJSON = `{
  "class": "druid",
  "name": "Druideevner",
  "abilities": [
    {"id": "druid_ability_grad_1", "name": "Druide Grad 1", "cost": 0, "type": "druid_ability", "grade": 1, "prerequisite": null},
    {"id": "druid_spell_rod", "name": "Rod", "cost": 50, "type": "druid_spell", "grade": 1,
     "prerequisite": {"requires_ability": "druid_ability_grad_1"}}
  ]
}`

const warriorYAML = `
- id: warrior_ability_level_1_strength
  name: Styrkens vej
  cost: 100
  type: warrior_ability
  grade: 1
  discipline: styrke
- id: warrior_spell_muskelbundt
  name: Muskelbundt
  cost: 50
  type: warrior_spell
  grade: 1
  discipline: styrke
`

type CatalogTestSuite struct {
	suite.Suite
	ctx context.Context
	dir string
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dir = s.T().TempDir()
}

func (s *CatalogTestSuite) writeFile(name, content string) {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, name), []byte(content), 0o600))
}

func (s *CatalogTestSuite) TestNewRejectsDuplicates() {
	_, err := catalog.New(&catalog.Config{
		ID:    "standardevner",
		Class: entities.ClassGeneral,
		Records: []entities.AbilityRecord{
			{ID: "a", Cost: 10},
			{ID: "a", Cost: 20},
		},
	})
	s.Require().Error(err)
	s.True(errors.IsParseError(err))
}

func (s *CatalogTestSuite) TestNewKeepsOrder() {
	c, err := catalog.New(&catalog.Config{
		ID:    "standardevner",
		Class: entities.ClassGeneral,
		Records: []entities.AbilityRecord{
			{ID: "c"}, {ID: "a"}, {ID: "b"},
		},
	})
	s.Require().NoError(err)
	s.Equal("Standardevner", c.Name())

	ids := make([]string, 0, c.Len())
	for _, r := range c.Records() {
		ids = append(ids, r.ID)
	}
	s.Equal([]string{"c", "a", "b"}, ids)

	r, ok := c.Get("a")
	s.True(ok)
	s.Equal("a", r.ID)
	s.False(c.Contains("zzz"))
}

func (s *CatalogTestSuite) TestNewValidation() {
	_, err := catalog.New(&catalog.Config{Class: entities.ClassGeneral})
	s.True(errors.IsInvalidArgument(err))

	_, err = catalog.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestFileSourceJSONEnvelope() {
	s.writeFile("druide.json", druidJSON)

	src, err := catalog.NewFile(&catalog.FileConfig{Dir: s.dir})
	s.Require().NoError(err)

	out, err := src.Load(s.ctx, catalog.LoadInput{CatalogID: "druide"})
	s.Require().NoError(err)
	s.Equal(entities.ClassDruid, out.Catalog.Class())
	s.Equal(2, out.Catalog.Len())

	spell, ok := out.Catalog.Get("druid_spell_rod")
	s.Require().True(ok)
	s.Equal("druid_ability_grad_1", spell.Prerequisite.RequiresAbility)

	stat, ok := out.Catalog.StatFormula()
	s.True(ok)
	s.Equal("Hjerteslag", stat.Name)
}

func (s *CatalogTestSuite) TestFileSourceYAMLList() {
	s.writeFile("kriger.yaml", warriorYAML)

	src, err := catalog.NewFile(&catalog.FileConfig{Dir: s.dir})
	s.Require().NoError(err)

	out, err := src.Load(s.ctx, catalog.LoadInput{CatalogID: "kriger"})
	s.Require().NoError(err)
	s.Equal(entities.ClassWarrior, out.Catalog.Class())
	s.Equal("Krigerevner", out.Catalog.Name())

	r, ok := out.Catalog.Get("warrior_spell_muskelbundt")
	s.Require().True(ok)
	s.Equal("styrke", r.Discipline)
	s.Equal(entities.KindSpell, r.Kind())
}

func (s *CatalogTestSuite) TestFileSourceLegacyName() {
	s.writeFile("præst.json", `[{"id": "god_sol", "name": "Sol", "cost": 0, "type": "god"}]`)

	src, err := catalog.NewFile(&catalog.FileConfig{Dir: s.dir})
	s.Require().NoError(err)

	out, err := src.Load(s.ctx, catalog.LoadInput{CatalogID: "praest"})
	s.Require().NoError(err)
	s.Equal(entities.ClassPriest, out.Catalog.Class())
}

func (s *CatalogTestSuite) TestFileSourceOverrideAndStat() {
	s.writeFile("custom.json", `{
	  "class": "wizard",
	  "stat": {"name": "Mana", "base": 10, "terms": [{"match": "wizard_spell", "kind": "grade", "multiplier": 2}]},
	  "abilities": []
	}`)

	src, err := catalog.NewFile(&catalog.FileConfig{
		Dir:   s.dir,
		Files: map[string]string{"trolddom": "custom.json"},
	})
	s.Require().NoError(err)

	out, err := src.Load(s.ctx, catalog.LoadInput{CatalogID: "trolddom"})
	s.Require().NoError(err)

	stat, ok := out.Catalog.StatFormula()
	s.True(ok)
	s.Equal(10, stat.Base)
	s.Equal(2, stat.Terms[0].Multiplier)
}

func (s *CatalogTestSuite) TestFileSourceErrors() {
	src, err := catalog.NewFile(&catalog.FileConfig{Dir: s.dir})
	s.Require().NoError(err)

	s.Run("missing file", func() {
		_, err := src.Load(s.ctx, catalog.LoadInput{CatalogID: "heks"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("malformed json", func() {
		s.writeFile("runesmed.json", `[{"id": "x", "cost": "free"}]`)
		_, err := src.Load(s.ctx, catalog.LoadInput{CatalogID: "runesmed"})
		s.True(errors.IsParseError(err))
	})

	s.Run("malformed prerequisite", func() {
		s.writeFile("shaman.json", `[{"id": "x", "cost": 1, "prerequisite": {"grade": "high"}}]`)
		_, err := src.Load(s.ctx, catalog.LoadInput{CatalogID: "shaman"})
		s.True(errors.IsParseError(err))
	})

	s.Run("unknown class", func() {
		s.writeFile("alkymi.json", `{"class": "bard", "abilities": []}`)
		_, err := src.Load(s.ctx, catalog.LoadInput{CatalogID: "alkymi"})
		s.True(errors.IsParseError(err))
	})

	s.Run("empty dir config", func() {
		_, err := catalog.NewFile(&catalog.FileConfig{})
		s.Error(err)
	})
}

func (s *CatalogTestSuite) TestLoadRegistryKeepsGoingOnFailure() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	base, err := catalog.New(&catalog.Config{
		ID:      entities.BaseCatalogID,
		Class:   entities.ClassGeneral,
		Records: []entities.AbilityRecord{{ID: "a", Cost: 200}},
	})
	s.Require().NoError(err)

	src := catalogmock.NewMockSource(ctrl)
	src.EXPECT().
		Load(s.ctx, catalog.LoadInput{CatalogID: entities.BaseCatalogID}).
		Return(&catalog.LoadOutput{Catalog: base}, nil)
	src.EXPECT().
		Load(s.ctx, catalog.LoadInput{CatalogID: "kriger"}).
		Return(nil, errors.ParseErrorf("bad file"))

	registry, err := catalog.LoadRegistry(s.ctx, &catalog.LoadRegistryInput{
		Source:     src,
		CatalogIDs: []string{entities.BaseCatalogID, "kriger"},
	})
	s.Require().Error(err)
	s.True(errors.IsParseError(err))
	s.Require().NotNil(registry)

	warrior, ok := registry.Get("kriger")
	s.Require().True(ok)
	s.Equal(0, warrior.Len())
	s.Equal(entities.ClassWarrior, warrior.Class())

	rec, owner, ok := registry.Lookup("a")
	s.True(ok)
	s.Equal("a", rec.ID)
	s.Equal(entities.BaseCatalogID, owner.ID())
	s.Len(registry.Others(entities.BaseCatalogID), 1)
}

func (s *CatalogTestSuite) TestMemorySource() {
	c := catalog.Empty("heks", entities.ClassWitch)
	src := catalog.NewMemory(c)

	out, err := src.Load(s.ctx, catalog.LoadInput{CatalogID: "heks"})
	s.Require().NoError(err)
	s.Same(c, out.Catalog)

	_, err = src.Load(s.ctx, catalog.LoadInput{CatalogID: "druide"})
	s.True(errors.IsNotFound(err))
}
