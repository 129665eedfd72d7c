package character_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	mockclock "github.com/KirkDiggler/rpg-progression/internal/pkg/clock/mock"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
	character "github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/builders"
)

var savedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// RepositoryTestSuite runs the same behavior against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo   func(s *RepositoryTestSuite) character.Repository
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	repo      character.Repository
	cleanup   func()
	dir       string
	client    redisclient.Client
	ctx       context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.mockClock.EXPECT().Now().Return(savedAt).AnyTimes()
	s.ctx = context.Background()
	s.cleanup = func() {}
	s.repo = s.newRepo(s)
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *RepositoryTestSuite) testCharacter() *entities.CharacterState {
	return builders.NewCharacterBuilder().
		WithID("char-1").
		WithName("Astrid").
		WithPurchased("ability_styrke", 200).
		WithPurchased("ability_hellig_ed", 100).
		WithGod("god_sol").
		WithOwned("priest_spell_velsignelse").
		Build()
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	char := s.testCharacter()

	_, err := s.repo.Save(s.ctx, character.SaveInput{Character: char})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char-1"})
	s.Require().NoError(err)

	s.Equal(char.Name, got.Character.Name)
	s.Equal(char.Race, got.Character.Race)
	s.Equal(char.LPMax, got.Character.LPMax)
	s.Equal(char.OwnedIDs(), got.Character.OwnedIDs())
	s.Equal(300, got.Character.SpentEP)
	s.Equal(char.RemainingEP(), got.Character.RemainingEP())
	s.Equal("god_sol", got.Character.SelectedGod)

	paid, ok := got.Character.CostPaid("ability_styrke")
	s.True(ok)
	s.Equal(200, paid)

	s.Run("derived state is rebuilt", func() {
		s.True(got.Character.IsUnlocked("praest"))
		s.True(got.Character.FreeGrantUsed(entities.ClassPriest))
		s.False(got.Character.FreeGrantUsed(entities.ClassWarrior))
	})

	s.Run("save replaces", func() {
		s.Require().NoError(char.AddAbility("ability_klatre", 50))

		_, err := s.repo.Save(s.ctx, character.SaveInput{Character: char})
		s.Require().NoError(err)

		again, err := s.repo.Get(s.ctx, character.GetInput{ID: "char-1"})
		s.Require().NoError(err)
		s.True(again.Character.Owns("ability_klatre"))
		s.Equal(350, again.Character.SpentEP)
	})
}

func (s *RepositoryTestSuite) TestSave_StampsUpdatedAt() {
	char := s.testCharacter()
	char.UpdatedAt = time.Time{}

	out, err := s.repo.Save(s.ctx, character.SaveInput{Character: char})
	s.Require().NoError(err)

	s.Equal(savedAt, out.Character.UpdatedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: char.ID})
	s.Require().NoError(err)
	s.True(savedAt.Equal(got.Character.UpdatedAt))
}

func (s *RepositoryTestSuite) TestValidation() {
	testCases := []struct {
		name string
		call func() error
	}{
		{
			name: "get without id",
			call: func() error {
				_, err := s.repo.Get(s.ctx, character.GetInput{})
				return err
			},
		},
		{
			name: "save nil character",
			call: func() error {
				_, err := s.repo.Save(s.ctx, character.SaveInput{})
				return err
			},
		},
		{
			name: "save without id",
			call: func() error {
				_, err := s.repo.Save(s.ctx, character.SaveInput{Character: &entities.CharacterState{}})
				return err
			},
		},
		{
			name: "delete without id",
			call: func() error {
				_, err := s.repo.Delete(s.ctx, character.DeleteInput{})
				return err
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()

			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RepositoryTestSuite) TestNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestDeleteAndList() {
	for _, id := range []string{"char-b", "char-a", "char-c"} {
		char := builders.NewCharacterBuilder().WithID(id).Build()
		_, err := s.repo.Save(s.ctx, character.SaveInput{Character: char})
		s.Require().NoError(err)
	}

	_, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: "char-b"})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)

	var ids []string
	for _, c := range out.Characters {
		ids = append(ids, c.ID)
	}
	s.Equal([]string{"char-a", "char-c"}, ids)
}

func (s *RepositoryTestSuite) TestList_Empty() {
	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Characters)
}

func TestFileRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(s *RepositoryTestSuite) character.Repository {
			s.dir = s.T().TempDir()
			repo, err := character.NewFile(&character.FileConfig{Dir: s.dir, Clock: s.mockClock})
			s.Require().NoError(err)
			return repo
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(s *RepositoryTestSuite) character.Repository {
			client, cleanup := testutils.CreateTestRedisClient(s.T())
			s.client = client
			s.cleanup = cleanup
			repo, err := character.NewRedis(&character.RedisConfig{Client: client, Clock: s.mockClock})
			s.Require().NoError(err)
			return repo
		},
	})
}

type FileRepositoryTestSuite struct {
	suite.Suite
	dir  string
	repo character.Repository
	ctx  context.Context
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	repo, err := character.NewFile(&character.FileConfig{Dir: s.dir})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *FileRepositoryTestSuite) write(name, content string) {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, name), []byte(content), 0o600))
}

func (s *FileRepositoryTestSuite) TestClassicSaveFile() {
	s.write("astrid.json", `{
    "name": "Astrid",
    "race": "elver",
    "abilities": ["ability_kamptraening", "warrior_ability_level_1_strength"],
    "lp_max": 12,
    "spent_ep": 150,
    "total_ep": 1200,
    "selected_god": null
}`)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "astrid"})
	s.Require().NoError(err)

	char := got.Character
	s.Equal("astrid", char.ID)
	s.Equal("elver", char.Race)
	s.Equal(12, char.LPMax)
	s.Equal(1050, char.RemainingEP())
	s.False(char.HasGod())
	s.True(char.IsUnlocked("kriger"))
	s.True(char.FreeGrantUsed(entities.ClassWarrior))

	paid, ok := char.CostPaid("ability_kamptraening")
	s.True(ok)
	s.Equal(0, paid)
}

func (s *FileRepositoryTestSuite) TestDefaults() {
	s.write("blank.json", `{"name": "Blank", "abilities": []}`)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "blank"})
	s.Require().NoError(err)

	s.Equal(entities.DefaultTotalEP, got.Character.TotalEP)
	s.Equal(0, got.Character.SpentEP)
}

func (s *FileRepositoryTestSuite) TestCorruptFiles() {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "not json", content: `{"name": `},
		{name: "wrong types", content: `{"abilities": "ability_styrke"}`},
		{name: "duplicate ability", content: `{"abilities": ["ability_styrke", "ability_styrke"]}`},
		{name: "overspent", content: `{"abilities": [], "spent_ep": 1200, "total_ep": 1000}`},
		{name: "negative", content: `{"abilities": [], "spent_ep": -1}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.write("broken.json", tc.content)

			_, err := s.repo.Get(s.ctx, character.GetInput{ID: "broken"})

			s.Require().Error(err)
			s.True(errors.IsParseError(err))
		})
	}
}

func (s *FileRepositoryTestSuite) TestRejectsPathIDs() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "../escape"})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestListSkipsOtherFiles() {
	s.write("notes.txt", "not a character")
	s.Require().NoError(os.Mkdir(filepath.Join(s.dir, "sub.json"), 0o750))

	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Characters)
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redisclient.Client
	cleanup func()
	repo    character.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	repo, err := character.NewRedis(&character.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedis_RequiresClient() {
	_, err := character.NewRedis(&character.RedisConfig{})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestListCleansStaleIndex() {
	s.Require().NoError(s.client.SAdd(s.ctx, "character:index", "ghost").Err())

	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Characters)

	members, err := s.client.SMembers(s.ctx, "character:index").Result()
	s.Require().NoError(err)
	s.Empty(members)
}

func (s *RedisRepositoryTestSuite) TestCorruptValue() {
	client, cleanup := testutils.CreateTestRedisClientWithContext(s.T(), func(mr *miniredis.Miniredis) {
		s.Require().NoError(mr.Set("character:bad", "not json"))
	})
	defer cleanup()

	repo, err := character.NewRedis(&character.RedisConfig{Client: client})
	s.Require().NoError(err)

	_, err = repo.Get(s.ctx, character.GetInput{ID: "bad"})

	s.Require().Error(err)
	s.True(errors.IsParseError(err))
}

func (s *RedisRepositoryTestSuite) TestFlush() {
	_, err := s.repo.Save(s.ctx, character.SaveInput{Character: builders.NewCharacterBuilder().Build()})
	s.Require().NoError(err)

	s.Require().NoError(testutils.FlushTestRedis(s.ctx, s.client))

	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Characters)
}

func (s *RedisRepositoryTestSuite) TestStoredShape() {
	char := builders.NewCharacterBuilder().WithID("char-9").WithPurchased("ability_styrke", 200).Build()

	_, err := s.repo.Save(s.ctx, character.SaveInput{Character: char})
	s.Require().NoError(err)

	raw, err := s.client.Get(s.ctx, "character:char-9").Result()
	s.Require().NoError(err)
	s.Contains(raw, `"abilities": [`)
	s.Contains(raw, `"ability_costs": {`)
	s.Contains(raw, `"selected_god": null`)

	member, err := s.client.SIsMember(s.ctx, "character:index", "char-9").Result()
	s.Require().NoError(err)
	s.True(member)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
