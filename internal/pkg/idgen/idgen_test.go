package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func (s *IDGenTestSuite) TestUUID() {
	gen := idgen.NewUUID("char")

	id := gen.Generate()

	s.True(strings.HasPrefix(id, "char_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "char_"))
	s.NoError(err)
	s.NotEqual(id, gen.Generate())
}

func (s *IDGenTestSuite) TestSequential() {
	gen := idgen.NewSequential("char")

	s.Equal("char_1", gen.Generate())
	s.Equal("char_2", gen.Generate())
	s.Equal("1", idgen.NewSequential("").Generate())
}

func TestIDGenTestSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}
