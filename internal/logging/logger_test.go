package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/logging"
)

type LoggerTestSuite struct {
	suite.Suite
}

func (s *LoggerTestSuite) TestNewWithWriter() {
	buf := &bytes.Buffer{}
	logger := logging.NewWithWriter(buf, slog.LevelInfo)

	logger.DebugContext(context.Background(), "hidden")
	logger.InfoContext(context.Background(), "purchase rejected",
		"character_id", "char-1",
		"error", "not enough EP")

	s.NotContains(buf.String(), "hidden")
	s.Contains(buf.String(), "character_id=char-1")
	s.Contains(buf.String(), `err="not enough EP"`)
}

func (s *LoggerTestSuite) TestParseLevel() {
	testCases := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
	}
	for _, tc := range testCases {
		s.Run(tc.in, func() {
			got, err := logging.ParseLevel(tc.in)
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}

	s.Run("unknown", func() {
		_, err := logging.ParseLevel("loud")
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *LoggerTestSuite) TestNewNop() {
	s.NotPanics(func() {
		logging.NewNop().Info("discarded")
	})
}

func TestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}
