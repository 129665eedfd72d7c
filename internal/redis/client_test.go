package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	goredis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-progression/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func (s *ClientTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
}

func (s *ClientTestSuite) TearDownTest() {
	s.mr.Close()
}

func (s *ClientTestSuite) TestNewClient() {
	s.Run("requires an endpoint", func() {
		_, err := redis.NewClient("", nil)
		s.Require().Error(err)
	})

	s.Run("talks to the server", func() {
		client, err := redis.NewClient(s.mr.Addr(), &redis.Options{MaxRetries: 1})
		s.Require().NoError(err)
		defer func() { _ = client.Close() }()

		s.Require().NoError(client.Set(context.Background(), "k", "v", 0).Err())
		got, err := s.mr.Get("k")
		s.Require().NoError(err)
		s.Equal("v", got)
	})
}

func (s *ClientTestSuite) TestConnect() {
	s.Run("empty list", func() {
		_, err := redis.Connect(" , ", nil)
		s.Require().Error(err)
	})

	s.Run("single address", func() {
		client, err := redis.Connect(s.mr.Addr(), nil)
		s.Require().NoError(err)
		defer func() { _ = client.Close() }()

		_, ok := client.(*goredis.Client)
		s.True(ok)
	})

	s.Run("address list is a cluster", func() {
		client, err := redis.Connect("10.0.0.1:6379, 10.0.0.2:6379", nil)
		s.Require().NoError(err)
		defer func() { _ = client.Close() }()

		_, ok := client.(*goredis.ClusterClient)
		s.True(ok)
	})
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
