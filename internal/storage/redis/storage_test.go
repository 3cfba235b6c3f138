package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/playerdna/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSaveAndGetFixture() {
	err := s.storage.SaveFixture(s.ctx, "stats.json", []byte(`{"player_name":"Gabe"}`))
	s.Require().NoError(err)

	data, err := s.storage.GetFixture(s.ctx, "stats.json")
	s.Require().NoError(err)
	s.JSONEq(`{"player_name":"Gabe"}`, string(data))
}

func (s *StorageSuite) TestGetFixtureNotFound() {
	_, err := s.storage.GetFixture(s.ctx, "nonexistent.json")
	s.ErrorIs(err, storage.ErrFixtureNotFound)
}

func (s *StorageSuite) TestFixtureKeyLayout() {
	_ = s.storage.SaveFixture(s.ctx, "stats.json", []byte(`{}`))

	s.True(s.mini.Exists("playerdna:fixture:stats.json"))
	members, err := s.mini.Members("playerdna:idx:fixtures")
	s.Require().NoError(err)
	s.Equal([]string{"stats.json"}, members)
}

func (s *StorageSuite) TestListFixtures() {
	_ = s.storage.SaveFixture(s.ctx, "b.json", []byte(`{}`))
	_ = s.storage.SaveFixture(s.ctx, "a.json", []byte(`{}`))

	names, err := s.storage.ListFixtures(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"a.json", "b.json"}, names)
}

func (s *StorageSuite) TestListFixturesSkipsExpired() {
	cfg := DefaultConfig()
	cfg.FixtureTTL = time.Minute
	s.storage.cfg = cfg

	_ = s.storage.SaveFixture(s.ctx, "a.json", []byte(`{}`))
	s.mini.FastForward(2 * time.Minute)

	names, err := s.storage.ListFixtures(s.ctx)
	s.Require().NoError(err)
	s.Empty(names)

	_, err = s.storage.GetFixture(s.ctx, "a.json")
	s.ErrorIs(err, storage.ErrFixtureNotFound)
}

func (s *StorageSuite) TestSaveOverwrites() {
	_ = s.storage.SaveFixture(s.ctx, "a.json", []byte(`{"v":1}`))
	_ = s.storage.SaveFixture(s.ctx, "a.json", []byte(`{"v":2}`))

	data, err := s.storage.GetFixture(s.ctx, "a.json")
	s.Require().NoError(err)
	s.JSONEq(`{"v":2}`, string(data))
}
