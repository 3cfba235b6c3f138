package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/playerdna/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetFixture() {
	err := s.storage.SaveFixture(s.ctx, "a.json", []byte(`{"a":1}`))
	s.Require().NoError(err)

	data, err := s.storage.GetFixture(s.ctx, "a.json")
	s.Require().NoError(err)
	s.JSONEq(`{"a":1}`, string(data))
}

func (s *StorageSuite) TestGetFixtureNotFound() {
	_, err := s.storage.GetFixture(s.ctx, "missing.json")
	s.ErrorIs(err, storage.ErrFixtureNotFound)
}

func (s *StorageSuite) TestGetFixtureReturnsCopy() {
	_ = s.storage.SaveFixture(s.ctx, "a.json", []byte(`{"a":1}`))

	data, _ := s.storage.GetFixture(s.ctx, "a.json")
	data[0] = 'x'

	again, err := s.storage.GetFixture(s.ctx, "a.json")
	s.Require().NoError(err)
	s.Equal(`{"a":1}`, string(again))
}

func (s *StorageSuite) TestListFixturesSorted() {
	_ = s.storage.SaveFixture(s.ctx, "b.json", []byte(`{}`))
	_ = s.storage.SaveFixture(s.ctx, "a.json", []byte(`{}`))

	names, err := s.storage.ListFixtures(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"a.json", "b.json"}, names)
}

func (s *StorageSuite) TestDeleteFixture() {
	_ = s.storage.SaveFixture(s.ctx, "a.json", []byte(`{}`))
	s.storage.DeleteFixture("a.json")

	_, err := s.storage.GetFixture(s.ctx, "a.json")
	s.ErrorIs(err, storage.ErrFixtureNotFound)
}

func (s *StorageSuite) TestSeedCopiesAllFixtures() {
	_ = s.storage.SaveFixture(s.ctx, "a.json", []byte(`{"a":1}`))
	_ = s.storage.SaveFixture(s.ctx, "b.json", []byte(`[1,2]`))

	dst := New()
	n, err := storage.Seed(s.ctx, dst, s.storage)
	s.Require().NoError(err)
	s.Equal(2, n)

	data, err := dst.GetFixture(s.ctx, "b.json")
	s.Require().NoError(err)
	s.Equal(`[1,2]`, string(data))
}
