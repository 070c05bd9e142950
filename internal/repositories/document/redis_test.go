package document

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type testDocument struct {
	Entries map[string]int `json:"entries"`
}

type RedisStoreTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	store  Store
}

func (s *RedisStoreTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	store, err := NewRedis(&RedisConfig{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.store = store
}

func (s *RedisStoreTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (s *RedisStoreTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&RedisConfig{})
	s.Error(err)
}

func (s *RedisStoreTestSuite) TestSaveAndLoad() {
	err := s.store.Save(context.Background(), &SaveInput{
		Name:     "players",
		Document: &testDocument{Entries: map[string]int{"a": 1, "b": 2}},
	})
	s.Require().NoError(err)

	var loaded testDocument
	err = s.store.Load(context.Background(), &LoadInput{
		Name:   "players",
		Target: &loaded,
	})
	s.Require().NoError(err)
	s.Equal(map[string]int{"a": 1, "b": 2}, loaded.Entries)

	// Stored under a single key
	s.True(s.mr.Exists("document:players"))
}

func (s *RedisStoreTestSuite) TestSaveReplacesWholeDocument() {
	ctx := context.Background()
	s.Require().NoError(s.store.Save(ctx, &SaveInput{
		Name:     "sessions",
		Document: &testDocument{Entries: map[string]int{"a": 1, "b": 2}},
	}))
	s.Require().NoError(s.store.Save(ctx, &SaveInput{
		Name:     "sessions",
		Document: &testDocument{Entries: map[string]int{"c": 3}},
	}))

	var loaded testDocument
	s.Require().NoError(s.store.Load(ctx, &LoadInput{Name: "sessions", Target: &loaded}))
	s.Equal(map[string]int{"c": 3}, loaded.Entries)
}

func (s *RedisStoreTestSuite) TestLoadMissingDocument() {
	var loaded testDocument
	err := s.store.Load(context.Background(), &LoadInput{
		Name:   "missing",
		Target: &loaded,
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrDocumentNotFound)
}

func (s *RedisStoreTestSuite) TestLoadCorruptDocument() {
	s.Require().NoError(s.mr.Set("document:players", "{not json"))

	var loaded testDocument
	err := s.store.Load(context.Background(), &LoadInput{
		Name:   "players",
		Target: &loaded,
	})
	s.Require().Error(err)
	s.NotErrorIs(err, ErrDocumentNotFound)
}

func (s *RedisStoreTestSuite) TestRejectsInvalidInput() {
	ctx := context.Background()
	s.Error(s.store.Save(ctx, nil))
	s.Error(s.store.Save(ctx, &SaveInput{Name: "", Document: &testDocument{}}))
	s.Error(s.store.Save(ctx, &SaveInput{Name: "../escape", Document: &testDocument{}}))
	s.Error(s.store.Load(ctx, &LoadInput{Name: "players"}))
}
