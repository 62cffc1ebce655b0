package redis_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis"
	redisBackend "github.com/cafebazaar/pairwise/internal/backend/redis"
	"github.com/cafebazaar/pairwise/pkg/pairwise"
	"github.com/go-redis/redis"
	"github.com/stretchr/testify/suite"
)

const (
	SESSION = "session"
	KEY     = "pairwise:session"
)

type RedisBackendTestSuite struct {
	suite.Suite

	db      *miniredis.Miniredis
	client  *redis.Client
	backend pairwise.Backend
}

func TestRedisBackendTestSuite(t *testing.T) {
	suite.Run(t, new(RedisBackendTestSuite))
}

func (s *RedisBackendTestSuite) TestSaveShouldStoreStateAsJSON() {
	s.Nil(s.backend.Save(SESSION, s.makeState()))
	s.db.CheckGet(s.T(), KEY, `{"candidates":["one","two","three"],"votes":[["one","two"],["three","one"]]}`)
}

func (s *RedisBackendTestSuite) TestSaveShouldOverwriteExistingSession() {
	s.Nil(s.db.Set(KEY, "_"))
	s.Nil(s.backend.Save(SESSION, s.makeState()))
	state, err := s.backend.Load(SESSION)
	s.Nil(err)
	s.Equal(s.makeState(), state)
}

func (s *RedisBackendTestSuite) TestSaveShouldNotEmployTTLByDefault() {
	s.Nil(s.backend.Save(SESSION, s.makeState()))
	s.Zero(s.db.TTL(KEY))
}

func (s *RedisBackendTestSuite) TestSaveShouldEmployExpirationIfProvided() {
	backend := redisBackend.New(s.client, "localhost", redisBackend.WithExpiration(1*time.Hour))
	s.Nil(backend.Save(SESSION, s.makeState()))
	ttl := s.db.TTL(KEY)
	s.True(ttl > 59*time.Minute)
	s.True(ttl < 61*time.Minute)
}

func (s *RedisBackendTestSuite) TestSaveShouldUseKeyPrefix() {
	backend := redisBackend.New(s.client, "localhost", redisBackend.WithKeyPrefix("ranking/"))
	s.Nil(backend.Save(SESSION, s.makeState()))
	s.True(s.db.Exists("ranking/" + SESSION))
	s.False(s.db.Exists(KEY))
}

func (s *RedisBackendTestSuite) TestLoadShouldReturnNotFoundIfSessionDoesNotExist() {
	_, err := s.backend.Load(SESSION)
	s.Equal(pairwise.ErrNotFound, err)
}

func (s *RedisBackendTestSuite) TestLoadShouldDecodeStoredState() {
	s.Nil(s.db.Set(KEY, `{"candidates":["a","b"],"votes":[["b","a"]]}`))
	state, err := s.backend.Load(SESSION)
	s.Nil(err)
	s.Equal(&pairwise.State{
		Candidates: []string{"a", "b"},
		Votes:      []pairwise.Vote{{"b", "a"}},
	}, state)
}

func (s *RedisBackendTestSuite) TestLoadShouldFailOnCorruptedState() {
	s.Nil(s.db.Set(KEY, "not json"))
	_, err := s.backend.Load(SESSION)
	s.NotNil(err)
	s.NotEqual(pairwise.ErrNotFound, err)
}

func (s *RedisBackendTestSuite) TestDeleteShouldRemoveSession() {
	s.Nil(s.backend.Save(SESSION, s.makeState()))
	s.Nil(s.backend.Delete(SESSION))
	s.False(s.db.Exists(KEY))
}

func (s *RedisBackendTestSuite) TestDeleteShouldSucceedIfSessionDoesNotExist() {
	s.Nil(s.backend.Delete(SESSION))
}

func (s *RedisBackendTestSuite) TestClosedBackendShouldReturnErrClosed() {
	s.Nil(s.backend.Close())
	_, err := s.backend.Load(SESSION)
	s.Equal(pairwise.ErrClosed, err)
	s.Equal(pairwise.ErrClosed, s.backend.Save(SESSION, s.makeState()))
	s.Equal(pairwise.ErrClosed, s.backend.Delete(SESSION))
}

func (s *RedisBackendTestSuite) TestAddressShouldBeReported() {
	s.Equal("localhost", s.backend.Address())
}

func (s *RedisBackendTestSuite) makeState() *pairwise.State {
	return &pairwise.State{
		Candidates: []string{"one", "two", "three"},
		Votes:      []pairwise.Vote{{"one", "two"}, {"three", "one"}},
	}
}

func (s *RedisBackendTestSuite) SetupTest() {
	var err error

	s.db, err = miniredis.Run()
	if err != nil {
		s.FailNow("failed to create miniredis db")
	}

	s.client = redis.NewClient(&redis.Options{Addr: s.db.Addr()})
	s.backend = redisBackend.New(s.client, "localhost")
}

func (s *RedisBackendTestSuite) TearDownTest() {
	err := s.backend.Close()
	if err != nil {
		s.FailNow("failed to close backend")
	}

	s.db.Close()
}
