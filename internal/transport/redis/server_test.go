package redis_test

import (
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/phayes/freeport"

	"github.com/cafebazaar/pairwise/pkg/pairwise"

	"github.com/cafebazaar/pairwise/internal/transport/redis"
	redisClient "github.com/go-redis/redis"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const SESSION = "favourites"

type RedisTransportTestSuite struct {
	suite.Suite

	port   int
	server pairwise.Server
}

func TestRedisTransportTestSuite(t *testing.T) {
	suite.Run(t, new(RedisTransportTestSuite))
}

func (s *RedisTransportTestSuite) TestAddShouldAddEveryCandidate() {
	core := &pairwise.Mock_Service{}
	for _, candidate := range []string{"one", "two"} {
		core.On("AddCandidate", mock.Anything, &pairwise.AddCandidateRequest{
			Session:   SESSION,
			Candidate: candidate,
		}).Once().Return(nil)
	}

	s.runServer(core)
	result, err := s.makeClient().Do("PW.ADD", SESSION, "one", "two").Int64()
	s.Nil(err)
	s.Equal(int64(2), result)
	core.AssertExpectations(s.T())
}

func (s *RedisTransportTestSuite) TestAddShouldReturnEndpointError() {
	core := &pairwise.Mock_Service{}
	core.On("AddCandidate", mock.Anything, mock.Anything).Return(
		status.Error(codes.AlreadyExists, "candidate already exists"))

	s.runServer(core)
	err := s.makeClient().Do("PW.ADD", SESSION, "one").Err()
	s.NotNil(err)
	s.Contains(err.Error(), "candidate already exists")
}

func (s *RedisTransportTestSuite) TestAddShouldRejectRepeatedCandidates() {
	core := &pairwise.Mock_Service{}

	s.runServer(core)
	err := s.makeClient().Do("PW.ADD", SESSION, "one", "two", "one").Err()
	s.NotNil(err)
	s.Contains(err.Error(), "repeated")
	core.AssertNotCalled(s.T(), "AddCandidate", mock.Anything, mock.Anything)
}

func (s *RedisTransportTestSuite) TestAddShouldRejectEmptyCandidates() {
	core := &pairwise.Mock_Service{}

	s.runServer(core)
	err := s.makeClient().Do("PW.ADD", SESSION, "one", " ").Err()
	s.NotNil(err)
	s.Contains(err.Error(), "empty")
	core.AssertNotCalled(s.T(), "AddCandidate", mock.Anything, mock.Anything)
}

func (s *RedisTransportTestSuite) TestAddShouldReportPartialProgress() {
	core := &pairwise.Mock_Service{}
	core.On("AddCandidate", mock.Anything, &pairwise.AddCandidateRequest{
		Session:   SESSION,
		Candidate: "one",
	}).Once().Return(nil)
	core.On("AddCandidate", mock.Anything, &pairwise.AddCandidateRequest{
		Session:   SESSION,
		Candidate: "two",
	}).Once().Return(status.Error(codes.AlreadyExists, "candidate already exists"))

	s.runServer(core)
	err := s.makeClient().Do("PW.ADD", SESSION, "one", "two").Err()
	s.NotNil(err)
	s.Contains(err.Error(), "added 1 of 2")
	s.Contains(err.Error(), "candidate already exists")
	core.AssertExpectations(s.T())
}

func (s *RedisTransportTestSuite) TestAddShouldRequireCandidate() {
	s.runServer(&pairwise.Mock_Service{})
	err := s.makeClient().Do("PW.ADD", SESSION).Err()
	s.NotNil(err)
}

func (s *RedisTransportTestSuite) TestCandidatesShouldReturnArray() {
	core := &pairwise.Mock_Service{}
	core.On("Candidates", mock.Anything, &pairwise.CandidatesRequest{Session: SESSION}).Return(
		&pairwise.CandidatesResponse{Candidates: []string{"one", "two", "three"}}, nil)

	s.runServer(core)
	result, err := s.makeClient().Do("PW.CANDIDATES", SESSION).Result()
	s.Nil(err)
	s.Equal([]interface{}{"one", "two", "three"}, result)
}

func (s *RedisTransportTestSuite) TestCandidatesShouldReturnEmptyArrayForNewSession() {
	core := &pairwise.Mock_Service{}
	core.On("Candidates", mock.Anything, mock.Anything).Return(&pairwise.CandidatesResponse{}, nil)

	s.runServer(core)
	result, err := s.makeClient().Do("PW.CANDIDATES", SESSION).Result()
	s.Nil(err)
	s.Empty(result)
}

func (s *RedisTransportTestSuite) TestVoteShouldProvideBallot() {
	core := &pairwise.Mock_Service{}
	core.On("Cast", mock.Anything, &pairwise.CastRequest{
		Session: SESSION,
		Ballot:  pairwise.Vote{"2", "3"},
	}).Once().Return(&pairwise.CastResponse{Next: &pairwise.Pair{"1", "4"}, Remaining: 1}, nil)

	s.runServer(core)
	result, err := s.makeClient().Do("PW.VOTE", SESSION, "2", "3").Result()
	s.Nil(err)
	s.Equal([]interface{}{"1", "4"}, result)
	core.AssertExpectations(s.T())
}

func (s *RedisTransportTestSuite) TestVoteShouldReturnNilWhenComplete() {
	core := &pairwise.Mock_Service{}
	core.On("Cast", mock.Anything, mock.Anything).Return(&pairwise.CastResponse{}, nil)

	s.runServer(core)
	err := s.makeClient().Do("PW.VOTE", SESSION, "2", "3").Err()
	s.Equal(redisClient.Nil, err)
}

func (s *RedisTransportTestSuite) TestVoteShouldRequireWinnerAndLoser() {
	s.runServer(&pairwise.Mock_Service{})
	err := s.makeClient().Do("PW.VOTE", SESSION, "2").Err()
	s.NotNil(err)
	s.Contains(err.Error(), "expected 4 arguments")
}

func (s *RedisTransportTestSuite) TestVoteShouldReturnEndpointError() {
	core := &pairwise.Mock_Service{}
	core.On("Cast", mock.Anything, mock.Anything).Return(nil,
		status.Error(codes.InvalidArgument, "unknown candidate"))

	s.runServer(core)
	err := s.makeClient().Do("PW.VOTE", SESSION, "1", "9").Err()
	s.NotNil(err)
	s.Contains(err.Error(), "unknown candidate")
}

func (s *RedisTransportTestSuite) TestNextShouldReturnPair() {
	core := &pairwise.Mock_Service{}
	core.On("NextBallot", mock.Anything, &pairwise.NextBallotRequest{Session: SESSION}).Return(
		&pairwise.NextBallotResponse{Ballot: &pairwise.Pair{"2", "4"}}, nil)

	s.runServer(core)
	result, err := s.makeClient().Do("PW.NEXT", SESSION).Result()
	s.Nil(err)
	s.Equal([]interface{}{"2", "4"}, result)
}

func (s *RedisTransportTestSuite) TestNextShouldReturnNilWhenComplete() {
	core := &pairwise.Mock_Service{}
	core.On("NextBallot", mock.Anything, mock.Anything).Return(
		&pairwise.NextBallotResponse{Complete: true}, nil)

	s.runServer(core)
	err := s.makeClient().Do("PW.NEXT", SESSION).Err()
	s.Equal(redisClient.Nil, err)
}

func (s *RedisTransportTestSuite) TestRemainingShouldReturnInteger() {
	core := &pairwise.Mock_Service{}
	core.On("Results", mock.Anything, &pairwise.ResultsRequest{Session: SESSION}).Return(
		&pairwise.ResultsResponse{Remaining: 2}, nil)

	s.runServer(core)
	result, err := s.makeClient().Do("PW.REMAINING", SESSION).Int64()
	s.Nil(err)
	s.Equal(int64(2), result)
}

func (s *RedisTransportTestSuite) TestRankingShouldReturnArray() {
	core := &pairwise.Mock_Service{}
	core.On("Results", mock.Anything, &pairwise.ResultsRequest{Session: SESSION}).Return(
		&pairwise.ResultsResponse{Ranking: []string{"1", "2", "3", "4"}, Final: true}, nil)

	s.runServer(core)
	result, err := s.makeClient().Do("PW.RANKING", SESSION).Result()
	s.Nil(err)
	s.Equal([]interface{}{"1", "2", "3", "4"}, result)
}

func (s *RedisTransportTestSuite) TestRankingShouldReturnEndpointError() {
	core := &pairwise.Mock_Service{}
	core.On("Results", mock.Anything, mock.Anything).Return(nil,
		status.Error(codes.Internal, "backend failure"))

	s.runServer(core)
	err := s.makeClient().Do("PW.RANKING", SESSION).Err()
	s.NotNil(err)
	s.Contains(err.Error(), "backend failure")
}

func (s *RedisTransportTestSuite) TestScoresShouldFlattenEveryCandidate() {
	core := &pairwise.Mock_Service{}
	core.On("Results", mock.Anything, mock.Anything).Return(&pairwise.ResultsResponse{
		Scores: []pairwise.Score{
			{Candidate: "1", Wins: 2, Earned: 2, Offered: 2},
			{Candidate: "2", Wins: 0, Earned: 0, Offered: 1},
		},
	}, nil)

	s.runServer(core)
	result, err := s.makeClient().Do("PW.SCORES", SESSION).Result()
	s.Nil(err)
	s.Equal([]interface{}{"1", "2", "2", "2", "2", "0", "0", "1"}, result)
}

func (s *RedisTransportTestSuite) TestResetShouldReturnOK() {
	core := &pairwise.Mock_Service{}
	core.On("Reset", mock.Anything, &pairwise.ResetRequest{Session: SESSION}).Once().Return(nil)

	s.runServer(core)
	result, err := s.makeClient().Do("PW.RESET", SESSION).Result()
	s.Nil(err)
	s.Equal("OK", result)
	core.AssertExpectations(s.T())
}

func (s *RedisTransportTestSuite) TestShouldSupportPingCommnand() {
	s.runServer(&pairwise.Mock_Service{})
	result, err := s.makeClient().Ping().Result()
	s.Nil(err)
	s.Equal("PONG", result)
}

func (s *RedisTransportTestSuite) TestShouldSupportEchoCommand() {
	s.runServer(&pairwise.Mock_Service{})
	result, err := s.makeClient().Echo("hello").Result()
	s.Nil(err)
	s.Equal("hello", result)
}

func (s *RedisTransportTestSuite) TestShouldRejectUnknownCommand() {
	s.runServer(&pairwise.Mock_Service{})
	err := s.makeClient().Do("PW.UNKNOWN", SESSION).Err()
	s.NotNil(err)
	s.Contains(err.Error(), "command not supported")
}

func (s *RedisTransportTestSuite) runServer(core pairwise.Service) {
	s.server = redis.New(core, s.port)
	s.Nil(s.server.Start())
}

func (s *RedisTransportTestSuite) makeClient() *redisClient.Client {
	return redisClient.NewClient(&redisClient.Options{Addr: fmt.Sprintf("127.0.0.1:%d", s.port)})
}

func (s *RedisTransportTestSuite) SetupTest() {
	var err error

	s.port, err = freeport.GetFreePort()
	s.Nil(err)
	s.server = nil
}

func (s *RedisTransportTestSuite) TearDownTest() {
	if s.server != nil {
		s.Nil(s.server.Close())
	}
}
