package core

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sirupsen/logrus"

	"github.com/cafebazaar/pairwise/pkg/pairwise"
)

// coreService owns the candidate and vote lists of every session. Each
// operation runs a full read-compute-write cycle under a single lock, so the
// engine always sees a consistent snapshot.
type coreService struct {
	engine             pairwise.Engine
	backend            pairwise.Backend
	validateCandidates bool
	maxCandidates      int
	mutex              sync.Mutex
}

type Option func(s *coreService)

func New(engine pairwise.Engine,
	backend pairwise.Backend,
	options ...Option) pairwise.Service {

	result := &coreService{
		engine:             engine,
		backend:            backend,
		validateCandidates: true,
	}

	for _, option := range options {
		option(result)
	}

	return result
}

// WithCandidateValidation controls whether cast ballots must name two
// different, known candidates. Without it foreign candidates silently join
// the vote set.
func WithCandidateValidation(validate bool) Option {
	return func(s *coreService) {
		s.validateCandidates = validate
	}
}

func WithMaxCandidates(maxCandidates int) Option {
	return func(s *coreService) {
		s.maxCandidates = maxCandidates
	}
}

func (s *coreService) AddCandidate(ctx context.Context, request *pairwise.AddCandidateRequest) error {
	if strings.TrimSpace(request.Candidate) == "" {
		return s.convertErrorToGRPC(errors.Wrap(pairwise.ErrInvalidCandidate, "candidate name is empty"))
	}

	return s.convertErrorToGRPC(s.update(ctx, request.Session, func(state *pairwise.State) error {
		for _, candidate := range state.Candidates {
			if candidate == request.Candidate {
				return errors.Wrapf(pairwise.ErrCandidateExists, "%q", request.Candidate)
			}
		}

		if s.maxCandidates > 0 && len(state.Candidates) >= s.maxCandidates {
			return errors.Wrapf(pairwise.ErrTooManyCandidates, "limit is %d", s.maxCandidates)
		}

		state.Candidates = append(state.Candidates, request.Candidate)
		return nil
	}))
}

func (s *coreService) Candidates(ctx context.Context, request *pairwise.CandidatesRequest) (*pairwise.CandidatesResponse, error) {
	state, err := s.read(ctx, request.Session)
	if err != nil {
		return nil, s.convertErrorToGRPC(err)
	}

	return &pairwise.CandidatesResponse{Candidates: state.Candidates}, nil
}

func (s *coreService) Cast(ctx context.Context, request *pairwise.CastRequest) (*pairwise.CastResponse, error) {
	var response pairwise.CastResponse

	err := s.update(ctx, request.Session, func(state *pairwise.State) error {
		if s.validateCandidates {
			if err := s.engine.Validate(state.Candidates, request.Ballot); err != nil {
				return err
			}
		}

		state.Votes = s.engine.UpdateVotes(request.Ballot, state.Votes)

		if next, ok := s.engine.NextBallot(state.Candidates, state.Votes); ok {
			response.Next = &next
		}
		response.Remaining = len(s.engine.RemainingPairs(state.Candidates, state.Votes))

		return nil
	})
	if err != nil {
		return nil, s.convertErrorToGRPC(err)
	}

	logrus.WithFields(logrus.Fields{
		"session":   request.Session,
		"winner":    request.Ballot.Winner(),
		"loser":     request.Ballot.Loser(),
		"remaining": response.Remaining,
	}).Debug("ballot cast")

	return &response, nil
}

func (s *coreService) NextBallot(ctx context.Context, request *pairwise.NextBallotRequest) (*pairwise.NextBallotResponse, error) {
	state, err := s.read(ctx, request.Session)
	if err != nil {
		return nil, s.convertErrorToGRPC(err)
	}

	next, ok := s.engine.NextBallot(state.Candidates, state.Votes)
	if !ok {
		return &pairwise.NextBallotResponse{Complete: true}, nil
	}

	return &pairwise.NextBallotResponse{Ballot: &next}, nil
}

func (s *coreService) Results(ctx context.Context, request *pairwise.ResultsRequest) (*pairwise.ResultsResponse, error) {
	state, err := s.read(ctx, request.Session)
	if err != nil {
		return nil, s.convertErrorToGRPC(err)
	}

	remaining := len(s.engine.RemainingPairs(state.Candidates, state.Votes))

	return &pairwise.ResultsResponse{
		Ranking:   s.engine.Ranking(state.Candidates, state.Votes),
		Scores:    s.engine.Scores(state.Candidates, state.Votes),
		Remaining: remaining,
		Final:     remaining == 0,
	}, nil
}

func (s *coreService) Reset(ctx context.Context, request *pairwise.ResetRequest) error {
	if err := s.begin(ctx, request.Session); err != nil {
		return s.convertErrorToGRPC(err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	err := s.backend.Delete(request.Session)
	if err != nil && err != pairwise.ErrNotFound {
		return s.convertErrorToGRPC(err)
	}

	return nil
}

func (s *coreService) Close() error {
	lastErr := s.backend.Close()
	if err := s.engine.Close(); err != nil {
		if lastErr != nil {
			logrus.WithError(lastErr).Error("unexpected error while closing core service")
		}

		lastErr = err
	}

	return lastErr
}

func (s *coreService) read(ctx context.Context, session string) (*pairwise.State, error) {
	if err := s.begin(ctx, session); err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.load(session)
}

func (s *coreService) update(ctx context.Context, session string, operator func(state *pairwise.State) error) error {
	if err := s.begin(ctx, session); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	state, err := s.load(session)
	if err != nil {
		return err
	}

	if err := operator(state); err != nil {
		return err
	}

	return s.backend.Save(session, state)
}

func (s *coreService) load(session string) (*pairwise.State, error) {
	state, err := s.backend.Load(session)
	if err == pairwise.ErrNotFound {
		return &pairwise.State{}, nil
	}
	if err != nil {
		return nil, err
	}

	return state, nil
}

func (s *coreService) begin(ctx context.Context, session string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if session == "" {
		return pairwise.ErrInvalidSession
	}

	return nil
}

func (s *coreService) convertErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch errors.Cause(err) {
	case pairwise.ErrNotFound:
		return status.Error(codes.NotFound, err.Error())

	case pairwise.ErrInvalidSession, pairwise.ErrInvalidCandidate, pairwise.ErrInvalidVote:
		return status.Error(codes.InvalidArgument, err.Error())

	case pairwise.ErrCandidateExists:
		return status.Error(codes.AlreadyExists, err.Error())

	case pairwise.ErrTooManyCandidates:
		return status.Error(codes.ResourceExhausted, err.Error())

	case pairwise.ErrConsistency:
		return status.Error(codes.Unavailable, err.Error())

	case context.Canceled:
		return status.Error(codes.Canceled, context.Canceled.Error())

	case context.DeadlineExceeded:
		return status.Error(codes.DeadlineExceeded, context.DeadlineExceeded.Error())

	default:
		return status.Error(codes.Internal, err.Error())
	}
}
