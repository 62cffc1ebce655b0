package pairwise

import (
	"context"
	"io"
)

type AddCandidateRequest struct {
	Session   string
	Candidate string
}

type CandidatesRequest struct {
	Session string
}

type CandidatesResponse struct {
	Candidates []string
}

type CastRequest struct {
	Session string
	Ballot  Vote
}

type CastResponse struct {
	Next      *Pair
	Remaining int
}

type NextBallotRequest struct {
	Session string
}

type NextBallotResponse struct {
	Ballot   *Pair
	Complete bool
}

type ResultsRequest struct {
	Session string
}

type ResultsResponse struct {
	Ranking   []string
	Scores    []Score
	Remaining int
	Final     bool
}

type ResetRequest struct {
	Session string
}

type Service interface {
	io.Closer

	AddCandidate(ctx context.Context, request *AddCandidateRequest) error
	Candidates(ctx context.Context, request *CandidatesRequest) (*CandidatesResponse, error)
	Cast(ctx context.Context, request *CastRequest) (*CastResponse, error)
	NextBallot(ctx context.Context, request *NextBallotRequest) (*NextBallotResponse, error)
	Results(ctx context.Context, request *ResultsRequest) (*ResultsResponse, error)
	Reset(ctx context.Context, request *ResetRequest) error
}
