package pairwise

import (
	"io"
)

// Engine is the stateless pairwise comparison core. Implementations never
// mutate their arguments.
type Engine interface {
	io.Closer

	PossiblePairs(candidates []string) []Pair
	RemainingPairs(candidates []string, votes []Vote) []Pair
	LatestVotes(votes []Vote) []Vote
	UpdateVotes(ballot Vote, votes []Vote) []Vote
	NextBallot(candidates []string, votes []Vote) (Pair, bool)
	Ranking(candidates []string, votes []Vote) []string
	Scores(candidates []string, votes []Vote) []Score
	Validate(candidates []string, ballot Vote) error
}

type Score struct {
	Candidate string
	Wins      int
	Earned    int
	Offered   int
}
