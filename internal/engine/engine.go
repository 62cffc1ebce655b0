package engine

import (
	"github.com/cafebazaar/pairwise/pkg/pairwise"
)

type pairwiseEngine struct{}

// New returns an Engine backed by the package level functions. It keeps no
// state between calls.
func New() pairwise.Engine {
	return pairwiseEngine{}
}

func (pairwiseEngine) PossiblePairs(candidates []string) []pairwise.Pair {
	return PossiblePairs(candidates)
}

func (pairwiseEngine) RemainingPairs(candidates []string, votes []pairwise.Vote) []pairwise.Pair {
	return RemainingPairs(candidates, votes)
}

func (pairwiseEngine) LatestVotes(votes []pairwise.Vote) []pairwise.Vote {
	return LatestVotes(votes)
}

func (pairwiseEngine) UpdateVotes(ballot pairwise.Vote, votes []pairwise.Vote) []pairwise.Vote {
	return UpdateVotes(ballot, votes)
}

func (pairwiseEngine) NextBallot(candidates []string, votes []pairwise.Vote) (pairwise.Pair, bool) {
	return NextBallot(candidates, votes)
}

func (pairwiseEngine) Ranking(candidates []string, votes []pairwise.Vote) []string {
	return GetRanking(candidates, votes)
}

func (pairwiseEngine) Scores(candidates []string, votes []pairwise.Vote) []pairwise.Score {
	result := make([]pairwise.Score, 0, len(candidates))
	for _, candidate := range candidates {
		result = append(result, pairwise.Score{
			Candidate: candidate,
			Wins:      Wins(votes, candidate),
			Earned:    PointsEarned(candidate, votes),
			Offered:   PointsOffered(candidate, votes),
		})
	}

	return result
}

func (pairwiseEngine) Validate(candidates []string, ballot pairwise.Vote) error {
	return Validate(candidates, ballot)
}

func (pairwiseEngine) Close() error {
	return nil
}
