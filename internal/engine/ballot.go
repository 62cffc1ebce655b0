package engine

import (
	"sort"

	"github.com/cafebazaar/pairwise/pkg/pairwise"
)

type rankedPair struct {
	pair     pairwise.Pair
	minVotes int
	maxVotes int
}

// NextBallot picks the remaining pair whose outcome, either way, grows the
// vote set the most. The second result is false once every pair is voted.
func NextBallot(candidates []string, votes []pairwise.Vote) (pairwise.Pair, bool) {
	remaining := RemainingPairs(candidates, votes)
	if len(remaining) == 0 {
		return pairwise.Pair{}, false
	}

	options := make([]rankedPair, len(remaining))
	for i, pair := range remaining {
		options[i] = rankedPair{
			pair:     pair,
			minVotes: MinNewVotes(pair, votes),
			maxVotes: MaxNewVotes(pair, votes),
		}
	}

	// Ascending and stable; the last element is the pick, so later pairs win ties.
	sort.SliceStable(options, func(i, j int) bool {
		if options[i].minVotes != options[j].minVotes {
			return options[i].minVotes < options[j].minVotes
		}

		return options[i].maxVotes < options[j].maxVotes
	})

	return options[len(options)-1].pair, true
}
