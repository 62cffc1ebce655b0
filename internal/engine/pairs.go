package engine

import (
	"github.com/cafebazaar/pairwise/pkg/pairwise"
)

// PairsEqual reports whether a and b hold the same two candidates,
// regardless of who won.
func PairsEqual(a, b pairwise.Vote) bool {
	return (a[0] == b[0] && a[1] == b[1]) || (a[0] == b[1] && a[1] == b[0])
}

// PossiblePairs pairs every candidate with each candidate listed after it.
func PossiblePairs(candidates []string) []pairwise.Pair {
	if len(candidates) < 2 {
		return []pairwise.Pair{}
	}

	result := make([]pairwise.Pair, 0, len(candidates)*(len(candidates)-1)/2)
	for i, first := range candidates {
		for _, second := range candidates[i+1:] {
			result = append(result, pairwise.Pair{first, second})
		}
	}

	return result
}

// LatestVotes keeps the most recent vote of every pair, in chronological order.
func LatestVotes(allVotes []pairwise.Vote) []pairwise.Vote {
	seen := make(map[pairwise.Pair]struct{}, len(allVotes))
	var reversed []pairwise.Vote

	for i := len(allVotes) - 1; i >= 0; i-- {
		key := pairKey(allVotes[i])
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		reversed = append(reversed, allVotes[i])
	}

	result := make([]pairwise.Vote, len(reversed))
	for i, vote := range reversed {
		result[len(reversed)-1-i] = vote
	}

	return result
}

// RemainingPairs returns the possible pairs nobody has voted on yet.
func RemainingPairs(candidates []string, allVotes []pairwise.Vote) []pairwise.Pair {
	voted := make(map[pairwise.Pair]struct{}, len(allVotes))
	for _, vote := range allVotes {
		voted[pairKey(vote)] = struct{}{}
	}

	result := []pairwise.Pair{}
	for _, pair := range PossiblePairs(candidates) {
		if _, ok := voted[pairKey(pair)]; !ok {
			result = append(result, pair)
		}
	}

	return result
}

// pairKey maps both orientations of a pair onto the same value.
func pairKey(v pairwise.Vote) pairwise.Pair {
	if v[1] < v[0] {
		return v.Reversed()
	}

	return v
}
