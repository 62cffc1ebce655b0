package engine

import (
	"github.com/cafebazaar/pairwise/pkg/pairwise"
)

// UpdateVotes folds ballot into votes together with its one-hop
// implications: whoever beat the winner also beats the loser, and the winner
// also beats whoever the loser beat. Implications that would pit a candidate
// against itself are dropped.
//
// Within a single call the first occurrence of a pair wins, with the ballot
// and its implications ahead of any earlier vote on the same pair. They are
// appended after the surviving votes so the result stays chronological.
func UpdateVotes(ballot pairwise.Vote, votes []pairwise.Vote) []pairwise.Vote {
	winner, loser := ballot.Winner(), ballot.Loser()

	fresh := []pairwise.Vote{ballot}
	for _, v := range votes {
		if v.Loser() == winner && v.Winner() != loser {
			fresh = append(fresh, pairwise.Vote{v.Winner(), loser})
		}
	}
	for _, v := range votes {
		if v.Winner() == loser && v.Loser() != winner {
			fresh = append(fresh, pairwise.Vote{winner, v.Loser()})
		}
	}

	fresh = uniqueVotes(fresh, nil)
	replaced := make(map[pairwise.Pair]struct{}, len(fresh))
	for _, v := range fresh {
		replaced[pairKey(v)] = struct{}{}
	}

	result := uniqueVotes(votes, replaced)
	return append(result, fresh...)
}

// MinNewVotes is the size of the vote set after casting ballot in its less
// informative orientation.
func MinNewVotes(ballot pairwise.Vote, votes []pairwise.Vote) int {
	a, b := newVoteCounts(ballot, votes)
	if a < b {
		return a
	}

	return b
}

// MaxNewVotes is the size of the vote set after casting ballot in its more
// informative orientation.
func MaxNewVotes(ballot pairwise.Vote, votes []pairwise.Vote) int {
	a, b := newVoteCounts(ballot, votes)
	if a > b {
		return a
	}

	return b
}

func newVoteCounts(ballot pairwise.Vote, votes []pairwise.Vote) (int, int) {
	return len(UpdateVotes(ballot, votes)), len(UpdateVotes(ballot.Reversed(), votes))
}

// uniqueVotes keeps the first vote of every pair not listed in exclude.
func uniqueVotes(votes []pairwise.Vote, exclude map[pairwise.Pair]struct{}) []pairwise.Vote {
	seen := make(map[pairwise.Pair]struct{}, len(votes))
	result := make([]pairwise.Vote, 0, len(votes))

	for _, v := range votes {
		key := pairKey(v)
		if _, ok := exclude[key]; ok {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		result = append(result, v)
	}

	return result
}
