package engine

import (
	"sort"

	"github.com/cafebazaar/pairwise/pkg/pairwise"
)

// Wins counts the votes in which candidate is the winner. Votes are not
// deduplicated.
func Wins(votes []pairwise.Vote, candidate string) int {
	result := 0
	for _, vote := range votes {
		if vote.Winner() == candidate {
			result++
		}
	}

	return result
}

// PointsEarned counts the pairs candidate won, using only the latest vote of
// each pair.
func PointsEarned(candidate string, allVotes []pairwise.Vote) int {
	return Wins(LatestVotes(allVotes), candidate)
}

// PointsOffered counts the pairs candidate took part in, using only the latest
// vote of each pair.
func PointsOffered(candidate string, allVotes []pairwise.Vote) int {
	result := 0
	for _, vote := range LatestVotes(allVotes) {
		if vote.Involves(candidate) {
			result++
		}
	}

	return result
}

// GetRanking orders candidates by descending wins. The order comes from a
// stable ascending sort that is then reversed, so candidates with equal wins
// end up in reverse input order.
func GetRanking(candidates []string, votes []pairwise.Vote) []string {
	wins := make(map[string]int, len(candidates))
	for _, candidate := range candidates {
		wins[candidate] = Wins(votes, candidate)
	}

	ranking := append([]string{}, candidates...)
	sort.SliceStable(ranking, func(i, j int) bool {
		return wins[ranking[i]] < wins[ranking[j]]
	})

	for i, j := 0, len(ranking)-1; i < j; i, j = i+1, j-1 {
		ranking[i], ranking[j] = ranking[j], ranking[i]
	}

	return ranking
}
