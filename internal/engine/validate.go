package engine

import (
	"github.com/pkg/errors"

	"github.com/cafebazaar/pairwise/pkg/pairwise"
)

// Validate checks that ballot compares two different members of candidates.
// None of the other engine functions call it.
func Validate(candidates []string, ballot pairwise.Vote) error {
	if ballot.Winner() == ballot.Loser() {
		return errors.Wrapf(pairwise.ErrInvalidVote, "%q cannot compete with itself", ballot.Winner())
	}

	for _, participant := range ballot {
		if !contains(candidates, participant) {
			return errors.Wrapf(pairwise.ErrInvalidCandidate, "unknown candidate %q", participant)
		}
	}

	return nil
}

func contains(candidates []string, candidate string) bool {
	for _, c := range candidates {
		if c == candidate {
			return true
		}
	}

	return false
}
