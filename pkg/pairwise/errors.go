package pairwise

import (
	"errors"
)

var (
	ErrClosed            = errors.New("closed")
	ErrConsistency       = errors.New("consistency not satisfied")
	ErrNotFound          = errors.New("not found")
	ErrInvalidSession    = errors.New("invalid session")
	ErrInvalidCandidate  = errors.New("invalid candidate")
	ErrInvalidVote       = errors.New("invalid vote")
	ErrCandidateExists   = errors.New("candidate already exists")
	ErrTooManyCandidates = errors.New("too many candidates")
)
