package pairwise

import (
	"io"
)

// State is everything the store holds for a single session.
type State struct {
	Candidates []string `json:"candidates"`
	Votes      []Vote   `json:"votes"`
}

func (s *State) Clone() *State {
	if s == nil {
		return &State{}
	}

	return &State{
		Candidates: append([]string{}, s.Candidates...),
		Votes:      append([]Vote{}, s.Votes...),
	}
}

type Backend interface {
	io.Closer

	Load(session string) (*State, error)
	Save(session string, state *State) error
	Delete(session string) error
	Address() string
}

// Equal compares candidates and votes element by element; nil and empty
// lists are equal.
func (s *State) Equal(other *State) bool {
	if s == nil || other == nil {
		return s == other
	}

	if len(s.Candidates) != len(other.Candidates) || len(s.Votes) != len(other.Votes) {
		return false
	}

	for i := range s.Candidates {
		if s.Candidates[i] != other.Candidates[i] {
			return false
		}
	}

	for i := range s.Votes {
		if s.Votes[i] != other.Votes[i] {
			return false
		}
	}

	return true
}
