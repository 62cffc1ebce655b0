package pairwise

import (
	"github.com/stretchr/testify/mock"
)

type Mock_Engine struct {
	mock.Mock
}

func (m *Mock_Engine) Close() error {
	ret := m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Engine) PossiblePairs(candidates []string) []Pair {
	ret := m.Called(candidates)

	var r0 []Pair
	if rf, ok := ret.Get(0).(func(candidates []string) []Pair); ok {
		r0 = rf(candidates)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]Pair)
		}
	}

	return r0
}

func (m *Mock_Engine) RemainingPairs(candidates []string, votes []Vote) []Pair {
	ret := m.Called(candidates, votes)

	var r0 []Pair
	if rf, ok := ret.Get(0).(func(candidates []string, votes []Vote) []Pair); ok {
		r0 = rf(candidates, votes)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]Pair)
		}
	}

	return r0
}

func (m *Mock_Engine) LatestVotes(votes []Vote) []Vote {
	ret := m.Called(votes)

	var r0 []Vote
	if rf, ok := ret.Get(0).(func(votes []Vote) []Vote); ok {
		r0 = rf(votes)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]Vote)
		}
	}

	return r0
}

func (m *Mock_Engine) UpdateVotes(ballot Vote, votes []Vote) []Vote {
	ret := m.Called(ballot, votes)

	var r0 []Vote
	if rf, ok := ret.Get(0).(func(ballot Vote, votes []Vote) []Vote); ok {
		r0 = rf(ballot, votes)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]Vote)
		}
	}

	return r0
}

func (m *Mock_Engine) NextBallot(candidates []string, votes []Vote) (Pair, bool) {
	ret := m.Called(candidates, votes)

	var r0 Pair
	if rf, ok := ret.Get(0).(func(candidates []string, votes []Vote) Pair); ok {
		r0 = rf(candidates, votes)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(Pair)
		}
	}

	return r0, ret.Bool(1)
}

func (m *Mock_Engine) Ranking(candidates []string, votes []Vote) []string {
	ret := m.Called(candidates, votes)

	var r0 []string
	if rf, ok := ret.Get(0).(func(candidates []string, votes []Vote) []string); ok {
		r0 = rf(candidates, votes)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	return r0
}

func (m *Mock_Engine) Scores(candidates []string, votes []Vote) []Score {
	ret := m.Called(candidates, votes)

	var r0 []Score
	if rf, ok := ret.Get(0).(func(candidates []string, votes []Vote) []Score); ok {
		r0 = rf(candidates, votes)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]Score)
		}
	}

	return r0
}

func (m *Mock_Engine) Validate(candidates []string, ballot Vote) error {
	ret := m.Called(candidates, ballot)

	var r0 error
	if rf, ok := ret.Get(0).(func(candidates []string, ballot Vote) error); ok {
		r0 = rf(candidates, ballot)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
