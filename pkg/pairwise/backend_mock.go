package pairwise

import (
	"github.com/stretchr/testify/mock"
)

type Mock_Backend struct {
	mock.Mock
}

func (m *Mock_Backend) Close() error {
	ret := m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Backend) Load(session string) (*State, error) {
	ret := m.Called(session)

	var r0 *State
	if rf, ok := ret.Get(0).(func(session string) *State); ok {
		r0 = rf(session)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*State)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(session string) error); ok {
		r1 = rf(session)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_Backend) Save(session string, state *State) error {
	ret := m.Called(session, state)

	var r0 error
	if rf, ok := ret.Get(0).(func(session string, state *State) error); ok {
		r0 = rf(session, state)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Backend) Delete(session string) error {
	ret := m.Called(session)

	var r0 error
	if rf, ok := ret.Get(0).(func(session string) error); ok {
		r0 = rf(session)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Backend) Address() string {
	ret := m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.String(0)
	}

	return r0
}
