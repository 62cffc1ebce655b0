package pairwise

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Mock_Service struct {
	mock.Mock
}

func (m *Mock_Service) Close() error {
	ret := m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Service) AddCandidate(ctx context.Context, request *AddCandidateRequest) error {
	ret := m.Called(ctx, request)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *AddCandidateRequest) error); ok {
		r0 = rf(ctx, request)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Service) Candidates(ctx context.Context, request *CandidatesRequest) (*CandidatesResponse, error) {
	ret := m.Called(ctx, request)

	var r0 *CandidatesResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *CandidatesRequest) *CandidatesResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*CandidatesResponse)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context, request *CandidatesRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_Service) Cast(ctx context.Context, request *CastRequest) (*CastResponse, error) {
	ret := m.Called(ctx, request)

	var r0 *CastResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *CastRequest) *CastResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*CastResponse)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context, request *CastRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_Service) NextBallot(ctx context.Context, request *NextBallotRequest) (*NextBallotResponse, error) {
	ret := m.Called(ctx, request)

	var r0 *NextBallotResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *NextBallotRequest) *NextBallotResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*NextBallotResponse)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context, request *NextBallotRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_Service) Results(ctx context.Context, request *ResultsRequest) (*ResultsResponse, error) {
	ret := m.Called(ctx, request)

	var r0 *ResultsResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *ResultsRequest) *ResultsResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*ResultsResponse)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context, request *ResultsRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_Service) Reset(ctx context.Context, request *ResetRequest) error {
	ret := m.Called(ctx, request)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *ResetRequest) error); ok {
		r0 = rf(ctx, request)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
