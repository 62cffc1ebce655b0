package static

import (
	"math/rand"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cafebazaar/pairwise/internal/voting"
	"github.com/cafebazaar/pairwise/pkg/pairwise"
)

// staticCluster replicates sessions over a fixed set of backends. Writes and
// reads both need a majority of nodes: a read only succeeds when a majority
// returns the same state, and nodes disagreeing with it are repaired.
type staticCluster struct {
	backends      []pairwise.Backend
	votingFactory pairwise.VotingFactory
}

type Option func(s *staticCluster)

func WithVotingFactory(votingFactory pairwise.VotingFactory) Option {
	return func(s *staticCluster) {
		s.votingFactory = votingFactory
	}
}

func New(backends []pairwise.Backend, options ...Option) pairwise.Backend {
	result := staticCluster{
		backends:      backends,
		votingFactory: voting.New,
	}

	for _, option := range options {
		option(&result)
	}

	return result
}

type asyncLoadResult struct {
	state *pairwise.State
	err   error
	node  pairwise.Backend
}

// voteItem is what a node answered for a session; notFound marks a node
// that does not know it.
type voteItem struct {
	notFound bool
	state    *pairwise.State
}

func (s staticCluster) Address() string {
	return "static"
}

func (s staticCluster) Load(session string) (*pairwise.State, error) {
	allNodes := s.allNodes()
	if len(allNodes) == 0 {
		return nil, errors.Wrap(pairwise.ErrConsistency, "no backends available")
	}

	results := make([]asyncLoadResult, len(allNodes))
	var wg sync.WaitGroup

	for i, node := range allNodes {
		wg.Add(1)
		go func(i int, node pairwise.Backend) {
			defer wg.Done()

			state, err := node.Load(session)
			results[i] = asyncLoadResult{state: state, err: err, node: node}
		}(i, node)
	}
	wg.Wait()

	votes := s.votingFactory(s.voteComparer)
	var lastErr error

	for _, result := range results {
		switch {
		case result.err == nil:
			votes.Add(voteItem{state: result.state}, result.node, 1)

		case result.err == pairwise.ErrNotFound:
			votes.Add(voteItem{notFound: true}, result.node, 1)

		default:
			if lastErr != nil {
				s.logError(lastErr, "unexpected error while loading session")
			}

			lastErr = result.err
		}
	}

	maxVoteValue, maxVote := votes.MaxVote()
	if maxVote < s.majority(len(allNodes)) {
		if votes.Empty() && lastErr != nil {
			return nil, lastErr
		}

		return nil, errors.Wrapf(pairwise.ErrConsistency,
			"%d of %d backends agree on session %v", maxVote, len(allNodes), session)
	}

	if lastErr != nil {
		s.logError(lastErr, "unexpected error while loading session")
	}

	winner := maxVoteValue.(voteItem)
	s.repair(session, winner, votes.Losers())

	if winner.notFound {
		return nil, pairwise.ErrNotFound
	}

	return winner.state.Clone(), nil
}

func (s staticCluster) Save(session string, state *pairwise.State) error {
	return s.write(func(node pairwise.Backend) error {
		return node.Save(session, state)
	})
}

func (s staticCluster) Delete(session string) error {
	return s.write(func(node pairwise.Backend) error {
		return node.Delete(session)
	})
}

// repair writes the state a majority agreed on back to the nodes that
// answered something else.
func (s staticCluster) repair(session string, winner voteItem, losers []interface{}) {
	for _, loser := range losers {
		node := loser.(pairwise.Backend)

		var err error
		if winner.notFound {
			err = node.Delete(session)
		} else {
			err = node.Save(session, winner.state)
		}

		if err != nil {
			logrus.WithError(err).WithField("node", node.Address()).Error("unexpected error during read repair")
		}
	}
}

func (s staticCluster) write(operator func(node pairwise.Backend) error) error {
	allNodes := s.allNodes()
	if len(allNodes) == 0 {
		return errors.Wrap(pairwise.ErrConsistency, "no backends available")
	}

	errs := make([]error, len(allNodes))
	var wg sync.WaitGroup

	for i, node := range allNodes {
		wg.Add(1)
		go func(i int, node pairwise.Backend) {
			defer wg.Done()

			errs[i] = operator(node)
		}(i, node)
	}
	wg.Wait()

	acknowledged := 0
	for i, err := range errs {
		if err != nil {
			logrus.WithError(err).WithField("node", allNodes[i].Address()).Error("unexpected error while writing session")
			continue
		}

		acknowledged++
	}

	if acknowledged < s.majority(len(allNodes)) {
		return errors.Wrapf(pairwise.ErrConsistency, "%d of %d backends acknowledged", acknowledged, len(allNodes))
	}

	return nil
}

func (s staticCluster) Close() error {
	var lastErr error

	for _, backend := range s.backends {
		if err := backend.Close(); err != nil {
			if lastErr != nil {
				logrus.WithError(lastErr).Error("unexpected error while closing backends")
			}

			lastErr = err
		}
	}

	return lastErr
}

func (s staticCluster) voteComparer(x, y interface{}) bool {
	left := x.(voteItem)
	right := y.(voteItem)

	if left.notFound != right.notFound {
		return false
	}

	if left.notFound {
		return true
	}

	return left.state.Equal(right.state)
}

func (s staticCluster) logError(err error, message string) {
	logrus.WithError(err).Error(message)
}

func (s staticCluster) allNodes() []pairwise.Backend {
	return s.randomize(s.backends)
}

func (s staticCluster) randomize(backends []pairwise.Backend) []pairwise.Backend {
	result := append([]pairwise.Backend{}, backends...)

	for i := 0; i < len(result); i++ {
		j := i + rand.Intn(len(result)-i)
		temp := result[i]
		result[i] = result[j]
		result[j] = temp
	}

	return result
}

func (s staticCluster) majority(count int) int {
	return (count / 2) + 1
}
