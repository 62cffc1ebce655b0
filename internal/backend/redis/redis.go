package redis

import (
	"encoding/json"
	"time"

	"github.com/cafebazaar/pairwise/pkg/pairwise"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

const DefaultKeyPrefix = "pairwise:"

type redisBackend struct {
	client     *redis.Client
	address    string
	keyPrefix  string
	expiration time.Duration
}

type Option func(r *redisBackend)

// WithExpiration makes every saved session expire after the given idle
// duration. Zero keeps sessions forever.
func WithExpiration(expiration time.Duration) Option {
	return func(r *redisBackend) {
		r.expiration = expiration
	}
}

func WithKeyPrefix(prefix string) Option {
	return func(r *redisBackend) {
		r.keyPrefix = prefix
	}
}

func New(client *redis.Client, address string, options ...Option) pairwise.Backend {
	result := &redisBackend{
		client:    client,
		address:   address,
		keyPrefix: DefaultKeyPrefix,
	}

	for _, option := range options {
		option(result)
	}

	return result
}

func (r *redisBackend) Address() string {
	return r.address
}

func (r *redisBackend) Load(session string) (*pairwise.State, error) {
	if r.client == nil {
		return nil, pairwise.ErrClosed
	}

	data, err := r.client.Get(r.key(session)).Bytes()
	if err == redis.Nil {
		return nil, pairwise.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var state pairwise.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.Wrapf(err, "corrupted session %v on %v", session, r.address)
	}

	return &state, nil
}

func (r *redisBackend) Save(session string, state *pairwise.State) error {
	if r.client == nil {
		return pairwise.ErrClosed
	}

	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return r.client.Set(r.key(session), data, r.expiration).Err()
}

func (r *redisBackend) Delete(session string) error {
	if r.client == nil {
		return pairwise.ErrClosed
	}

	return r.client.Del(r.key(session)).Err()
}

func (r *redisBackend) Close() error {
	if r.client != nil {
		err := r.client.Close()
		r.client = nil

		return err
	}

	return nil
}

func (r *redisBackend) key(session string) string {
	return r.keyPrefix + session
}
