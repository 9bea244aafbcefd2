// Package store keeps deck codes in Redis under short-lived share ids.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "deckcodes:share:"

// ErrNotFound is returned for ids that were never saved or have expired.
var ErrNotFound = errors.New("shared deck not found")

type DeckStore struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *DeckStore {
	return &DeckStore{client: client, ttl: ttl}
}

// Save stores code and returns the id it can be loaded by.
func (s *DeckStore) Save(ctx context.Context, code string) (string, error) {
	id := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+id, code, s.ttl).Err(); err != nil {
		return "", errors.Wrap(err, "saving shared deck")
	}
	return id, nil
}

// Load returns the code saved under id.
func (s *DeckStore) Load(ctx context.Context, id string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.Wrapf(ErrNotFound, "id %q", id)
	}
	code, err := s.client.Get(ctx, keyPrefix+id).Result()
	if err == redis.Nil {
		return "", errors.Wrapf(ErrNotFound, "id %q", id)
	}
	if err != nil {
		return "", errors.Wrap(err, "loading shared deck")
	}
	return code, nil
}

func (s *DeckStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
