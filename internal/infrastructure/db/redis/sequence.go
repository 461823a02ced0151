package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Sequence issues strictly increasing numbers per named counter, backed by
// Redis INCR. Key format: seq:<name>. Numbers are never reused, so two
// concurrent callers can never be handed the same value.
type Sequence struct {
	client *redis.Client
}

// NewSequence creates a Sequence wrapping the given Redis client.
func NewSequence(client *redis.Client) *Sequence {
	return &Sequence{client: client}
}

// Next returns the next number of the named counter, starting at 1.
func (s *Sequence) Next(ctx context.Context, name string) (int64, error) {
	n, err := s.client.Incr(ctx, s.key(name)).Result()
	if err != nil {
		return 0, fmt.Errorf("sequence next: %w", err)
	}
	return n, nil
}

func (s *Sequence) key(name string) string {
	return "seq:" + name
}
