// Package blacklist answers whether a customer is barred from booking.
package blacklist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Static is a fixed set of blacklisted names, matched exactly.
type Static struct {
	names map[string]struct{}
}

// NewStatic builds a Static blacklist. Surrounding whitespace is trimmed and
// empty entries are ignored.
func NewStatic(names ...string) *Static {
	s := &Static{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		s.names[n] = struct{}{}
	}
	return s
}

// IsBlacklisted reports whether name is in the set. It never fails.
func (s *Static) IsBlacklisted(_ context.Context, name string) (bool, error) {
	_, ok := s.names[name]
	return ok, nil
}

// Redis checks membership of a Redis set.
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis constructs a Redis blacklist reading the set stored at key.
func NewRedis(client *redis.Client, key string) *Redis {
	return &Redis{client: client, key: key}
}

// IsBlacklisted runs SISMEMBER. A Redis failure is returned as an error so
// callers can tell an outage from a barred customer.
func (b *Redis) IsBlacklisted(ctx context.Context, name string) (bool, error) {
	ok, err := b.client.SIsMember(ctx, b.key, name).Result()
	if err != nil {
		slog.Error("blacklist lookup failed",
			slog.String("key", b.key),
			slog.String("customer", name),
			slog.String("error", err.Error()),
		)
		return false, fmt.Errorf("redis sismember %s: %w", b.key, err)
	}
	return ok, nil
}

// Add puts names on the blacklist.
func (b *Redis) Add(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	members := make([]any, len(names))
	for i, n := range names {
		members[i] = n
	}
	return b.client.SAdd(ctx, b.key, members...).Err()
}
