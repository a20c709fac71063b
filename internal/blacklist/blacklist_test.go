package blacklist

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestStatic(t *testing.T) {
	t.Parallel()

	list := NewStatic(" Max ", "", "Anna")
	ctx := context.Background()

	tests := []struct {
		name string
		want bool
	}{
		{name: "Max", want: true},
		{name: "Anna", want: true},
		{name: "max", want: false},
		{name: "", want: false},
		{name: "John", want: false},
	}
	for _, tt := range tests {
		got, err := list.IsBlacklisted(ctx, tt.name)
		if err != nil {
			t.Fatalf("IsBlacklisted(%q): unexpected error %v", tt.name, err)
		}
		if got != tt.want {
			t.Fatalf("IsBlacklisted(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRedis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("skipping Redis integration tests: %v", err)
	}

	key := "test:blacklist:" + time.Now().Format("150405.000000")
	t.Cleanup(func() { _ = client.Del(context.Background(), key).Err() })

	list := NewRedis(client, key)
	if err := list.Add(ctx, "Max"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if ok, err := list.IsBlacklisted(ctx, "Max"); err != nil || !ok {
		t.Fatalf("expected Max to be blacklisted, got %v, %v", ok, err)
	}
	if ok, err := list.IsBlacklisted(ctx, "Anna"); err != nil || ok {
		t.Fatalf("expected Anna not to be blacklisted, got %v, %v", ok, err)
	}
}

func TestRedisLookupError(t *testing.T) {
	t.Parallel()

	// Nothing listens on port 1.
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	ok, err := NewRedis(client, "booking:blacklist").IsBlacklisted(context.Background(), "Max")
	if err == nil {
		t.Fatalf("expected an error when Redis is unreachable")
	}
	if ok {
		t.Fatalf("expected a failed lookup not to report blacklisted")
	}
}
