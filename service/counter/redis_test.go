//go:build integration
// +build integration

package counter

import (
	"testing"

	"github.com/gomodule/redigo/redis"

	"github.com/hitbadge/hitbadge/platform/generate"
)

func TestRedisServiceIncrement(t *testing.T) {
	var (
		key = generate.RandomString(12)
		s   = RedisService(newPool())
	)

	for i := uint64(1); i <= 16; i++ {
		count, err := s.Increment(key)
		if err != nil {
			t.Fatal(err)
		}

		if have, want := count, i; have != want {
			t.Errorf("have %v, want %v", have, want)
		}
	}
}

func TestRedisServicePeek(t *testing.T) {
	var (
		key = generate.RandomString(12)
		s   = RedisService(newPool())
	)

	count, err := s.Peek(key)
	if err != nil {
		t.Fatal(err)
	}

	if have, want := count, CountUnseen; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	if _, err := s.Increment(key); err != nil {
		t.Fatal(err)
	}

	count, err = s.Peek(key)
	if err != nil {
		t.Fatal(err)
	}

	if have, want := count, uint64(1); have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func newPool() *redis.Pool {
	return redis.NewPool(func() (redis.Conn, error) {
		return redis.Dial("tcp", "127.0.0.1:6379")
	}, 10)
}
