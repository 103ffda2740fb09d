package counter

import (
	"strings"

	"github.com/gomodule/redigo/redis"

	predis "github.com/hitbadge/hitbadge/platform/redis"
)

const redisKeyPrefix = "counter"

type redisService struct {
	pool *redis.Pool
}

// RedisService returns a Service counting directly in redis, for deployments
// where multiple instances must agree on counts. Redis is authoritative, so
// Flush and Close are no-ops.
func RedisService(pool *redis.Pool) Service {
	return &redisService{
		pool: pool,
	}
}

func (s *redisService) Increment(key string) (uint64, error) {
	con := s.pool.Get()
	defer con.Close()

	count, err := redis.Uint64(con.Do(predis.CommandIncr, redisKey(key)))
	if err != nil {
		return 0, wrapError(ErrStorageUnavailable, "incr %s: %s", key, err)
	}

	return count, nil
}

func (s *redisService) Peek(key string) (uint64, error) {
	con := s.pool.Get()
	defer con.Close()

	res, err := con.Do(predis.CommandGet, redisKey(key))
	if err != nil {
		return 0, wrapError(ErrStorageUnavailable, "get %s: %s", key, err)
	}

	if res == nil {
		return CountUnseen, nil
	}

	return redis.Uint64(res, nil)
}

func (s *redisService) Flush() error {
	return nil
}

func (s *redisService) Close() error {
	return nil
}

func redisKey(key string) string {
	return strings.Join([]string{redisKeyPrefix, key}, ".")
}
