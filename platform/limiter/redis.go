package limiter

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	predis "github.com/hitbadge/hitbadge/platform/redis"
)

type redisLimiter struct {
	prefix string
	pool   *redis.Pool
}

// Redis returns a Redis Limiter implementation.
func Redis(pool *redis.Pool, prefix string) Limiter {
	return &redisLimiter{
		prefix: prefix,
		pool:   pool,
	}
}

func (l *redisLimiter) Request(limitee *Limitee) (int64, time.Time, error) {
	var (
		con     = l.pool.Get()
		expires = time.Now().Add(limitee.WindowSize)
		key     = fmt.Sprintf("%s:%s", l.prefix, limitee.Hash)
	)
	defer con.Close()

	quota, err := getQuota(con, key)
	if err != nil {
		return 0, time.Now(), err
	}

	ttl, err := getTTL(con, key)
	if err != nil {
		return 0, time.Now(), err
	}

	if ttl < 0 {
		quota = limitee.Limit - 1

		_, err := con.Do(
			predis.CommandSet,
			key,
			quota,
			predis.CommandEx,
			uint64(limitee.WindowSize/time.Second),
		)
		if err != nil {
			return 0, time.Now(), err
		}

		return quota, expires, nil
	}

	return quota, time.Now().Add(ttl), nil
}

func getQuota(con redis.Conn, key string) (int64, error) {
	// DECR on non-existent keys sets them to -1, which doubles as the signal
	// to reset the quota.
	return redis.Int64(con.Do(predis.CommandDecr, key))
}

func getTTL(con redis.Conn, key string) (time.Duration, error) {
	// TTL returns -2 for a key that doesn't exist and -1 if none is set.
	ttl, err := redis.Int64(con.Do(predis.CommandTTL, key))
	if err != nil {
		return 0, err
	}

	return time.Duration(ttl) * time.Second, nil
}
