package cache

import (
	"fmt"
	"strings"

	"github.com/gomodule/redigo/redis"

	predis "github.com/hitbadge/hitbadge/platform/redis"
)

const cacheTTLDefault = 3600

type redisByteService struct {
	pool *redis.Pool
}

// RedisByteService returns a redis backed ByteService implementation.
func RedisByteService(pool *redis.Pool) ByteService {
	return &redisByteService{
		pool: pool,
	}
}

func (s *redisByteService) Get(ns, key string) ([]byte, error) {
	con := s.pool.Get()
	defer con.Close()

	res, err := con.Do(predis.CommandGet, prefixKey(ns, key))
	if err != nil {
		return nil, fmt.Errorf("cache get failed: %s", err)
	}

	if res == nil {
		return nil, wrapError(ErrKeyNotFound, "%s%s%s", ns, KeySeparator, key)
	}

	return redis.Bytes(res, nil)
}

func (s *redisByteService) Set(ns, key string, data []byte) error {
	con := s.pool.Get()
	defer con.Close()

	_, err := con.Do(
		predis.CommandSet,
		prefixKey(ns, key),
		data,
		predis.CommandEx,
		cacheTTLDefault,
	)
	if err != nil {
		return fmt.Errorf("cache set failed: %s", err)
	}

	return nil
}

func prefixKey(ns, key string) string {
	ps := []string{
		bytesPrefix,
		ns,
		key,
	}

	return strings.Join(ps, KeySeparator)
}
