package counter

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hitbadge/hitbadge/platform/pg"
)

const (
	pgLoadCount = `
		SELECT
			count
		FROM
			hitbadge.counts
		WHERE
			key = $1
		LIMIT
			1`

	// GREATEST keeps replayed flushes from regressing a key.
	pgPutCount = `
		INSERT INTO hitbadge.counts(key, count)
		VALUES($1, $2)
		ON CONFLICT (key) DO
		UPDATE SET
			count = GREATEST(counts.count, EXCLUDED.count)`

	pgCreateSchema = `CREATE SCHEMA IF NOT EXISTS hitbadge`
	pgCreateTable  = `
		CREATE TABLE IF NOT EXISTS hitbadge.counts(
			key TEXT NOT NULL,
			count BIGINT NOT NULL,
			updated_at TIMESTAMP WITHOUT TIME ZONE DEFAULT (now() AT TIME ZONE 'utc'),

			PRIMARY KEY (key)
		)`
	pgDropTable = `DROP TABLE IF EXISTS hitbadge.counts CASCADE`
)

type pgStore struct {
	db *sqlx.DB
}

// PostgresStore returns a postgres backed Store implementation.
func PostgresStore(db *sqlx.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Load(key string) (uint64, error) {
	var count uint64

	err := s.db.Get(&count, pgLoadCount, key)
	if err != nil && pg.IsRelationNotFound(pg.WrapError(err)) {
		if err := s.Setup(); err != nil {
			return 0, err
		}

		err = s.db.Get(&count, pgLoadCount, key)
	}
	if err == sql.ErrNoRows {
		return 0, wrapError(ErrKeyNotFound, "%s", key)
	}

	return count, err
}

func (s *pgStore) Put(key string, count uint64) error {
	_, err := s.db.Exec(pgPutCount, key, count)
	if err != nil && pg.IsRelationNotFound(pg.WrapError(err)) {
		if err := s.Setup(); err != nil {
			return err
		}

		_, err = s.db.Exec(pgPutCount, key, count)
	}

	return err
}

func (s *pgStore) Setup() error {
	for _, q := range []string{
		pgCreateSchema,
		pgCreateTable,
	} {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("setup '%s': %s", q, err)
		}
	}

	return nil
}

func (s *pgStore) Teardown() error {
	for _, q := range []string{
		pgDropTable,
	} {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("teardown '%s': %s", q, err)
		}
	}

	return nil
}
