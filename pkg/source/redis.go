package source

import (
	"context"
	"errors"
	"sort"

	"github.com/redis/go-redis/v9"

	cterrors "github.com/vnykmshr/crontab/pkg/common/errors"
	"github.com/vnykmshr/crontab/pkg/common/validation"
	"github.com/vnykmshr/crontab/pkg/metrics"
)

// RedisConfig holds configuration for a RedisStore.
type RedisConfig struct {
	// Redis client; owned by the caller.
	Redis redis.UniversalClient

	// Key is the Redis hash holding id -> crontab line.
	Key string

	// Name labels metrics for this store. Defaults to Key.
	Name string

	// Parser validates lines on Put and parses them on Get and List.
	// Defaults to DefaultParser.
	Parser Parser

	// Metrics receives operation counts. Nil disables metrics.
	Metrics *metrics.Registry
}

// RedisStore keeps crontab lines in a Redis hash and hands them back parsed.
// It is safe for concurrent use.
type RedisStore struct {
	rdb     redis.UniversalClient
	key     string
	name    string
	parser  Parser
	metrics *metrics.Registry
}

// NewRedisStore validates config and creates a RedisStore.
func NewRedisStore(config RedisConfig) (*RedisStore, error) {
	if config.Redis == nil {
		return nil, cterrors.NewValidationError("source", "redis", nil, "client is required")
	}
	if err := validation.ValidateNotEmpty("source", "key", config.Key); err != nil {
		return nil, err
	}

	name := config.Name
	if name == "" {
		name = config.Key
	}
	parser := config.Parser
	if parser == nil {
		parser = DefaultParser
	}

	return &RedisStore{
		rdb:     config.Redis,
		key:     config.Key,
		name:    name,
		parser:  parser,
		metrics: config.Metrics,
	}, nil
}

// Put parses line and stores it under id. Lines that fail to parse are not
// stored.
func (s *RedisStore) Put(ctx context.Context, id, line string) (Entry, error) {
	if err := validation.ValidateNotEmpty("source", "id", id); err != nil {
		return Entry{}, err
	}

	entry, err := parseEntry(s.parser, id, line)
	if err != nil {
		return Entry{}, s.fail("Put", err, id)
	}

	if err := s.rdb.HSet(ctx, s.key, id, line).Err(); err != nil {
		return Entry{}, s.fail("Put", err, id)
	}
	s.record("Put")
	return entry, nil
}

// Get loads and parses the line stored under id. A missing id yields an
// error matching cterrors.ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, id string) (Entry, error) {
	line, err := s.rdb.HGet(ctx, s.key, id).Result()
	if errors.Is(err, redis.Nil) {
		return Entry{}, s.fail("Get", cterrors.ErrNotFound, id)
	}
	if err != nil {
		return Entry{}, s.fail("Get", err, id)
	}

	entry, err := parseEntry(s.parser, id, line)
	if err != nil {
		return Entry{}, s.fail("Get", err, id)
	}
	s.record("Get")
	return entry, nil
}

// List loads every stored line, sorted by id. Lines that no longer parse are
// skipped and reported in the joined error.
func (s *RedisStore) List(ctx context.Context) ([]Entry, error) {
	lines, err := s.rdb.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, s.fail("List", err, "")
	}

	ids := make([]string, 0, len(lines))
	for id := range lines {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]Entry, 0, len(ids))
	var errs []error
	for _, id := range ids {
		entry, err := parseEntry(s.parser, id, lines[id])
		if err != nil {
			errs = append(errs, s.fail("List", err, id))
			continue
		}
		entries = append(entries, entry)
	}

	s.record("List")
	if s.metrics != nil {
		s.metrics.SourceEntries.WithLabelValues(s.name).Set(float64(len(entries)))
	}
	return entries, errors.Join(errs...)
}

// Delete removes id. Deleting a missing id yields cterrors.ErrNotFound.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.rdb.HDel(ctx, s.key, id).Result()
	if err != nil {
		return s.fail("Delete", err, id)
	}
	if n == 0 {
		return s.fail("Delete", cterrors.ErrNotFound, id)
	}
	s.record("Delete")
	return nil
}

// Reset removes every stored line (useful for testing).
func (s *RedisStore) Reset(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return s.fail("Reset", err, "")
	}
	s.record("Reset")
	return nil
}

func (s *RedisStore) record(op string) {
	if s.metrics != nil {
		s.metrics.SourceOperations.WithLabelValues(op, s.name).Inc()
	}
}

func (s *RedisStore) fail(op string, err error, id string) error {
	if s.metrics != nil {
		s.metrics.SourceOperations.WithLabelValues(op, s.name).Inc()
		s.metrics.SourceErrors.WithLabelValues(op, s.name).Inc()
	}
	operr := cterrors.NewOperationError("source", op, err)
	if id != "" {
		operr.WithContext("id " + id)
	}
	return operr
}
