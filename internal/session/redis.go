package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
)

const redisKeyPrefix = "utv:session:"

// RedisStore keeps sessions in Redis so multiple dashboard replicas can
// serve the same upload. Sessions are JSON blobs under a TTL; touching a
// session refreshes it, same contract as the memory store.
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisStore builds a Redis-backed store. The connection is verified up
// front so a bad address fails at startup, not on the first upload.
func NewRedisStore(ctx context.Context, addr, password string, db int, ttl time.Duration, logger *zap.Logger) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisStore{rdb: rdb, ttl: ttl, logger: logger}, nil
}

func (s *RedisStore) Create(ctx context.Context, ds *model.Dataset, opts model.ViewOptions) (*Session, error) {
	sess := Session{
		ID:        newID(),
		Dataset:   ds,
		Options:   opts,
		CreatedAt: time.Now(),
	}
	if err := s.put(ctx, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.rdb.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.logger.Warn("dropping undecodable session payload",
			zap.String("session_id", id),
			zap.Error(err),
		)
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *RedisStore) SetOptions(ctx context.Context, id string, opts model.ViewOptions) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	sess.Options = opts
	return s.put(ctx, sess)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+id).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

// Ping reports backend health for the readiness endpoint.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisStore) put(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.rdb.Set(ctx, redisKeyPrefix+sess.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
