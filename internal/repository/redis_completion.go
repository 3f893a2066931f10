package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

// completionKeyPrefix namespaces completion sets per session.
const completionKeyPrefix = "roadmap:completions:"

// RedisOptions configures the Redis connection for RedisCompletionRepo.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects to Redis and verifies the connection with PING.
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", opts.Addr, err)
	}
	return rdb, nil
}

// RedisCompletionRepo implements CompletionRepo with one Redis set per
// session. Save replaces the set atomically with a MULTI/EXEC pipeline.
type RedisCompletionRepo struct {
	rdb redis.UniversalClient
	key string
}

func NewRedisCompletionRepo(rdb redis.UniversalClient, sessionID string) *RedisCompletionRepo {
	return &RedisCompletionRepo{rdb: rdb, key: completionKeyPrefix + sessionID}
}

func (r *RedisCompletionRepo) Load(ctx context.Context) ([]string, error) {
	codes, err := r.rdb.SMembers(ctx, r.key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("reading completions from redis: %w", err)
	}
	if codes == nil {
		codes = []string{}
	}
	sort.Strings(codes)
	return codes, nil
}

func (r *RedisCompletionRepo) Save(ctx context.Context, codes []string) error {
	members := make([]any, len(codes))
	for i, c := range codes {
		members[i] = c
	}

	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, r.key)
	if len(members) > 0 {
		pipe.SAdd(ctx, r.key, members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("writing completions to redis: %w", err)
	}
	return nil
}
