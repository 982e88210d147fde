package cache

import (
	"context"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/labyrinth/domain"
	"github.com/beka-birhanu/labyrinth/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix   = "labyrinth"
	resultKeyFmt    = "%s:result:%s"
	lockKeyFmt      = "%s:lock:%s"
	rankingKeyFmt   = "%s:ranking"
	lockExpiry      = 30 * time.Second
	lockRetryDelay  = 50 * time.Millisecond
	lockMaxAttempts = 600
)

// RedisResultCache keeps search results in Redis hashes with a TTL,
// ranks solved mazes in a sorted set, and locks digests with redsync.
type RedisResultCache struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedisResultCache initializes a RedisResultCache with the provided Redis client and TTL.
func NewRedisResultCache(client *redis.Client, prefix string, ttlSeconds int) (i.ResultCache, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if prefix == "" {
		prefix = defaultPrefix
	}

	c := &RedisResultCache{
		client: client,
		prefix: prefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	c.locker = redsync.New(pool)
	return c, nil
}

// Get returns the cached result for digest, or nil if there is none.
func (c *RedisResultCache) Get(ctx context.Context, digest string) (*dmn.Result, error) {
	cmd := c.client.HGetAll(ctx, c.resultKey(digest))
	if err := cmd.Err(); err != nil {
		return nil, err
	}
	if len(cmd.Val()) == 0 {
		return nil, nil
	}

	var result dmn.Result
	if err := cmd.Scan(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Set stores the result for digest and ranks the maze when it has a way out.
func (c *RedisResultCache) Set(ctx context.Context, digest string, result dmn.Result) error {
	key := c.resultKey(digest)

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, "turns", result.Turns, "found", result.Found, "nodes", result.Nodes)
		if c.ttl > 0 {
			pipe.Expire(ctx, key, c.ttl)
		}
		if result.Found {
			pipe.ZAdd(ctx, c.rankingKey(), redis.Z{Score: float64(result.Turns), Member: digest})
		}
		return nil
	})
	return err
}

// Lock acquires the distributed lock guarding work on digest.
func (c *RedisResultCache) Lock(ctx context.Context, digest string) (func(), error) {
	mutex := c.locker.NewMutex(
		fmt.Sprintf(lockKeyFmt, c.prefix, digest),
		redsync.WithExpiry(lockExpiry),
		redsync.WithTries(lockMaxAttempts),
		redsync.WithRetryDelay(lockRetryDelay),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		// Use a fresh context: the caller's may already be done.
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}

// Hardest returns up to limit ranked mazes, most turns first.
func (c *RedisResultCache) Hardest(ctx context.Context, limit int64) ([]dmn.RankedMaze, error) {
	members, err := c.client.ZRevRangeWithScores(ctx, c.rankingKey(), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	ranked := make([]dmn.RankedMaze, 0, len(members))
	for _, m := range members {
		ranked = append(ranked, dmn.RankedMaze{
			Digest: fmt.Sprint(m.Member),
			Turns:  int(m.Score),
		})
	}
	return ranked, nil
}

func (c *RedisResultCache) resultKey(digest string) string {
	return fmt.Sprintf(resultKeyFmt, c.prefix, digest)
}

func (c *RedisResultCache) rankingKey() string {
	return fmt.Sprintf(rankingKeyFmt, c.prefix)
}
