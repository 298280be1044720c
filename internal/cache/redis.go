package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/workershub/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

type RedisLocker struct {
	client redis.UniversalClient
}

func NewRedisLocker(cfg config.RedisConfig) *RedisLocker {
	return &RedisLocker{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

func NewRedisLockerWithClient(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{client: client}
}

// AcquireWorkerLock tries to take the booking lock for a worker. It returns the token
// needed to release it, or "" when someone else holds the lock.
func (c *RedisLocker) AcquireWorkerLock(ctx context.Context, workerID int64, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	ok, err := c.client.SetNX(ctx, workerLockKey(workerID), token, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("acquire worker lock: %w", err)
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

func (c *RedisLocker) ReleaseWorkerLock(ctx context.Context, workerID int64, token string) error {
	if err := releaseScript.Run(ctx, c.client, []string{workerLockKey(workerID)}, token).Err(); err != nil {
		return fmt.Errorf("release worker lock: %w", err)
	}
	return nil
}

func (c *RedisLocker) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisLocker) Close() error {
	return c.client.Close()
}

func workerLockKey(workerID int64) string {
	return fmt.Sprintf("lock:worker:%d:booking", workerID)
}
