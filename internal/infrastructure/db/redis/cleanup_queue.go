package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const cleanupKey = "pictures:cleanup"

// CleanupQueue records picture paths whose deletion failed, backed by a
// Redis set so retries survive restarts. Membership is idempotent: pushing
// the same path twice keeps a single entry.
type CleanupQueue struct {
	client *redis.Client
}

// NewCleanupQueue creates a CleanupQueue wrapping the given Redis client.
func NewCleanupQueue(client *redis.Client) *CleanupQueue {
	return &CleanupQueue{client: client}
}

// Push queues a picture path for retried deletion.
func (q *CleanupQueue) Push(ctx context.Context, path string) error {
	if err := q.client.SAdd(ctx, cleanupKey, path).Err(); err != nil {
		return fmt.Errorf("cleanup push: %w", err)
	}
	return nil
}

// Pending returns the queued paths without removing them.
func (q *CleanupQueue) Pending(ctx context.Context) ([]string, error) {
	paths, err := q.client.SMembers(ctx, cleanupKey).Result()
	if err != nil {
		return nil, fmt.Errorf("cleanup pending: %w", err)
	}
	return paths, nil
}

// Remove drops a path from the queue once its file is gone.
func (q *CleanupQueue) Remove(ctx context.Context, path string) error {
	if err := q.client.SRem(ctx, cleanupKey, path).Err(); err != nil {
		return fmt.Errorf("cleanup remove: %w", err)
	}
	return nil
}
