// Package lease provides the cluster wide lock guarding reconciliation sweeps.
package lease

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/dtroode/gophfeed-server/internal/model"
)

const keyPrefix = "gophfeed:lease:"

// releaseScript deletes the key only while it still holds this instance's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var _ model.Lease = (*Redis)(nil)

// Redis is a lease held through SET NX PX. Each instance writes its own holder token.
type Redis struct {
	client redis.UniversalClient
	holder string
}

func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{
		client: client,
		holder: uuid.NewString(),
	}
}

func (l *Redis) Acquire(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, keyPrefix+name, l.holder, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lease %s: %w", name, err)
	}
	return ok, nil
}

// Release is a no-op when the lease expired and was taken by another holder.
func (l *Redis) Release(ctx context.Context, name string) error {
	if err := releaseScript.Run(ctx, l.client, []string{keyPrefix + name}, l.holder).Err(); err != nil {
		return fmt.Errorf("failed to release lease %s: %w", name, err)
	}
	return nil
}
