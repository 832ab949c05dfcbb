package vitals

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRecordFailed wraps storage failures while counting a beacon.
var ErrRecordFailed = errors.New("vitals: failed to record beacon")

// Recorder counts validated beacons.
type Recorder interface {
	Record(ctx context.Context, b Beacon) error
}

// RedisRecorder keeps one hash per metric, keyed vitals:<METRIC>, with a
// field per rating. HLEN stays at three, so the distribution is one HGETALL
// away.
type RedisRecorder struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRecorder returns a recorder using client. A non-zero ttl bounds
// counter lifetime so abandoned deployments do not hold keys forever.
func NewRedisRecorder(client *redis.Client, ttl time.Duration) *RedisRecorder {
	return &RedisRecorder{client: client, ttl: ttl}
}

func (r *RedisRecorder) Record(ctx context.Context, b Beacon) error {
	key := "vitals:" + b.Metric

	pipe := r.client.TxPipeline()
	pipe.HIncrBy(ctx, key, b.Rating, 1)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Join(ErrRecordFailed, err)
	}
	return nil
}
