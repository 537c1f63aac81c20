package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultLogLength = 1000

// Redis publishes each event on a pub/sub channel named after its topic and
// appends it to a capped list so late consumers can replay recent history.
type Redis struct {
	rdb    *redis.Client
	key    string
	maxLen int64
}

func NewRedis(rdb *redis.Client, key string) *Redis {
	return &Redis{rdb: rdb, key: key, maxLen: defaultLogLength}
}

func (r *Redis) Publish(ctx context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	pipe := r.rdb.TxPipeline()
	pipe.Publish(ctx, e.Topic, data)
	pipe.RPush(ctx, r.key, data)
	pipe.LTrim(ctx, r.key, -r.maxLen, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis publish %s: %w", e.Topic, err)
	}
	return nil
}

// Recent returns up to n of the latest logged events, oldest first.
func (r *Redis) Recent(ctx context.Context, n int64) ([]Event, error) {
	items, err := r.rdb.LRange(ctx, r.key, -n, -1).Result()
	if err != nil {
		return nil, err
	}
	events := make([]Event, 0, len(items))
	for _, item := range items {
		var ev Event
		if err := json.Unmarshal([]byte(item), &ev); err != nil {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}
