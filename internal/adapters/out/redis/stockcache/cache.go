// Package stockcache keeps a copy of ingredient stock in Redis. Catalog reads
// fall back to it while the database is rate limiting.
package stockcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "fulfillment:stock:"

	DefaultTTL = 10 * time.Minute
)

// entry is the JSON value stored per ingredient.
type entry struct {
	ID         kernel.UUID     `json:"id"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	Quantity   kernel.Quantity `json:"quantity"`
	Threshold  kernel.Quantity `json:"threshold"`
	LocationID kernel.UUID     `json:"locationId"`
	CachedAt   time.Time       `json:"cachedAt"`
}

type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// New wraps an existing client. A non-positive ttl selects DefaultTTL.
func New(client redis.Cmdable, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// NewClient connects to redisURL and checks the connection.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// Put stores every ingredient in one pipeline round trip.
func (c *Cache) Put(ctx context.Context, ingredients ...*inventory.Ingredient) error {
	if len(ingredients) == 0 {
		return nil
	}

	now := time.Now().UTC()
	pipe := c.client.Pipeline()
	for _, i := range ingredients {
		data, err := json.Marshal(entry{
			ID:         i.ID(),
			Name:       i.Name(),
			Unit:       i.Unit(),
			Quantity:   i.Quantity(),
			Threshold:  i.Threshold(),
			LocationID: i.LocationID(),
			CachedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal stock entry: %w", err)
		}
		pipe.Set(ctx, key(i.ID()), data, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write stock cache: %w", err)
	}
	return nil
}

// GetMany returns the cached ingredients among ids. Misses are skipped.
func (c *Cache) GetMany(ctx context.Context, ids []kernel.UUID) ([]*inventory.Ingredient, error) {
	if len(ids) == 0 {
		return []*inventory.Ingredient{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, key(id))
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read stock cache: %w", err)
	}

	ingredients := make([]*inventory.Ingredient, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}

		var e entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stock entry: %w", err)
		}
		threshold := e.Threshold
		i, err := inventory.NewIngredient(e.ID, e.Name, e.Unit, e.Quantity, &threshold, e.LocationID)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, i)
	}
	return ingredients, nil
}

// Observe adapts the cache to a unit of work commit observer: committed
// ingredients are written through, anything else is ignored.
func (c *Cache) Observe(ctx context.Context, aggregates []any) error {
	ingredients := make([]*inventory.Ingredient, 0, len(aggregates))
	for _, a := range aggregates {
		if i, ok := a.(*inventory.Ingredient); ok {
			ingredients = append(ingredients, i)
		}
	}
	return c.Put(ctx, ingredients...)
}

func key(id kernel.UUID) string {
	return keyPrefix + id.String()
}
