package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	redisclient "github.com/redis/go-redis/v9"

	"github.com/kenyaamazon/storefront-api/pkg/global"
	"github.com/kenyaamazon/storefront-api/pkg/models"
)

// cartTTL bounds how long an abandoned session cart lingers.
const cartTTL = 1 * time.Hour

// RedisStore keeps session carts in Redis so they survive process restarts
// for the lifetime of the session. Each line item is a JSON value under its
// own key; a list of item keys preserves insertion order.
type RedisStore struct {
	client *redisclient.Client
}

// NewRedisStore connects to Redis using the usual environment variables.
func NewRedisStore() *RedisStore {
	return &RedisStore{
		client: redisclient.NewClient(&redisclient.Options{
			Addr:     global.GetEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
			Password: global.GetEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       0,
			Protocol: 2,
		}),
	}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	return s.load(ctx, sessionID)
}

func (s *RedisStore) Add(ctx context.Context, sessionID string, product models.Product, size float64, quantity int) (*Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := c.Add(product, size, quantity); err != nil {
		return nil, err
	}
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *RedisStore) UpdateQuantity(ctx context.Context, sessionID, productID string, size float64, delta int) (*Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.UpdateQuantity(productID, size, delta)
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *RedisStore) Remove(ctx context.Context, sessionID, productID string, size float64) (*Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.Remove(productID, size)
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	keys, err := s.client.Keys(ctx, clearPattern(sessionID)).Result()
	if err != nil {
		return err
	}
	keys = append(keys, cartKey(sessionID))
	return s.client.Del(ctx, keys...).Err()
}

// load rebuilds a cart from Redis in insertion order. A missing cart reads
// as empty.
func (s *RedisStore) load(ctx context.Context, sessionID string) (*Cart, error) {
	c := New(sessionID)

	orderKey := orderListKey(sessionID)
	itemKeys, err := s.client.LRange(ctx, orderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read cart order list: %w", err)
	}

	for _, itemKey := range itemKeys {
		itemJSON, err := s.client.Get(ctx, itemKey).Result()
		if err == redisclient.Nil {
			continue // item expired out from under the list
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read cart item: %w", err)
		}
		var item models.CartItem
		if err := json.Unmarshal([]byte(itemJSON), &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cart item: %w", err)
		}
		c.Items = append(c.Items, item)
	}

	c.Totals = ComputeTotals(c.Items)

	metaKey := cartKey(sessionID)
	meta, err := s.client.HGetAll(ctx, metaKey).Result()
	if err != nil {
		return nil, err
	}
	if lastUpdated, ok := meta["last_updated"]; ok {
		c.LastUpdated = lastUpdated
	}

	return c, nil
}

// save rewrites the whole cart atomically: metadata hash, one JSON value
// per item, and the order list, all with a fresh TTL.
func (s *RedisStore) save(ctx context.Context, c *Cart) error {
	pipe := s.client.TxPipeline()

	// Drop the previous layout before rewriting; an item removed from the
	// cart must not survive in Redis.
	staleKeys, err := s.client.Keys(ctx, itemPattern(c.SessionID)).Result()
	if err != nil {
		return err
	}
	if len(staleKeys) > 0 {
		pipe.Del(ctx, staleKeys...)
	}
	orderKey := orderListKey(c.SessionID)
	pipe.Del(ctx, orderKey)

	metaKey := cartKey(c.SessionID)
	pipe.HSet(ctx, metaKey, map[string]interface{}{
		"subtotal":     fmt.Sprintf("%.2f", c.Totals.Subtotal),
		"shipping":     fmt.Sprintf("%.2f", c.Totals.Shipping),
		"total":        fmt.Sprintf("%.2f", c.Totals.Total),
		"item_count":   strconv.Itoa(c.Totals.ItemCount),
		"last_updated": c.LastUpdated,
	})
	pipe.Expire(ctx, metaKey, cartTTL)

	for i := range c.Items {
		itemJSON, err := json.Marshal(&c.Items[i])
		if err != nil {
			return fmt.Errorf("failed to marshal cart item %s: %w", c.Items[i].ID, err)
		}
		key := itemKey(c.SessionID, c.Items[i].ID, c.Items[i].SelectedSize)
		pipe.Set(ctx, key, itemJSON, cartTTL)
		pipe.RPush(ctx, orderKey, key)
	}
	pipe.Expire(ctx, orderKey, cartTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save cart %s: %w", c.SessionID, err)
	}
	return nil
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func orderListKey(sessionID string) string {
	return fmt.Sprintf("cart:%s:order", sessionID)
}

func itemKey(sessionID, productID string, size float64) string {
	return fmt.Sprintf("cart:%s:item:%s:%s", sessionID, productID, strconv.FormatFloat(size, 'f', -1, 64))
}

// itemPattern matches a session's item keys and nothing else. The colon
// after the session id keeps session "s1" from matching "s12".
func itemPattern(sessionID string) string {
	return fmt.Sprintf("cart:%s:item:*", sessionID)
}

// clearPattern matches every key under a session except the metadata hash,
// which Clear deletes by its exact name.
func clearPattern(sessionID string) string {
	return fmt.Sprintf("cart:%s:*", sessionID)
}
