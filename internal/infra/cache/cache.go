package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lumiere-studio/StudioBookingService/pkg/metrics"
)

// Ключи кеша справочных данных
const (
	KeyLocations   = "catalog:locations"
	KeyServices    = "catalog:services"
	KeyRentalItems = "catalog:rental_items"
	KeySettings    = "settings:booking"
)

// Cache кеш справочных данных поверх redis с фиксированным TTL.
// Метрики опциональны: nil отключает учет операций
type Cache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
}

// New создает кеш с заданным TTL
func New(client *redis.Client, ttl time.Duration, m *metrics.Metrics) *Cache {
	return &Cache{
		client:  client,
		ttl:     ttl,
		metrics: m,
	}
}

// GetJSON читает значение по ключу и десериализует его в dest.
// Возвращает false без ошибки при промахе кеша
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		c.observe("get", "miss")
		return false, nil
	}
	if err != nil {
		c.observe("get", "error")
		return false, fmt.Errorf("%w: get %s: %v", ErrRedis, key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.observe("get", "error")
		return false, fmt.Errorf("%w: key %s: %v", ErrDecode, key, err)
	}

	c.observe("get", "hit")
	return true, nil
}

// SetJSON сериализует значение и сохраняет его с TTL кеша
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: key %s: %v", ErrEncode, key, err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.observe("set", "error")
		return fmt.Errorf("%w: set %s: %v", ErrRedis, key, err)
	}

	c.observe("set", "ok")
	return nil
}

// Invalidate удаляет ключи из кеша
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.observe("del", "error")
		return fmt.Errorf("%w: del: %v", ErrRedis, err)
	}
	c.observe("del", "ok")
	return nil
}

func (c *Cache) observe(operation, result string) {
	if c.metrics != nil {
		c.metrics.CacheOperationsTotal.WithLabelValues(operation, result).Inc()
	}
}
