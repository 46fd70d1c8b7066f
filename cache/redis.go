package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Exela-Tech/Propeerty-Management/model"
)

const listTTL = 5 * time.Minute

func Connect(addr string) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	log.Println("Redis connected")
	return rdb
}

// PaymentCache caches payment list responses in Redis as JSON.
type PaymentCache struct {
	rdb *redis.Client
}

func NewPaymentCache(rdb *redis.Client) *PaymentCache {
	return &PaymentCache{rdb: rdb}
}

func (c *PaymentCache) GetList(ctx context.Context, key string) ([]model.Payment, bool) {
	cached, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var payments []model.Payment
	if err := json.Unmarshal([]byte(cached), &payments); err != nil {
		return nil, false
	}
	return payments, true
}

func (c *PaymentCache) SetList(ctx context.Context, key string, payments []model.Payment) {
	payload, err := json.Marshal(payments)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, payload, listTTL)
}

func (c *PaymentCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}
