package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

const redisSettingsPrefix = "storefront:settings:"

// RedisSettingsRepository bir nechta instansiya bo'lisha oladigan sozlamalar ombori
type RedisSettingsRepository struct {
	rdb *redis.Client
}

// NewRedisSettingsRepository addr bo'yicha Redis client yaratish
func NewRedisSettingsRepository(addr string) *RedisSettingsRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisSettingsRepository{rdb: rdb}
}

var _ repository.SettingsRepository = (*RedisSettingsRepository)(nil)

// Ping ulanishni tekshirish
func (r *RedisSettingsRepository) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

// Get qiymatni olish; redis.Nil kalit yo'qligini bildiradi
func (r *RedisSettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.rdb.Get(ctx, redisSettingsPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("setting %s: %w", key, err)
	}
	return val, true, nil
}

// Set qiymatni muddatsiz saqlash
func (r *RedisSettingsRepository) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, redisSettingsPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("setting %s saqlanmadi: %w", key, err)
	}
	return nil
}

// Close clientni yopish
func (r *RedisSettingsRepository) Close() error {
	return r.rdb.Close()
}
