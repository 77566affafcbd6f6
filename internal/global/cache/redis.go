package cache

import (
	"context"
	"encoding/json"
	"time"

	"project-submission-system/config"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

func Init() {
	cfg := config.Get().Redis
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// GetJSON 读取缓存并反序列化到 dest，未命中返回 false
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if RDB == nil {
		return false, nil
	}
	raw, err := RDB.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 序列化并写入缓存
func SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if RDB == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return RDB.Set(ctx, key, raw, ttl).Err()
}

// Delete 删除缓存键，用于写操作后的失效
func Delete(ctx context.Context, keys ...string) error {
	if RDB == nil {
		return nil
	}
	return RDB.Del(ctx, keys...).Err()
}
