package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chatapp/backend/models"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultUserTTL 使用者摘要的預設快取時間
const DefaultUserTTL = 5 * time.Minute

// NewClient 建立 Redis 連線並確認可用
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// UserCache 以 user:{id} 為 key 快取不含密碼的使用者資料
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUserCache 建立 UserCache
func NewUserCache(client *redis.Client, ttl time.Duration) *UserCache {
	if ttl <= 0 {
		ttl = DefaultUserTTL
	}
	return &UserCache{client: client, ttl: ttl}
}

func userKey(id primitive.ObjectID) string {
	return "user:" + id.Hex()
}

// GetUsers 批次讀取，沒命中的 ID 不會出現在回傳的 map 中
func (c *UserCache) GetUsers(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error) {
	found := make(map[primitive.ObjectID]models.UserSummary, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = userKey(id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("mget users: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue // cache miss
		}
		var user models.UserSummary
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			continue
		}
		found[ids[i]] = user
	}
	return found, nil
}

// SetUsers 寫入快取並設定 TTL
func (c *UserCache) SetUsers(ctx context.Context, users []models.UserSummary) error {
	if len(users) == 0 {
		return nil
	}
	pipe := c.client.Pipeline()
	for _, u := range users {
		data, err := json.Marshal(u)
		if err != nil {
			return err
		}
		pipe.Set(ctx, userKey(u.ID), data, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("set users: %w", err)
	}
	return nil
}
