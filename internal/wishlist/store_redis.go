package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisNextIDKey = "wishlist:next_id"
	redisItemKey   = "wishlist:item:"
	redisSessKey   = "wishlist:session:"
)

// RedisStore mirrors the cart's redis layout: JSON rows keyed by id
// plus a per-session ownership set.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) ListForSession(ctx context.Context, sessionID string) ([]Item, error) {
	ids, err := s.client.SMembers(ctx, redisSessKey+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers: %w", err)
	}

	out := make([]Item, 0, len(ids))
	for _, id := range ids {
		it, ok, err := s.getByKey(ctx, redisItemKey+id)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, it)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *RedisStore) Add(ctx context.Context, productID int64, sessionID string) (Item, error) {
	id, err := s.client.Incr(ctx, redisNextIDKey).Result()
	if err != nil {
		return Item{}, fmt.Errorf("redis incr: %w", err)
	}

	it := Item{
		ID:        id,
		ProductID: productID,
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(it)
	if err != nil {
		return Item{}, fmt.Errorf("marshal wishlist item: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisItemKey+strconv.FormatInt(id, 10), data, 0)
	pipe.SAdd(ctx, redisSessKey+sessionID, strconv.FormatInt(id, 10))
	if _, err := pipe.Exec(ctx); err != nil {
		return Item{}, fmt.Errorf("redis add wishlist item: %w", err)
	}
	return it, nil
}

func (s *RedisStore) Remove(ctx context.Context, id int64) (bool, error) {
	it, ok, err := s.getByKey(ctx, redisItemKey+strconv.FormatInt(id, 10))
	if err != nil || !ok {
		return false, err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, redisItemKey+strconv.FormatInt(id, 10))
	pipe.SRem(ctx, redisSessKey+it.SessionID, strconv.FormatInt(id, 10))
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis remove wishlist item: %w", err)
	}
	return true, nil
}

func (s *RedisStore) Exists(ctx context.Context, productID int64, sessionID string) (bool, error) {
	items, err := s.ListForSession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	for _, it := range items {
		if it.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *RedisStore) getByKey(ctx context.Context, key string) (Item, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return Item{}, false, nil
	}
	if err != nil {
		return Item{}, false, fmt.Errorf("redis get item: %w", err)
	}

	var it Item
	if err := json.Unmarshal(data, &it); err != nil {
		return Item{}, false, fmt.Errorf("unmarshal wishlist item: %w", err)
	}
	return it, true, nil
}
