package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	redisNextIDKey = "cart:next_id"
	redisItemKey   = "cart:item:"
	redisSessKey   = "cart:session:"
)

// RedisStore keeps each cart row as a JSON value keyed by id, with a
// per-session set as the ownership index. The id counter is a shared
// INCR key, which keeps ids monotonic across processes.
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
		data, err := s.client.Get(ctx, redisItemKey+id).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("redis get item: %w", err)
		}

		var it Item
		if err := json.Unmarshal(data, &it); err != nil {
			return nil, fmt.Errorf("unmarshal cart item: %w", err)
		}
		out = append(out, it)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *RedisStore) Add(ctx context.Context, n NewItem) (Item, error) {
	if n.Quantity == 0 {
		n.Quantity = 1
	}

	id, err := s.client.Incr(ctx, redisNextIDKey).Result()
	if err != nil {
		return Item{}, fmt.Errorf("redis incr: %w", err)
	}

	it := Item{
		ID:             id,
		ProductID:      n.ProductID,
		Quantity:       n.Quantity,
		Size:           n.Size,
		Customizations: n.Customizations,
		SessionID:      n.SessionID,
	}

	if err := s.write(ctx, it); err != nil {
		return Item{}, err
	}

	if err := s.client.SAdd(ctx, redisSessKey+it.SessionID, strconv.FormatInt(id, 10)).Err(); err != nil {
		return Item{}, fmt.Errorf("redis sadd: %w", err)
	}
	return it, nil
}

func (s *RedisStore) UpdateQuantity(ctx context.Context, id int64, quantity int) (Item, bool, error) {
	it, ok, err := s.get(ctx, id)
	if err != nil || !ok {
		return Item{}, false, err
	}

	it.Quantity = quantity
	if err := s.write(ctx, it); err != nil {
		return Item{}, false, err
	}
	return it, true, nil
}

func (s *RedisStore) Remove(ctx context.Context, id int64) (bool, error) {
	it, ok, err := s.get(ctx, id)
	if err != nil || !ok {
		return false, err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, redisItemKey+strconv.FormatInt(id, 10))
	pipe.SRem(ctx, redisSessKey+it.SessionID, strconv.FormatInt(id, 10))
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis remove item: %w", err)
	}
	return true, nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	ids, err := s.client.SMembers(ctx, redisSessKey+sessionID).Result()
	if err != nil {
		return fmt.Errorf("redis smembers: %w", err)
	}

	pipe := s.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, redisItemKey+id)
	}
	pipe.Del(ctx, redisSessKey+sessionID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis clear cart: %w", err)
	}
	return nil
}

func (s *RedisStore) get(ctx context.Context, id int64) (Item, bool, error) {
	data, err := s.client.Get(ctx, redisItemKey+strconv.FormatInt(id, 10)).Bytes()
	if err == redis.Nil {
		return Item{}, false, nil
	}
	if err != nil {
		return Item{}, false, fmt.Errorf("redis get item: %w", err)
	}

	var it Item
	if err := json.Unmarshal(data, &it); err != nil {
		return Item{}, false, fmt.Errorf("unmarshal cart item: %w", err)
	}
	return it, true, nil
}

func (s *RedisStore) write(ctx context.Context, it Item) error {
	data, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("marshal cart item: %w", err)
	}
	if err := s.client.Set(ctx, redisItemKey+strconv.FormatInt(it.ID, 10), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set item: %w", err)
	}
	return nil
}
