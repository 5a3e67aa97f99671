package pricing

import (
	"context"
	"time"

	"petfirst-service/internal/pkg/dto/responses"
	"petfirst-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisPriceStore struct {
	client *redis.Client
}

func NewRedisPriceStore(client *redis.Client) PriceStore {
	return &redisPriceStore{client: client}
}

func (s *redisPriceStore) GetEntry(ctx context.Context, key string) (*responses.PriceEntry, error) {
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}

	entry := new(responses.PriceEntry)
	if err := json.Unmarshal([]byte(data), entry); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return entry, nil
}

func (s *redisPriceStore) SetEntry(ctx context.Context, key string, entry *responses.PriceEntry, exp time.Duration) error {
	jsonValue, err := json.Marshal(entry)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := s.client.Set(ctx, key, jsonValue, exp).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (s *redisPriceStore) SetEntryIfAbsent(ctx context.Context, key string, entry *responses.PriceEntry) error {
	jsonValue, err := json.Marshal(entry)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := s.client.SetNX(ctx, key, jsonValue, 0).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}
