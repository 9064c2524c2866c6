package quotes

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RecencyStore keeps the per-session list of recently shown quotes in
// Redis. Absence of a store degrades selection to no exclusion.
type RecencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecencyStore(addr, password string, db int, ttl time.Duration) (*RecencyStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errors.New("redis connection error: " + err.Error())
	}
	return &RecencyStore{client: client, ttl: ttl}, nil
}

func recencyKey(session string) string {
	return "quotes:recent:" + session
}

// Recent returns the session's exclusion list, oldest first.
func (s *RecencyStore) Recent(ctx context.Context, session string) ([]string, error) {
	quotes, err := s.client.LRange(ctx, recencyKey(session), 0, MaxHistory-1).Result()
	if err != nil {
		return nil, errors.New("redis read error: " + err.Error())
	}
	return quotes, nil
}

// Remember appends a shown quote and trims the list to MaxHistory.
func (s *RecencyStore) Remember(ctx context.Context, session, quote string) error {
	key := recencyKey(session)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, quote)
	pipe.LTrim(ctx, key, -MaxHistory, -1)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.New("redis write error: " + err.Error())
	}
	return nil
}

func (s *RecencyStore) Close() error {
	return s.client.Close()
}
