// Package redis guarda los borradores del wizard de alta en Redis como JSON.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"animal-id-card/internal/domain/drafts"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "animal-id-card:draft:"

type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient arma el cliente con los mismos límites de pool que el resto de servicios.
func NewClient(opts Options) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

type Store struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// New usa un cliente ya creado. ttl <= 0: los borradores no expiran.
func New(client redis.UniversalClient, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, id string) (drafts.Draft, error) {
	raw, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return drafts.Draft{}, drafts.ErrNotFound
	}
	if err != nil {
		return drafts.Draft{}, fmt.Errorf("redis draft get: %w", err)
	}

	var d drafts.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return drafts.Draft{}, fmt.Errorf("redis draft decode: %w", err)
	}
	return d, nil
}

func (s *Store) Save(ctx context.Context, id string, d drafts.Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("redis draft encode: %w", err)
	}

	ttl := s.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, keyPrefix+id, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis draft set: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis draft del: %w", err)
	}
	return nil
}
