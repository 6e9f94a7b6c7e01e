package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/abdulrahman-nisar/UpliftAI/utils"
)

const (
	docKeyPrefix   = "doc:"
	scopeKeyPrefix = "scope:"
)

// RedisStore keeps one JSON document per key plus a set per scope
// indexing the child ids under it.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("redis connection test failed: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Create(ctx context.Context, scope string) (string, error) {
	id := utils.GenerateID()
	if err := s.client.SAdd(ctx, scopeKeyPrefix+scope, id).Err(); err != nil {
		return "", fmt.Errorf("reserving id under %s: %w", scope, err)
	}
	return id, nil
}

func (s *RedisStore) Set(ctx context.Context, path string, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document at %s: %w", path, err)
	}

	scope, id := splitPath(path)
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, docKeyPrefix+path, raw, 0)
	pipe.SAdd(ctx, scopeKeyPrefix+scope, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("writing document at %s: %w", path, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, path string) (Document, error) {
	raw, err := s.client.Get(ctx, docKeyPrefix+path).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading document at %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding document at %s: %w", path, err)
	}
	return doc, nil
}

// Update is a read-merge-write: concurrent updates to one path race with
// last-write-wins, same as Set.
func (s *RedisStore) Update(ctx context.Context, path string, fields Document) error {
	doc, err := s.Get(ctx, path)
	if err != nil {
		return err
	}
	for k, v := range fields {
		doc[k] = v
	}
	return s.Set(ctx, path, doc)
}

func (s *RedisStore) Delete(ctx context.Context, path string) error {
	deleted, err := s.client.Del(ctx, docKeyPrefix+path).Result()
	if err != nil {
		return fmt.Errorf("deleting document at %s: %w", path, err)
	}
	if deleted == 0 {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}

	scope, id := splitPath(path)
	if err := s.client.SRem(ctx, scopeKeyPrefix+scope, id).Err(); err != nil {
		return fmt.Errorf("unindexing %s: %w", path, err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, scope string) (map[string]Document, error) {
	ids, err := s.client.SMembers(ctx, scopeKeyPrefix+scope).Result()
	if err != nil {
		return nil, fmt.Errorf("listing scope %s: %w", scope, err)
	}

	docs := make(map[string]Document, len(ids))
	for _, id := range ids {
		doc, err := s.Get(ctx, Join(scope, id))
		if err != nil {
			// Reserved ids that were never written have no document.
			if isNotFound(err) {
				continue
			}
			return nil, err
		}
		docs[id] = doc
	}
	return docs, nil
}
