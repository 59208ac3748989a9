// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/folio/internal/platform/constants"
)

// RedisStore implements Store with one expiring key per session.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(id string) string {
	return constants.RedisPrefixSession + id
}

/*
Save stores the session record with its TTL.

Parameters:
  - context: context.Context
  - record: Record
  - ttl: time.Duration

Returns:
  - error: Storage failures
*/
func (repository *RedisStore) Save(context context.Context, record Record, ttl time.Duration) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("redis_session_encode_failed: %w", err)
	}

	if err := repository.client.Set(context, sessionKey(record.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

/*
Find loads a session record.

Returns:
  - *Record: nil when the key is absent or expired
  - error: Connectivity or decoding errors
*/
func (repository *RedisStore) Find(context context.Context, id string) (*Record, error) {
	payload, err := repository.client.Get(context, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	var record Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}
	return &record, nil
}

// Delete removes the session. Deleting an absent session is not an error.
func (repository *RedisStore) Delete(context context.Context, id string) error {
	if err := repository.client.Del(context, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}
