package repo

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ideashare/backend/internal/domain"
)

const authorKeyPrefix = "author:"

// cachedAuthorRepo is a read-through Redis cache in front of another AuthorRepo.
// Redis failures are logged and fall through to the wrapped repo; the cache
// never turns a healthy lookup into an error.
type cachedAuthorRepo struct {
	next   AuthorRepo
	client *redis.Client
	ttl    time.Duration
}

// NewCachedAuthorRepo wraps next with a Redis cache whose entries expire after ttl.
func NewCachedAuthorRepo(next AuthorRepo, client *redis.Client, ttl time.Duration) AuthorRepo {
	return &cachedAuthorRepo{next: next, client: client, ttl: ttl}
}

// cachedAuthor is the JSON form stored in Redis.
type cachedAuthor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Contact     string `json:"contact"`
}

// Upsert writes through to the wrapped repo and drops the cached entry.
func (c *cachedAuthorRepo) Upsert(ctx context.Context, author domain.Author) (domain.Author, error) {
	result, err := c.next.Upsert(ctx, author)
	if err != nil {
		return domain.Author{}, err
	}
	if err := c.client.Del(ctx, authorKeyPrefix+author.ID).Err(); err != nil {
		slog.WarnContext(ctx, "author cache invalidation failed", "author_id", author.ID, "error", err)
	}
	return result, nil
}

// Resolve serves from Redis when possible and populates it on a miss.
func (c *cachedAuthorRepo) Resolve(ctx context.Context, id string) (domain.Author, error) {
	key := authorKeyPrefix + id

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var ca cachedAuthor
		if err := json.Unmarshal(raw, &ca); err == nil {
			return domain.Author{ID: ca.ID, DisplayName: ca.DisplayName, Contact: ca.Contact}, nil
		}
		slog.WarnContext(ctx, "author cache entry corrupt", "author_id", id)
	case !errors.Is(err, redis.Nil):
		slog.WarnContext(ctx, "author cache read failed", "author_id", id, "error", err)
	}

	author, err := c.next.Resolve(ctx, id)
	if err != nil {
		return domain.Author{}, err
	}

	payload, err := json.Marshal(cachedAuthor{ID: author.ID, DisplayName: author.DisplayName, Contact: author.Contact})
	if err == nil {
		err = c.client.Set(ctx, key, payload, c.ttl).Err()
	}
	if err != nil {
		slog.WarnContext(ctx, "author cache write failed", "author_id", id, "error", err)
	}
	return author, nil
}
