package repository

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/TuringTechX/openfoodnetwork/internal/dto"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// CatalogCache stores resolved catalog pages in Redis. Keys embed the hub id
// as a prefix segment so one hub's pages can be purged without touching the
// rest; workers do that when an override changes.
type CatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCatalogCache(rdb *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{rdb: rdb, ttl: ttl}
}

// Key derives a deterministic cache key from every input that affects the
// resolved page.
func (c *CatalogCache) Key(hubID int64, q dto.CatalogQuery) string {
	raw := fmt.Sprintf("%d|%d|%s|%v|%v|%d|%d",
		q.CycleID, q.CustomerID, q.NameCont, q.SupplierPropertyIDs, q.WithProperties, q.Page, q.PerPage)
	sum := md5.Sum([]byte(raw))
	return fmt.Sprintf("catalog:%d:%s", hubID, hex.EncodeToString(sum[:]))
}

// Get returns the cached page for key, or nil on miss. Cache errors are
// logged and treated as misses: the catalog must resolve without Redis.
func (c *CatalogCache) Get(ctx context.Context, key string) *dto.CatalogPageResponse {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
		}
		return nil
	}
	var page dto.CatalogPageResponse
	if err := json.Unmarshal(data, &page); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("catalog cache entry corrupt")
		return nil
	}
	return &page
}

func (c *CatalogCache) Set(ctx context.Context, key string, page *dto.CatalogPageResponse) {
	data, err := json.Marshal(page)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("catalog cache marshal failed")
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
}

// PurgeHub removes every cached page of one hub.
func (c *CatalogCache) PurgeHub(ctx context.Context, hubID int64) error {
	pattern := fmt.Sprintf("catalog:%d:*", hubID)
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
