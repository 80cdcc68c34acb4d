package retriever

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Priyadharshini-2004-S/Interview-Agent/pkg/metrics"
	pkgredis "github.com/Priyadharshini-2004-S/Interview-Agent/pkg/redis"
)

const keyPrefix = "match:"

// cachedEntry is the cached lookup outcome. Negative results are cached too,
// so unmatched questions do not rescan the corpus on every retry.
type cachedEntry struct {
	Found bool   `json:"found"`
	Match *Match `json:"match,omitempty"`
}

// Cached wraps a Retriever with a Redis lookaside cache. Concurrent lookups
// for the same question are collapsed with singleflight. Cache failures
// degrade to computing against the inner retriever.
type Cached struct {
	inner   Retriever
	client  *pkgredis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
	group   singleflight.Group
	logger  *slog.Logger
}

// NewCached creates a caching wrapper around inner. m may be nil.
func NewCached(inner Retriever, client *pkgredis.Client, ttl time.Duration, m *metrics.Metrics) *Cached {
	return &Cached{
		inner:   inner,
		client:  client,
		ttl:     ttl,
		metrics: m,
		logger:  slog.Default().With("component", "match-cache"),
	}
}

func (c *Cached) BestMatch(ctx context.Context, questionText string) (*Match, bool) {
	key := c.buildKey(questionText)
	if entry, ok := c.lookup(ctx, key); ok {
		c.hit()
		return entry.Match, entry.Found
	}
	c.miss()

	val, _, _ := c.group.Do(key, func() (interface{}, error) {
		if entry, ok := c.lookup(ctx, key); ok {
			return entry, nil
		}
		match, found := c.inner.BestMatch(ctx, questionText)
		entry := cachedEntry{Found: found, Match: match}
		c.store(ctx, key, entry)
		return entry, nil
	})
	entry := val.(cachedEntry)
	return entry.Match, entry.Found
}

func (c *Cached) lookup(ctx context.Context, key string) (cachedEntry, bool) {
	data, err := c.client.Get(ctx, key)
	if err != nil {
		if !pkgredis.IsNilError(err) {
			c.logger.Error("cache get failed", "key", key, "error", err)
		}
		return cachedEntry{}, false
	}
	var entry cachedEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		c.logger.Error("cache unmarshal failed", "key", key, "error", err)
		return cachedEntry{}, false
	}
	return entry, true
}

func (c *Cached) store(ctx context.Context, key string, entry cachedEntry) {
	data, err := json.Marshal(entry)
	if err != nil {
		c.logger.Error("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Error("cache set failed", "key", key, "error", err)
	}
}

func (c *Cached) buildKey(questionText string) string {
	hash := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(questionText))))
	return fmt.Sprintf("%s%x", keyPrefix, hash[:16])
}

func (c *Cached) hit() {
	if c.metrics != nil {
		c.metrics.MatchCacheHits.Inc()
	}
}

func (c *Cached) miss() {
	if c.metrics != nil {
		c.metrics.MatchCacheMisses.Inc()
	}
}
