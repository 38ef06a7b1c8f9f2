package roster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"figurine-manager/core/reconcile"
	"figurine-manager/core/storage"
	"figurine-manager/core/telemetry"
	"figurine-manager/feature/roster/models"
)

// Extension is the file extension of roster documents.
const Extension = ".json"

// Provider reads roster documents from object storage. It implements
// reconcile.RequiredModelsProvider.
type Provider struct {
	client  storage.Client
	bucket  string
	prefix  string
	metrics *telemetry.Metrics
	cache   *cache
}

// NewProvider creates a provider reading '<prefix>/<key>.json' from bucket.
// A non-positive ttl disables caching. metrics may be nil.
func NewProvider(client storage.Client, bucket, prefix string, ttl time.Duration, metrics *telemetry.Metrics) *Provider {
	return &Provider{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		metrics: metrics,
		cache:   newCache(ttl),
	}
}

// ObjectName returns the object key of a roster.
func (p *Provider) ObjectName(key string) string {
	return storage.ObjectPath(p.prefix, key+Extension)
}

// Document returns the parsed roster for key, from cache when fresh.
func (p *Provider) Document(ctx context.Context, key string) (*models.Document, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	doc, hit, err := p.cache.getOrLoad(ctx, key, func(ctx context.Context) (*models.Document, error) {
		return p.fetch(ctx, key)
	})
	if p.metrics != nil {
		result := "miss"
		if hit {
			result = "hit"
		}
		p.metrics.RosterCacheTotal.WithLabelValues(result).Inc()
	}
	return doc, err
}

// RequiredModels returns the physical models the roster requires.
func (p *Provider) RequiredModels(ctx context.Context, key string) ([]reconcile.RequiredModel, error) {
	doc, err := p.Document(ctx, key)
	if err != nil {
		return nil, err
	}
	return Models(doc), nil
}

// Keys lists the roster keys present in storage.
func (p *Provider) Keys(ctx context.Context) ([]string, error) {
	return storage.ListKeys(ctx, p.client, p.bucket, p.prefix, Extension)
}

// Summaries describes every roster in storage, skipping none: the first
// unreadable document fails the call.
func (p *Provider) Summaries(ctx context.Context) ([]models.Summary, error) {
	keys, err := p.Keys(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Summary, 0, len(keys))
	for _, key := range keys {
		doc, err := p.Document(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("roster %s: %w", key, err)
		}
		out = append(out, Summarize(key, doc))
	}
	return out, nil
}

// Invalidate drops the cached document of key.
func (p *Provider) Invalidate(key string) {
	p.cache.invalidate(key)
}

// InvalidateAll drops every cached document.
func (p *Provider) InvalidateAll() {
	p.cache.clear()
}

func (p *Provider) fetch(ctx context.Context, key string) (*models.Document, error) {
	data, err := storage.ReadObject(ctx, p.client, p.bucket, p.ObjectName(key))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", key, err)
	}
	return doc, nil
}
