package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"folkv3/internal/platform/config"
	"folkv3/internal/platform/metrics"
	"folkv3/internal/registry/models"
	"folkv3/internal/registry/ports"
)

var _ ports.PersonMediumClient = (*MediumPersonCache)(nil)

// DefaultKeyPrefix namespaces entries in a shared store.
const DefaultKeyPrefix = "folkv3:person:medium:"

// Option configures a MediumPersonCache.
type Option func(*MediumPersonCache)

// WithTTL sets how long a found person is kept.
func WithTTL(ttl time.Duration) Option {
	return func(c *MediumPersonCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *MediumPersonCache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *MediumPersonCache) {
		c.metrics = m
	}
}

// WithKeyPrefix separates entries of different callers sharing one store.
func WithKeyPrefix(prefix string) Option {
	return func(c *MediumPersonCache) {
		c.prefix = prefix
	}
}

// MediumPersonCache caches identity lookups of a PersonMediumClient.
//
// Only found persons are cached; name-based lookups and not-found results
// always go to the registry. Store failures are logged and the registry is
// asked instead.
type MediumPersonCache struct {
	next    ports.PersonMediumClient
	store   Store
	ttl     time.Duration
	prefix  string
	logger  *slog.Logger
	metrics *metrics.Metrics
	group   singleflight.Group
}

func NewMediumPersonCache(next ports.PersonMediumClient, store Store, opts ...Option) (*MediumPersonCache, error) {
	if next == nil {
		return nil, errors.New("registry client is required")
	}
	if store == nil {
		return nil, errors.New("cache store is required")
	}
	c := &MediumPersonCache{
		next:   next,
		store:  store,
		ttl:    config.RegistryCacheTTL,
		prefix: DefaultKeyPrefix,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *MediumPersonCache) GetMyPrivileges(ctx context.Context) ([]models.Privilege, error) {
	return c.next.GetMyPrivileges(ctx)
}

func (c *MediumPersonCache) GetPerson(ctx context.Context, id models.Identity) (*models.PersonMedium, error) {
	if id.Validate() != nil {
		return c.next.GetPerson(ctx, id)
	}
	key := c.prefix + id.String()

	if p, ok := c.load(ctx, key); ok {
		return p, nil
	}

	// The shared lookup outlives any single caller; the client's own timeout
	// bounds it. Each caller still stops waiting when its ctx ends.
	ch := c.group.DoChan(key, func() (any, error) {
		fetchCtx := context.WithoutCancel(ctx)
		p, err := c.next.GetPerson(fetchCtx, id)
		if err != nil || p == nil {
			return p, err
		}
		c.save(fetchCtx, key, p)
		return p, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		p, _ := res.Val.(*models.PersonMedium)
		return p.Clone(), nil
	}
}

func (c *MediumPersonCache) GetPersonByNameAndAddress(ctx context.Context, name models.NameParam, address models.AddressParam) (*models.PersonMedium, error) {
	return c.next.GetPersonByNameAndAddress(ctx, name, address)
}

func (c *MediumPersonCache) GetPersonByNameAndDateOfBirth(ctx context.Context, name models.NameParam, dateOfBirth models.Date) (*models.PersonMedium, error) {
	return c.next.GetPersonByNameAndDateOfBirth(ctx, name, dateOfBirth)
}

func (c *MediumPersonCache) load(ctx context.Context, key string) (*models.PersonMedium, bool) {
	data, err := c.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		c.metrics.IncrementCacheLookup("miss")
		return nil, false
	}
	if err != nil {
		c.metrics.IncrementCacheLookup("error")
		c.logger.WarnContext(ctx, "person cache read failed", "key", key, "error", err)
		return nil, false
	}
	var p models.PersonMedium
	if err := json.Unmarshal(data, &p); err != nil {
		c.metrics.IncrementCacheLookup("error")
		c.logger.WarnContext(ctx, "person cache entry unreadable", "key", key, "error", err)
		return nil, false
	}
	c.metrics.IncrementCacheLookup("hit")
	return &p, true
}

func (c *MediumPersonCache) save(ctx context.Context, key string, p *models.PersonMedium) {
	data, err := json.Marshal(p)
	if err != nil {
		c.logger.WarnContext(ctx, "person cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.WarnContext(ctx, "person cache write failed", "key", key, "error", err)
	}
}
