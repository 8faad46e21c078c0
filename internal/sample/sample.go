// Package sample drives the registry clients through the demonstration
// scenarios and renders their results.
package sample

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"folkv3/internal/platform/certconfig"
	"folkv3/internal/platform/config"
	"folkv3/internal/registry/client"
	"folkv3/internal/registry/ports"
)

// Factory creates the four registry clients the sample uses.
type Factory interface {
	PersonSmall(heldin config.Heldin, cert *certconfig.Config) (ports.PersonSmallClient, error)
	PersonMedium(heldin config.Heldin, cert *certconfig.Config) (ports.PersonMediumClient, error)
	PrivateCommunity(heldin config.Heldin, cert *certconfig.Config) (ports.PrivateCommunityClient, error)
	PublicCommunity(heldin config.Heldin, cert *certconfig.Config) (ports.PublicCommunityClient, error)
}

type Option func(*Sample)

// WithFactory replaces the HTTP client factory.
func WithFactory(f Factory) Option {
	return func(s *Sample) {
		if f != nil {
			s.factory = f
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Sample) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the clock the changes scenarios count back from.
func WithClock(now func() time.Time) Option {
	return func(s *Sample) {
		if now != nil {
			s.now = now
		}
	}
}

// lazy creates a value at most once; the first result, error included, is kept.
type lazy[T any] struct {
	once  sync.Once
	value T
	err   error
}

func (l *lazy[T]) get(create func() (T, error)) (T, error) {
	l.once.Do(func() {
		l.value, l.err = create()
	})
	return l.value, l.err
}

// Sample holds the member configuration and creates each client on first use.
// It is safe for concurrent use.
type Sample struct {
	heldin  config.Heldin
	cert    *certconfig.Config
	factory Factory
	logger  *slog.Logger
	now     func() time.Time

	small            lazy[ports.PersonSmallClient]
	medium           lazy[ports.PersonMediumClient]
	privateCommunity lazy[ports.PrivateCommunityClient]
	publicCommunity  lazy[ports.PublicCommunityClient]
}

// New creates a Sample. A nil cert means no client certificate and any
// server certificate is trusted.
func New(heldin config.Heldin, cert *certconfig.Config, opts ...Option) *Sample {
	s := &Sample{
		heldin: heldin,
		cert:   cert,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.factory == nil {
		s.factory = client.NewFactory(client.WithLogger(s.logger))
	}
	return s
}

func (s *Sample) SmallClient() (ports.PersonSmallClient, error) {
	return s.small.get(func() (ports.PersonSmallClient, error) {
		c, err := s.factory.PersonSmall(s.heldin, s.cert)
		if err != nil {
			return nil, fmt.Errorf("create small person client: %w", err)
		}
		return c, nil
	})
}

func (s *Sample) MediumClient() (ports.PersonMediumClient, error) {
	return s.medium.get(func() (ports.PersonMediumClient, error) {
		c, err := s.factory.PersonMedium(s.heldin, s.cert)
		if err != nil {
			return nil, fmt.Errorf("create medium person client: %w", err)
		}
		return c, nil
	})
}

func (s *Sample) PrivateCommunityClient() (ports.PrivateCommunityClient, error) {
	return s.privateCommunity.get(func() (ports.PrivateCommunityClient, error) {
		c, err := s.factory.PrivateCommunity(s.heldin, s.cert)
		if err != nil {
			return nil, fmt.Errorf("create private community client: %w", err)
		}
		return c, nil
	})
}

func (s *Sample) PublicCommunityClient() (ports.PublicCommunityClient, error) {
	return s.publicCommunity.get(func() (ports.PublicCommunityClient, error) {
		c, err := s.factory.PublicCommunity(s.heldin, s.cert)
		if err != nil {
			return nil, fmt.Errorf("create public community client: %w", err)
		}
		return c, nil
	})
}
