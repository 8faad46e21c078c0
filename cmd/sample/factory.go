package main

import (
	"folkv3/internal/platform/certconfig"
	"folkv3/internal/platform/config"
	"folkv3/internal/registry/cache"
	"folkv3/internal/registry/client"
	"folkv3/internal/registry/ports"
)

// cachingFactory wraps every medium-person client in a MediumPersonCache.
type cachingFactory struct {
	client.Factory
	store cache.Store
	opts  []cache.Option
}

func (f cachingFactory) PersonMedium(heldin config.Heldin, cert *certconfig.Config) (ports.PersonMediumClient, error) {
	c, err := f.Factory.PersonMedium(heldin, cert)
	if err != nil {
		return nil, err
	}
	cached, err := cache.NewMediumPersonCache(c, f.store, f.opts...)
	if err != nil {
		return nil, err
	}
	return cached, nil
}
