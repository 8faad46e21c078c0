package client

import (
	"folkv3/internal/platform/certconfig"
	"folkv3/internal/platform/config"
	"folkv3/internal/registry/ports"
)

// Factory builds HTTP-backed registry clients sharing one set of options.
type Factory struct {
	Options []Option
}

func NewFactory(opts ...Option) Factory {
	return Factory{Options: opts}
}

func (f Factory) PersonSmall(heldin config.Heldin, cert *certconfig.Config) (ports.PersonSmallClient, error) {
	c, err := NewPersonSmall(heldin, cert, f.Options...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (f Factory) PersonMedium(heldin config.Heldin, cert *certconfig.Config) (ports.PersonMediumClient, error) {
	c, err := NewPersonMedium(heldin, cert, f.Options...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (f Factory) PrivateCommunity(heldin config.Heldin, cert *certconfig.Config) (ports.PrivateCommunityClient, error) {
	c, err := NewPrivateCommunity(heldin, cert, f.Options...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (f Factory) PublicCommunity(heldin config.Heldin, cert *certconfig.Config) (ports.PublicCommunityClient, error) {
	c, err := NewPublicCommunity(heldin, cert, f.Options...)
	if err != nil {
		return nil, err
	}
	return c, nil
}
