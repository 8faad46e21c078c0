package client

import (
	"context"
	"net/http"

	"folkv3/internal/platform/certconfig"
	"folkv3/internal/platform/config"
	"folkv3/internal/registry/models"
	"folkv3/internal/registry/ports"
	"folkv3/internal/registry/wire"
)

var (
	_ ports.PersonSmallClient  = (*PersonSmallClient)(nil)
	_ ports.PersonMediumClient = (*PersonMediumClient)(nil)
)

// PersonSmallClient looks up small person records.
type PersonSmallClient struct {
	personClient[models.PersonSmall]
}

// PersonMediumClient looks up medium person records.
type PersonMediumClient struct {
	personClient[models.PersonMedium]
}

// NewPersonSmall creates a small-person client. A nil cert means no client
// certificate and any server certificate is trusted.
func NewPersonSmall(heldin config.Heldin, cert *certconfig.Config, opts ...Option) (*PersonSmallClient, error) {
	b, err := newBase(heldin, cert, opts...)
	if err != nil {
		return nil, err
	}
	return &PersonSmallClient{personClient[models.PersonSmall]{base: b, level: "small", path: wire.PathSmallPerson}}, nil
}

// NewPersonMedium creates a medium-person client. A nil cert means no client
// certificate and any server certificate is trusted.
func NewPersonMedium(heldin config.Heldin, cert *certconfig.Config, opts ...Option) (*PersonMediumClient, error) {
	b, err := newBase(heldin, cert, opts...)
	if err != nil {
		return nil, err
	}
	return &PersonMediumClient{personClient[models.PersonMedium]{base: b, level: "medium", path: wire.PathMediumPerson}}, nil
}

// personClient implements the lookups shared by the small and medium APIs;
// P is the record type the endpoint returns.
type personClient[P models.PersonSmall | models.PersonMedium] struct {
	*base
	level string
	path  string
}

func (c personClient[P]) GetPerson(ctx context.Context, id models.Identity) (*P, error) {
	op := c.level + ".get_person"
	req, err := wire.IdentityRequest(id)
	if err != nil {
		return nil, invalidInput(op, err)
	}
	return c.lookup(ctx, op, req)
}

func (c personClient[P]) GetPersonByNameAndAddress(ctx context.Context, name models.NameParam, address models.AddressParam) (*P, error) {
	op := c.level + ".get_person_by_name_and_address"
	req, err := wire.NameAndAddressRequest(name, address)
	if err != nil {
		return nil, invalidInput(op, err)
	}
	return c.lookup(ctx, op, req)
}

func (c personClient[P]) GetPersonByNameAndDateOfBirth(ctx context.Context, name models.NameParam, dateOfBirth models.Date) (*P, error) {
	op := c.level + ".get_person_by_name_and_date_of_birth"
	req, err := wire.NameAndDateOfBirthRequest(name, dateOfBirth)
	if err != nil {
		return nil, invalidInput(op, err)
	}
	return c.lookup(ctx, op, req)
}

func (c personClient[P]) lookup(ctx context.Context, op string, req wire.PersonRequest) (*P, error) {
	var person P
	found, err := c.do(ctx, call{
		operation:       op,
		method:          http.MethodPost,
		path:            c.path,
		body:            req,
		notFoundIsEmpty: true,
	}, &person)
	if err != nil || !found {
		return nil, err
	}
	return &person, nil
}

// GetMyPrivileges lists the operations the calling member may invoke.
func (b *base) GetMyPrivileges(ctx context.Context) ([]models.Privilege, error) {
	var resp wire.PrivilegesResponse
	if _, err := b.do(ctx, call{
		operation: "get_my_privileges",
		method:    http.MethodGet,
		path:      wire.PathPrivileges,
	}, &resp); err != nil {
		return nil, err
	}
	return resp.Privileges, nil
}
