package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"folkv3/internal/platform/certconfig"
	"folkv3/internal/platform/config"
	"folkv3/internal/registry/models"
	"folkv3/internal/registry/ports"
	"folkv3/internal/registry/wire"
)

var (
	_ ports.PrivateCommunityClient = (*PrivateCommunityClient)(nil)
	_ ports.PublicCommunityClient  = (*PublicCommunityClient)(nil)
)

// PrivateCommunityClient manages the member's private community.
type PrivateCommunityClient struct {
	*base
}

// PublicCommunityClient reads the public community's changes feed.
type PublicCommunityClient struct {
	*base
}

func NewPrivateCommunity(heldin config.Heldin, cert *certconfig.Config, opts ...Option) (*PrivateCommunityClient, error) {
	b, err := newBase(heldin, cert, opts...)
	if err != nil {
		return nil, err
	}
	return &PrivateCommunityClient{base: b}, nil
}

func NewPublicCommunity(heldin config.Heldin, cert *certconfig.Config, opts ...Option) (*PublicCommunityClient, error) {
	b, err := newBase(heldin, cert, opts...)
	if err != nil {
		return nil, err
	}
	return &PublicCommunityClient{base: b}, nil
}

func (c *PrivateCommunityClient) GetChanges(ctx context.Context, since time.Time) (models.Changes[models.PrivateID], error) {
	return getChanges[models.PrivateID](ctx, c.base, "private.get_changes", wire.PathPrivateChanges, since)
}

func (c *PublicCommunityClient) GetChanges(ctx context.Context, since time.Time) (models.Changes[models.PublicID], error) {
	return getChanges[models.PublicID](ctx, c.base, "public.get_changes", wire.PathPublicChanges, since)
}

func getChanges[ID models.ChangeID](ctx context.Context, b *base, op, path string, since time.Time) (models.Changes[ID], error) {
	var changes models.Changes[ID]
	if since.IsZero() {
		return changes, invalidInput(op, errMissingSince)
	}
	_, err := b.do(ctx, call{
		operation: op,
		method:    http.MethodGet,
		path:      path,
		query:     url.Values{wire.QuerySince: {since.Format(time.RFC3339)}},
	}, &changes)
	return changes, err
}

func (c *PrivateCommunityClient) AddPersonToCommunityByNameAndAddress(ctx context.Context, name models.NameParam, address models.AddressParam) (models.CommunityPerson, error) {
	const op = "private.add_person_by_name_and_address"
	req, err := wire.NameAndAddressRequest(name, address)
	if err != nil {
		return models.CommunityPerson{}, invalidInput(op, err)
	}
	return c.add(ctx, op, req)
}

func (c *PrivateCommunityClient) AddPersonToCommunityByNameAndDateOfBirth(ctx context.Context, name models.NameParam, dateOfBirth models.Date) (models.CommunityPerson, error) {
	const op = "private.add_person_by_name_and_date_of_birth"
	req, err := wire.NameAndDateOfBirthRequest(name, dateOfBirth)
	if err != nil {
		return models.CommunityPerson{}, invalidInput(op, err)
	}
	return c.add(ctx, op, req)
}

func (c *PrivateCommunityClient) add(ctx context.Context, op string, req wire.PersonRequest) (models.CommunityPerson, error) {
	var resp wire.CommunityPersonResponse
	if _, err := c.do(ctx, call{
		operation: op,
		method:    http.MethodPost,
		path:      wire.PathCommunity,
		body:      req,
	}, &resp); err != nil {
		return models.CommunityPerson{}, err
	}
	person, err := resp.ToModel()
	if err != nil {
		return models.CommunityPerson{}, newAPIError(op, http.StatusOK, CodeBadResponse, err.Error(), err)
	}
	return person, nil
}

func (c *PrivateCommunityClient) RemovePersonFromCommunity(ctx context.Context, id models.PrivateID) (*models.PrivateID, error) {
	const op = "private.remove_person"
	if id <= 0 {
		return nil, invalidInput(op, models.ErrInvalidID)
	}
	var resp wire.RemoveResponse
	found, err := c.do(ctx, call{
		operation:       op,
		method:          http.MethodDelete,
		path:            wire.PathCommunity + "/" + strconv.FormatInt(int64(id), 10),
		notFoundIsEmpty: true,
	}, &resp)
	if err != nil || !found {
		return nil, err
	}
	return &resp.ID, nil
}

func (c *PrivateCommunityClient) RemovePersonsFromCommunity(ctx context.Context, ids []models.PrivateID) ([]models.PrivateID, error) {
	const op = "private.remove_persons"
	if len(ids) == 0 {
		return []models.PrivateID{}, nil
	}
	for _, id := range ids {
		if id <= 0 {
			return nil, invalidInput(op, models.ErrInvalidID)
		}
	}
	var resp wire.RemoveManyResponse
	if _, err := c.do(ctx, call{
		operation: op,
		method:    http.MethodPost,
		path:      wire.PathCommunityRemoveAll,
		body:      wire.RemoveManyRequest{IDs: ids},
	}, &resp); err != nil {
		return nil, err
	}
	if resp.IDs == nil {
		resp.IDs = []models.PrivateID{}
	}
	return resp.IDs, nil
}
