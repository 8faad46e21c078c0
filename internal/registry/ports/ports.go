// Package ports defines the registry client contracts the sample and the cache depend on.
//
// Lookups that find nobody return a nil record and a nil error; errors are
// reserved for failed calls.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks PrivilegeReader,PersonSmallClient,PersonMediumClient,PrivateCommunityClient,PublicCommunityClient

import (
	"context"
	"time"

	"folkv3/internal/registry/models"
)

// PrivilegeReader lists what the calling member may do.
type PrivilegeReader interface {
	GetMyPrivileges(ctx context.Context) ([]models.Privilege, error)
}

// PersonSmallClient looks up minimal person records.
type PersonSmallClient interface {
	PrivilegeReader
	GetPerson(ctx context.Context, id models.Identity) (*models.PersonSmall, error)
	GetPersonByNameAndAddress(ctx context.Context, name models.NameParam, address models.AddressParam) (*models.PersonSmall, error)
	GetPersonByNameAndDateOfBirth(ctx context.Context, name models.NameParam, dateOfBirth models.Date) (*models.PersonSmall, error)
}

// PersonMediumClient looks up medium person records.
type PersonMediumClient interface {
	PrivilegeReader
	GetPerson(ctx context.Context, id models.Identity) (*models.PersonMedium, error)
	GetPersonByNameAndAddress(ctx context.Context, name models.NameParam, address models.AddressParam) (*models.PersonMedium, error)
	GetPersonByNameAndDateOfBirth(ctx context.Context, name models.NameParam, dateOfBirth models.Date) (*models.PersonMedium, error)
}

// PrivateCommunityClient manages the member's private community and its changes feed.
type PrivateCommunityClient interface {
	PrivilegeReader
	GetChanges(ctx context.Context, since time.Time) (models.Changes[models.PrivateID], error)
	AddPersonToCommunityByNameAndAddress(ctx context.Context, name models.NameParam, address models.AddressParam) (models.CommunityPerson, error)
	AddPersonToCommunityByNameAndDateOfBirth(ctx context.Context, name models.NameParam, dateOfBirth models.Date) (models.CommunityPerson, error)
	// RemovePersonFromCommunity returns the removed id, or nil when the id was not a member.
	RemovePersonFromCommunity(ctx context.Context, id models.PrivateID) (*models.PrivateID, error)
	// RemovePersonsFromCommunity returns the subset of ids that were removed.
	RemovePersonsFromCommunity(ctx context.Context, ids []models.PrivateID) ([]models.PrivateID, error)
}

// PublicCommunityClient reads the public community's changes feed.
type PublicCommunityClient interface {
	PrivilegeReader
	GetChanges(ctx context.Context, since time.Time) (models.Changes[models.PublicID], error)
}
