// Package wire defines the JSON contract between registry clients and the registry API.
package wire

import (
	"errors"
	"fmt"

	"folkv3/internal/registry/models"
)

// BasePath prefixes every registry endpoint.
const BasePath = "/folk/v3"

const (
	PathPrivileges         = "/privileges"
	PathSmallPerson        = "/small/person"
	PathMediumPerson       = "/medium/person"
	PathPrivateChanges     = "/private/changes"
	PathPublicChanges      = "/public/changes"
	PathCommunity          = "/private/community"
	PathCommunityRemoveAll = "/private/community/remove"
)

// QuerySince is the RFC 3339 lower bound of a changes query.
const QuerySince = "since"

// ErrInvalidRequest indicates a request body that selects no person or more than one.
var ErrInvalidRequest = errors.New("invalid registry request")

type PrivilegesResponse struct {
	Privileges []models.Privilege `json:"privileges"`
}

// PersonRequest selects a person by an identity, by name and address, or by
// name and date of birth. Exactly one selector is set.
type PersonRequest struct {
	PrivateID   *models.PrivateID    `json:"private_id,omitempty"`
	PublicID    *models.PublicID     `json:"public_id,omitempty"`
	Ptal        string               `json:"ptal,omitempty"`
	Name        *models.NameParam    `json:"name,omitempty"`
	Address     *models.AddressParam `json:"address,omitempty"`
	DateOfBirth *models.Date         `json:"date_of_birth,omitempty"`
}

// Selector names which lookup the request performs.
type Selector string

const (
	SelectPrivateID          Selector = "private_id"
	SelectPublicID           Selector = "public_id"
	SelectPtal               Selector = "ptal"
	SelectNameAndAddress     Selector = "name_and_address"
	SelectNameAndDateOfBirth Selector = "name_and_date_of_birth"
)

func IdentityRequest(id models.Identity) (PersonRequest, error) {
	if err := id.Validate(); err != nil {
		return PersonRequest{}, err
	}
	var req PersonRequest
	if v, ok := id.PrivateID(); ok {
		req.PrivateID = &v
	}
	if v, ok := id.PublicID(); ok {
		req.PublicID = &v
	}
	if v, ok := id.Ptal(); ok {
		req.Ptal = v.String()
	}
	return req, nil
}

func NameAndAddressRequest(name models.NameParam, address models.AddressParam) (PersonRequest, error) {
	if err := errors.Join(name.Validate(), address.Validate()); err != nil {
		return PersonRequest{}, err
	}
	return PersonRequest{Name: &name, Address: &address}, nil
}

func NameAndDateOfBirthRequest(name models.NameParam, dateOfBirth models.Date) (PersonRequest, error) {
	if err := name.Validate(); err != nil {
		return PersonRequest{}, err
	}
	if dateOfBirth.IsZero() {
		return PersonRequest{}, fmt.Errorf("%w: date of birth is required", models.ErrInvalidParam)
	}
	return PersonRequest{Name: &name, DateOfBirth: &dateOfBirth}, nil
}

// Selector validates the request and reports which lookup it performs.
func (r PersonRequest) Selector() (Selector, error) {
	var selected []Selector
	if r.PrivateID != nil {
		selected = append(selected, SelectPrivateID)
	}
	if r.PublicID != nil {
		selected = append(selected, SelectPublicID)
	}
	if r.Ptal != "" {
		selected = append(selected, SelectPtal)
	}
	if r.Name != nil {
		switch {
		case r.Address != nil && r.DateOfBirth == nil:
			selected = append(selected, SelectNameAndAddress)
		case r.DateOfBirth != nil && r.Address == nil:
			selected = append(selected, SelectNameAndDateOfBirth)
		default:
			return "", fmt.Errorf("%w: a name needs exactly one of address or date of birth", ErrInvalidRequest)
		}
	} else if r.Address != nil || r.DateOfBirth != nil {
		return "", fmt.Errorf("%w: address and date of birth require a name", ErrInvalidRequest)
	}
	if len(selected) != 1 {
		return "", fmt.Errorf("%w: expected exactly one selector, got %d", ErrInvalidRequest, len(selected))
	}
	return selected[0], nil
}

// CommunityPersonResponse is the wire form of models.CommunityPerson.
type CommunityPersonResponse struct {
	Status     models.CommunityStatus `json:"status"`
	ExistingID *models.PrivateID      `json:"existing_id,omitempty"`
	Person     *models.PersonSmall    `json:"person,omitempty"`
}

func FromCommunityPerson(p models.CommunityPerson) CommunityPersonResponse {
	return CommunityPersonResponse{Status: p.Status(), ExistingID: p.ExistingID(), Person: p.Person()}
}

// ToModel rebuilds the result, rejecting payloads that contradict the status.
func (r CommunityPersonResponse) ToModel() (models.CommunityPerson, error) {
	return models.NewCommunityPerson(r.Status, r.ExistingID, r.Person)
}

type RemoveResponse struct {
	ID models.PrivateID `json:"id"`
}

type RemoveManyRequest struct {
	IDs []models.PrivateID `json:"ids"`
}

type RemoveManyResponse struct {
	IDs []models.PrivateID `json:"ids"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
