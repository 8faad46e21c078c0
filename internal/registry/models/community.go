package models

import (
	"errors"
	"fmt"
	"time"
)

// CommunityStatus is the outcome of adding a person to a community.
type CommunityStatus string

const (
	CommunityStatusAdded         CommunityStatus = "ADDED"
	CommunityStatusAlreadyMember CommunityStatus = "ALREADY_MEMBER"
	CommunityStatusNotFound      CommunityStatus = "NOT_FOUND"
)

func (s CommunityStatus) IsAdded() bool { return s == CommunityStatusAdded }

func (s CommunityStatus) IsValid() bool {
	switch s {
	case CommunityStatusAdded, CommunityStatusAlreadyMember, CommunityStatusNotFound:
		return true
	default:
		return false
	}
}

func (s CommunityStatus) String() string { return string(s) }

// ErrInvalidCommunityPerson indicates a community result whose payload does not match its status.
var ErrInvalidCommunityPerson = errors.New("invalid community person")

// CommunityPerson is the result of an add-to-community call.
//
// Invariants:
//   - Person is set if and only if Status is ADDED
//   - ExistingID is set if and only if Status is ALREADY_MEMBER
type CommunityPerson struct {
	status     CommunityStatus
	existingID *PrivateID
	person     *PersonSmall
}

// Added builds the result for a person that joined the community.
func Added(person *PersonSmall) (CommunityPerson, error) {
	if person == nil {
		return CommunityPerson{}, fmt.Errorf("%w: status %s requires a person", ErrInvalidCommunityPerson, CommunityStatusAdded)
	}
	return CommunityPerson{status: CommunityStatusAdded, person: person}, nil
}

// AlreadyMember builds the result for a person that was a member before the call.
func AlreadyMember(existing PrivateID) CommunityPerson {
	return CommunityPerson{status: CommunityStatusAlreadyMember, existingID: &existing}
}

// NotFoundInRegistry builds the result for a person the registry could not match.
func NotFoundInRegistry() CommunityPerson {
	return CommunityPerson{status: CommunityStatusNotFound}
}

// NewCommunityPerson rebuilds a result from its parts, enforcing the status invariants.
func NewCommunityPerson(status CommunityStatus, existingID *PrivateID, person *PersonSmall) (CommunityPerson, error) {
	switch status {
	case CommunityStatusAdded:
		if existingID != nil {
			return CommunityPerson{}, fmt.Errorf("%w: status %s must not carry an existing id", ErrInvalidCommunityPerson, status)
		}
		return Added(person)
	case CommunityStatusAlreadyMember:
		if person != nil {
			return CommunityPerson{}, fmt.Errorf("%w: status %s must not carry a person", ErrInvalidCommunityPerson, status)
		}
		if existingID == nil {
			return CommunityPerson{}, fmt.Errorf("%w: status %s requires an existing id", ErrInvalidCommunityPerson, status)
		}
		return AlreadyMember(*existingID), nil
	case CommunityStatusNotFound:
		if person != nil || existingID != nil {
			return CommunityPerson{}, fmt.Errorf("%w: status %s must not carry a payload", ErrInvalidCommunityPerson, status)
		}
		return NotFoundInRegistry(), nil
	default:
		return CommunityPerson{}, fmt.Errorf("%w: unknown status %q", ErrInvalidCommunityPerson, status)
	}
}

func (c CommunityPerson) Status() CommunityStatus { return c.status }

// ExistingID returns the id of the pre-existing member, or nil.
func (c CommunityPerson) ExistingID() *PrivateID { return c.existingID }

// Person returns the added person, or nil unless the status is ADDED.
func (c CommunityPerson) Person() *PersonSmall { return c.person }

// IsZero reports whether the result was never populated.
func (c CommunityPerson) IsZero() bool { return c.status == "" }

// ChangeID constrains the identifier kinds a changes feed can carry.
type ChangeID interface {
	PrivateID | PublicID
}

// Changes lists the ids that changed within [From, To], in feed order.
type Changes[ID ChangeID] struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
	IDs  []ID      `json:"ids"`
}

// Privilege is an operation the calling member is allowed to invoke.
type Privilege struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (p Privilege) String() string {
	if p.Description == "" {
		return p.Name
	}
	return p.Name + " - " + p.Description
}
