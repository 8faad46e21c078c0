package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// PrivateID is the registry's internal key for a person record.
type PrivateID int64

// PublicID is the externally disclosable key for a person record.
type PublicID int64

// ErrInvalidID indicates a non-positive registry identifier.
var ErrInvalidID = errors.New("invalid registry id: must be positive")

// NewPrivateID creates a validated PrivateID.
func NewPrivateID(value int64) (PrivateID, error) {
	if value <= 0 {
		return 0, ErrInvalidID
	}
	return PrivateID(value), nil
}

// NewPublicID creates a validated PublicID.
func NewPublicID(value int64) (PublicID, error) {
	if value <= 0 {
		return 0, ErrInvalidID
	}
	return PublicID(value), nil
}

// PrivateIDs builds a list of private ids, e.g. PrivateIDs(1, 2, 3).
func PrivateIDs(values ...int64) []PrivateID {
	ids := make([]PrivateID, 0, len(values))
	for _, v := range values {
		ids = append(ids, PrivateID(v))
	}
	return ids
}

func (id PrivateID) String() string { return strconv.FormatInt(int64(id), 10) }

func (id PublicID) String() string { return strconv.FormatInt(int64(id), 10) }

// IsZero reports an absent id. The registry never issues non-positive ids.
func (id PrivateID) IsZero() bool { return id <= 0 }

func (id PublicID) IsZero() bool { return id <= 0 }

// Ptal is the Faroese personal-number code (DDMMYYNNN).
//
// Invariants:
//   - Exactly nine digits once the optional dash after the birth date is removed
type Ptal struct {
	value string
}

var ptalPattern = regexp.MustCompile(`^(\d{6})-?(\d{3})$`)

// ErrInvalidPtal indicates the personal-number code failed validation.
var ErrInvalidPtal = errors.New("invalid ptal: must be 9 digits, optionally formatted DDMMYY-NNN")

// NewPtal creates a validated Ptal. Both "300408559" and "300408-559" are accepted.
func NewPtal(value string) (Ptal, error) {
	m := ptalPattern.FindStringSubmatch(value)
	if m == nil {
		return Ptal{}, ErrInvalidPtal
	}
	return Ptal{value: m[1] + m[2]}, nil
}

// MustPtal creates a Ptal, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustPtal(value string) Ptal {
	p, err := NewPtal(value)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the nine digits without formatting.
func (p Ptal) String() string {
	return p.value
}

// FormattedValue returns the code as DDMMYY-NNN.
func (p Ptal) FormattedValue() string {
	if p.IsZero() {
		return ""
	}
	return p.value[:6] + "-" + p.value[6:]
}

// IsZero returns true if this is the zero value (uninitialized).
func (p Ptal) IsZero() bool {
	return p.value == ""
}

func (p Ptal) MarshalJSON() ([]byte, error) {
	if p.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}

func (p *Ptal) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*p = Ptal{}
		return nil
	}
	parsed, err := NewPtal(*s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// IdentityKind tags which identifier an Identity carries.
type IdentityKind string

const (
	IdentityPrivate IdentityKind = "private_id"
	IdentityPublic  IdentityKind = "public_id"
	IdentityPtal    IdentityKind = "ptal"
)

// Identity identifies exactly one person by exactly one kind of identifier.
// The zero value is not a valid identity; use ByPrivateID, ByPublicID or ByPtal.
type Identity struct {
	kind      IdentityKind
	privateID PrivateID
	publicID  PublicID
	ptal      Ptal
}

func ByPrivateID(id PrivateID) Identity { return Identity{kind: IdentityPrivate, privateID: id} }

func ByPublicID(id PublicID) Identity { return Identity{kind: IdentityPublic, publicID: id} }

func ByPtal(p Ptal) Identity { return Identity{kind: IdentityPtal, ptal: p} }

func (i Identity) Kind() IdentityKind { return i.kind }

// PrivateID returns the private id and whether the identity is of that kind.
func (i Identity) PrivateID() (PrivateID, bool) { return i.privateID, i.kind == IdentityPrivate }

// PublicID returns the public id and whether the identity is of that kind.
func (i Identity) PublicID() (PublicID, bool) { return i.publicID, i.kind == IdentityPublic }

// Ptal returns the personal-number code and whether the identity is of that kind.
func (i Identity) Ptal() (Ptal, bool) { return i.ptal, i.kind == IdentityPtal }

// Value returns the identifier rendered as a string.
func (i Identity) Value() string {
	switch i.kind {
	case IdentityPrivate:
		return i.privateID.String()
	case IdentityPublic:
		return i.publicID.String()
	case IdentityPtal:
		return i.ptal.String()
	default:
		return ""
	}
}

// Validate checks that the identity was built through a constructor with a usable value.
func (i Identity) Validate() error {
	switch i.kind {
	case IdentityPrivate:
		if i.privateID <= 0 {
			return ErrInvalidID
		}
	case IdentityPublic:
		if i.publicID <= 0 {
			return ErrInvalidID
		}
	case IdentityPtal:
		if i.ptal.IsZero() {
			return ErrInvalidPtal
		}
	default:
		return fmt.Errorf("identity kind %q is not supported", i.kind)
	}
	return nil
}

func (i Identity) String() string {
	return string(i.kind) + ":" + i.Value()
}
