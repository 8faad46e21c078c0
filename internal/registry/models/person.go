package models

import "strings"

// Country is a country code with its Faroese name.
type Country struct {
	Code   string `json:"code"`
	NameFo string `json:"name_fo"`
}

// Address is a registered address. Every part is optional.
type Address struct {
	Street      string      `json:"street,omitempty"`
	HouseNumber HouseNumber `json:"house_number"`
	Apartment   string      `json:"apartment,omitempty"`
	PostalCode  string      `json:"postal_code,omitempty"`
	City        string      `json:"city,omitempty"`
	Country     Country     `json:"country"`
	From        Date        `json:"from"`
}

// HasStreetAndNumbers reports whether the address carries street data.
func (a *Address) HasStreetAndNumbers() bool {
	return a != nil && strings.TrimSpace(a.Street) != ""
}

// StreetAndNumbers renders street, house number and apartment, e.g. "Úti í Bø 16".
func (a *Address) StreetAndNumbers() string {
	if !a.HasStreetAndNumbers() {
		return ""
	}
	var b strings.Builder
	b.WriteString(a.Street)
	if n := a.HouseNumber.String(); n != "" {
		b.WriteString(" ")
		b.WriteString(n)
	}
	if a.Apartment != "" {
		b.WriteString(", ")
		b.WriteString(a.Apartment)
	}
	return b.String()
}

// Name is a person's registered name.
type Name struct {
	FirstNames  string `json:"first_names"`
	MiddleNames string `json:"middle_names,omitempty"`
	LastName    string `json:"last_name"`
}

func (n Name) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{n.FirstNames, n.MiddleNames, n.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// CivilStatus is a marital or legal status with its effective date.
type CivilStatus struct {
	Type string `json:"type"`
	From Date   `json:"from"`
}

// SpecialMark flags a restriction recorded on a person.
type SpecialMark string

const (
	SpecialMarkNameAndAddressProtection SpecialMark = "NAME_AND_ADDRESS_PROTECTION"
	SpecialMarkNoMarketing              SpecialMark = "NO_MARKETING"
	SpecialMarkNoResearch               SpecialMark = "NO_RESEARCH"
)

func (m SpecialMark) String() string { return string(m) }

// Guardian is responsible for a person under incapacity.
type Guardian struct {
	Name    Name     `json:"name"`
	Address *Address `json:"address,omitempty"`
}

// Incapacity is a legal-capacity restriction naming one or two guardians.
type Incapacity struct {
	Guardian1 *Guardian `json:"guardian1,omitempty"`
	Guardian2 *Guardian `json:"guardian2,omitempty"`
}

// PersonSmall is the minimal person record.
type PersonSmall struct {
	PrivateID   PrivateID `json:"private_id"`
	Name        Name      `json:"name"`
	Address     *Address  `json:"address,omitempty"`
	Alive       bool      `json:"alive"`
	DateOfDeath Date      `json:"date_of_death"`
}

// PersonMedium extends PersonSmall; it can be used wherever a PersonSmall is expected via Small().
type PersonMedium struct {
	PersonSmall
	PublicID     PublicID      `json:"public_id"`
	Ptal         Ptal          `json:"ptal"`
	DateOfBirth  Date          `json:"date_of_birth"`
	CivilStatus  *CivilStatus  `json:"civil_status,omitempty"`
	SpecialMarks []SpecialMark `json:"special_marks,omitempty"`
	Incapacity   *Incapacity   `json:"incapacity,omitempty"`
}

// Small returns the small view of the medium record.
func (p *PersonMedium) Small() *PersonSmall {
	if p == nil {
		return nil
	}
	return &p.PersonSmall
}

// Clone returns a copy that shares no pointers or slices with p.
func (p *PersonMedium) Clone() *PersonMedium {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Address = p.Address.clone()
	if p.CivilStatus != nil {
		cs := *p.CivilStatus
		cp.CivilStatus = &cs
	}
	if p.SpecialMarks != nil {
		cp.SpecialMarks = append([]SpecialMark(nil), p.SpecialMarks...)
	}
	if p.Incapacity != nil {
		cp.Incapacity = &Incapacity{
			Guardian1: p.Incapacity.Guardian1.clone(),
			Guardian2: p.Incapacity.Guardian2.clone(),
		}
	}
	return &cp
}

func (a *Address) clone() *Address {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}

func (g *Guardian) clone() *Guardian {
	if g == nil {
		return nil
	}
	return &Guardian{Name: g.Name, Address: g.Address.clone()}
}

// PersonKind tags which level of detail a Person carries.
type PersonKind string

const (
	PersonKindSmall  PersonKind = "small"
	PersonKindMedium PersonKind = "medium"
)

// Person is either a small or a medium person record.
type Person struct {
	Kind   PersonKind
	Small  *PersonSmall
	Medium *PersonMedium
}

func SmallPerson(p *PersonSmall) Person { return Person{Kind: PersonKindSmall, Small: p} }

func MediumPerson(p *PersonMedium) Person { return Person{Kind: PersonKindMedium, Medium: p} }

// Base returns the small fields regardless of kind, or nil for an empty Person.
func (p Person) Base() *PersonSmall {
	switch p.Kind {
	case PersonKindMedium:
		return p.Medium.Small()
	case PersonKindSmall:
		return p.Small
	default:
		return nil
	}
}

// IsZero reports whether the Person carries no record.
func (p Person) IsZero() bool {
	return p.Base() == nil
}
