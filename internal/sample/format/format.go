// Package format renders registry records as single pipe-delimited lines.
//
// Absent values always render as Placeholder so that a line has a fixed
// number of columns for its record kind.
package format

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"folkv3/internal/registry/models"
)

const (
	Placeholder = "-"
	Delimiter   = " | "

	alive = "ALIVE"
	dead  = "DEAD"
)

// Join renders each value and joins them with Delimiter. Nil values, typed
// nil pointers, values reporting IsZero and values rendering as an empty
// string become Placeholder.
func Join(values ...any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = render(v)
	}
	return strings.Join(parts, Delimiter)
}

func render(v any) string {
	if v == nil {
		return Placeholder
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Placeholder
	}
	if z, ok := v.(interface{ IsZero() bool }); ok && z.IsZero() {
		return Placeholder
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case fmt.Stringer:
		s = t.String()
	default:
		s = fmt.Sprint(t)
	}
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

// Person renders a small (4 columns) or medium (10 columns) line. The medium
// line repeats every small column.
func Person(p models.Person) string {
	switch p.Kind {
	case models.PersonKindMedium:
		if p.Medium != nil {
			return medium(p.Medium)
		}
	case models.PersonKindSmall:
		if p.Small != nil {
			return small(p.Small)
		}
	}
	return Placeholder
}

func small(p *models.PersonSmall) string {
	return Join(p.PrivateID, p.Name, Address(p.Address), LifeStatus(p))
}

func medium(p *models.PersonMedium) string {
	return Join(
		p.PrivateID,
		p.PublicID,
		p.Ptal.FormattedValue(),
		p.Name,
		Address(p.Address),
		p.DateOfBirth,
		LifeStatus(&p.PersonSmall),
		CivilStatus(p.CivilStatus),
		SpecialMarks(p.SpecialMarks),
		Incapacity(p.Incapacity),
	)
}

// LifeStatus is ALIVE, or DEAD followed by the date of death when known.
func LifeStatus(p *models.PersonSmall) string {
	if p.Alive {
		return alive
	}
	if p.DateOfDeath.IsZero() {
		return dead
	}
	return dead + " " + p.DateOfDeath.String()
}

// Address renders "{street and numbers}; {country code}{postal code} {city};
// {country name} (from: {date})", or "" when there is no street.
func Address(a *models.Address) string {
	if !a.HasStreetAndNumbers() {
		return ""
	}
	return fmt.Sprintf("%s; %s%s %s; %s (from: %s)",
		a.StreetAndNumbers(),
		a.Country.Code, a.PostalCode,
		a.City,
		a.Country.NameFo,
		render(a.From),
	)
}

func CivilStatus(c *models.CivilStatus) string {
	if c == nil {
		return ""
	}
	return c.Type + ", " + render(c.From)
}

func SpecialMarks(marks []models.SpecialMark) string {
	parts := make([]string, len(marks))
	for i, m := range marks {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}

// Incapacity renders "{name} - {address}" per guardian, joined by " / ".
func Incapacity(in *models.Incapacity) string {
	if in == nil {
		return ""
	}
	var parts []string
	for _, g := range []*models.Guardian{in.Guardian1, in.Guardian2} {
		if g != nil {
			parts = append(parts, render(g.Name)+" - "+render(Address(g.Address)))
		}
	}
	return strings.Join(parts, " / ")
}

// CommunityPerson renders status | existing id | person. The person column
// holds the whole small line and is only filled for ADDED.
func CommunityPerson(c models.CommunityPerson) string {
	var person string
	if c.Status().IsAdded() && c.Person() != nil {
		person = small(c.Person())
	}
	return Join(c.Status(), c.ExistingID(), person)
}

func Changes[ID models.ChangeID](c models.Changes[ID]) string {
	return fmt.Sprintf("Changes - from: %s; to: %s; ids: %s", timestamp(c.From), timestamp(c.To), IDs(c.IDs))
}

// RemovedID renders a single-removal result; nil means the id was not a member.
func RemovedID(id *models.PrivateID) string {
	return "Removed id: " + render(id)
}

func RemovedIDs(ids []models.PrivateID) string {
	return "Removed ids: " + IDs(ids)
}

// IDs renders ids as "[1, 2, 3]".
func IDs[ID models.ChangeID](ids []ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(int64(id), 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func Privileges(privileges []models.Privilege) string {
	if len(privileges) == 0 {
		return Placeholder
	}
	lines := make([]string, len(privileges))
	for i, p := range privileges {
		lines[i] = p.String()
	}
	return strings.Join(lines, "\n")
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Format(time.RFC3339)
}
