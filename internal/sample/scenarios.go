package sample

import (
	"context"
	"slices"
	"time"

	"folkv3/internal/registry/models"
	"folkv3/internal/registry/ports"
	"folkv3/internal/sample/format"
)

// Group collects scenarios exercising one client.
type Group string

const (
	GroupSmall            Group = "small"
	GroupMedium           Group = "medium"
	GroupPrivateCommunity Group = "private-community"
	GroupPublicCommunity  Group = "public-community"
	GroupPrivileges       Group = "privileges"
)

// Groups lists every group in run order.
var Groups = []Group{GroupSmall, GroupMedium, GroupPrivateCommunity, GroupPublicCommunity, GroupPrivileges}

// DefaultScenario runs when no group or scenario is selected.
const DefaultScenario = "testGetPersonMediumByPtal"

const (
	PersonNotFound   = "Person was not found!"
	CommunityMissing = "Oops!"
)

// ChangesWindow is how far back the changes scenarios ask for.
const ChangesWindow = 7 * 24 * time.Hour

// Scenario is one named demonstration call. Run returns the rendered result.
type Scenario struct {
	Name  string
	Group Group
	Run   func(ctx context.Context) (string, error)
}

var (
	kariusName        = models.NewNameParam("Karius", "Davidsen")
	kariusAddress     = models.NewAddressParam("Úti í Bø", models.NewHouseNumber(16), "Syðrugøta")
	kariusDateOfBirth = models.NewDate(2008, time.April, 30)
)

// Scenarios returns every scenario in group order.
func (s *Sample) Scenarios() []Scenario {
	return []Scenario{
		{Name: "testGetPersonSmallByPrivateId", Group: GroupSmall, Run: smallPerson(func(ctx context.Context) (*models.PersonSmall, error) {
			c, err := s.SmallClient()
			if err != nil {
				return nil, err
			}
			return c.GetPerson(ctx, models.ByPrivateID(1))
		})},
		{Name: "testGetPersonSmallByPtal", Group: GroupSmall, Run: smallPerson(func(ctx context.Context) (*models.PersonSmall, error) {
			c, err := s.SmallClient()
			if err != nil {
				return nil, err
			}
			ptal, err := models.NewPtal("300408-559")
			if err != nil {
				return nil, err
			}
			return c.GetPerson(ctx, models.ByPtal(ptal))
		})},
		{Name: "testGetPersonSmallByNameAndAddress", Group: GroupSmall, Run: smallPerson(func(ctx context.Context) (*models.PersonSmall, error) {
			c, err := s.SmallClient()
			if err != nil {
				return nil, err
			}
			return c.GetPersonByNameAndAddress(ctx, kariusName, kariusAddress)
		})},
		{Name: "testGetPersonSmallByNameAndDateOfBirth", Group: GroupSmall, Run: smallPerson(func(ctx context.Context) (*models.PersonSmall, error) {
			c, err := s.SmallClient()
			if err != nil {
				return nil, err
			}
			return c.GetPersonByNameAndDateOfBirth(ctx, kariusName, kariusDateOfBirth)
		})},

		{Name: "testGetPersonMediumByPrivateId", Group: GroupMedium, Run: mediumPerson(func(ctx context.Context) (*models.PersonMedium, error) {
			c, err := s.MediumClient()
			if err != nil {
				return nil, err
			}
			return c.GetPerson(ctx, models.ByPrivateID(1))
		})},
		{Name: "testGetPersonMediumByPublicId", Group: GroupMedium, Run: mediumPerson(func(ctx context.Context) (*models.PersonMedium, error) {
			c, err := s.MediumClient()
			if err != nil {
				return nil, err
			}
			return c.GetPerson(ctx, models.ByPublicID(1157442))
		})},
		{Name: "testGetPersonMediumByPtal", Group: GroupMedium, Run: mediumPerson(func(ctx context.Context) (*models.PersonMedium, error) {
			c, err := s.MediumClient()
			if err != nil {
				return nil, err
			}
			ptal, err := models.NewPtal("300408559")
			if err != nil {
				return nil, err
			}
			return c.GetPerson(ctx, models.ByPtal(ptal))
		})},
		{Name: "testGetPersonMediumByNameAndAddress", Group: GroupMedium, Run: mediumPerson(func(ctx context.Context) (*models.PersonMedium, error) {
			c, err := s.MediumClient()
			if err != nil {
				return nil, err
			}
			return c.GetPersonByNameAndAddress(ctx, kariusName, kariusAddress)
		})},
		{Name: "testGetPersonMediumByNameAndDateOfBirth", Group: GroupMedium, Run: mediumPerson(func(ctx context.Context) (*models.PersonMedium, error) {
			c, err := s.MediumClient()
			if err != nil {
				return nil, err
			}
			return c.GetPersonByNameAndDateOfBirth(ctx, kariusName, kariusDateOfBirth)
		})},

		{Name: "testGetPrivateChanges", Group: GroupPrivateCommunity, Run: s.privateChanges},
		{Name: "testAddPersonToCommunityByNameAndAddress", Group: GroupPrivateCommunity, Run: communityPerson(func(ctx context.Context) (models.CommunityPerson, error) {
			c, err := s.PrivateCommunityClient()
			if err != nil {
				return models.CommunityPerson{}, err
			}
			return c.AddPersonToCommunityByNameAndAddress(ctx, kariusName, kariusAddress)
		})},
		{Name: "testAddPersonToCommunityByNameAndDateOfBirth", Group: GroupPrivateCommunity, Run: communityPerson(func(ctx context.Context) (models.CommunityPerson, error) {
			c, err := s.PrivateCommunityClient()
			if err != nil {
				return models.CommunityPerson{}, err
			}
			return c.AddPersonToCommunityByNameAndDateOfBirth(ctx, kariusName, kariusDateOfBirth)
		})},
		{Name: "testRemovePersonFromCommunity", Group: GroupPrivateCommunity, Run: s.removePerson},
		{Name: "testRemovePersonsFromCommunity", Group: GroupPrivateCommunity, Run: s.removePersons},

		{Name: "testGetPublicChanges", Group: GroupPublicCommunity, Run: s.publicChanges},

		{Name: "testSmallGetMyPrivileges", Group: GroupPrivileges, Run: privileges(func() (ports.PrivilegeReader, error) {
			return s.SmallClient()
		})},
		{Name: "testMediumGetMyPrivileges", Group: GroupPrivileges, Run: privileges(func() (ports.PrivilegeReader, error) {
			return s.MediumClient()
		})},
	}
}

// Select filters scenarios by group and by name. Empty arguments match all;
// with both empty only DefaultScenario is kept.
func Select(scenarios []Scenario, group Group, name string) []Scenario {
	if group == "" && name == "" {
		name = DefaultScenario
	}
	return slices.DeleteFunc(slices.Clone(scenarios), func(sc Scenario) bool {
		return (group != "" && sc.Group != group) || (name != "" && sc.Name != name)
	})
}

func smallPerson(lookup func(context.Context) (*models.PersonSmall, error)) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		p, err := lookup(ctx)
		if err != nil {
			return "", err
		}
		if p == nil {
			return PersonNotFound, nil
		}
		return format.Person(models.SmallPerson(p)), nil
	}
}

func mediumPerson(lookup func(context.Context) (*models.PersonMedium, error)) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		p, err := lookup(ctx)
		if err != nil {
			return "", err
		}
		if p == nil {
			return PersonNotFound, nil
		}
		return format.Person(models.MediumPerson(p)), nil
	}
}

func communityPerson(add func(context.Context) (models.CommunityPerson, error)) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		cp, err := add(ctx)
		if err != nil {
			return "", err
		}
		if cp.IsZero() {
			return CommunityMissing, nil
		}
		return format.CommunityPerson(cp), nil
	}
}

func (s *Sample) since() time.Time {
	return s.now().Add(-ChangesWindow)
}

func (s *Sample) privateChanges(ctx context.Context) (string, error) {
	c, err := s.PrivateCommunityClient()
	if err != nil {
		return "", err
	}
	changes, err := c.GetChanges(ctx, s.since())
	if err != nil {
		return "", err
	}
	return format.Changes(changes), nil
}

func (s *Sample) publicChanges(ctx context.Context) (string, error) {
	c, err := s.PublicCommunityClient()
	if err != nil {
		return "", err
	}
	changes, err := c.GetChanges(ctx, s.since())
	if err != nil {
		return "", err
	}
	return format.Changes(changes), nil
}

func (s *Sample) removePerson(ctx context.Context) (string, error) {
	c, err := s.PrivateCommunityClient()
	if err != nil {
		return "", err
	}
	removed, err := c.RemovePersonFromCommunity(ctx, models.PrivateID(1))
	if err != nil {
		return "", err
	}
	return format.RemovedID(removed), nil
}

func (s *Sample) removePersons(ctx context.Context) (string, error) {
	c, err := s.PrivateCommunityClient()
	if err != nil {
		return "", err
	}
	removed, err := c.RemovePersonsFromCommunity(ctx, models.PrivateIDs(1, 2, 3))
	if err != nil {
		return "", err
	}
	return format.RemovedIDs(removed), nil
}

func privileges(reader func() (ports.PrivilegeReader, error)) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		r, err := reader()
		if err != nil {
			return "", err
		}
		privileges, err := r.GetMyPrivileges(ctx)
		if err != nil {
			return "", err
		}
		return format.Privileges(privileges), nil
	}
}
