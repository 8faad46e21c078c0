package mockregistry

import (
	"time"

	"folkv3/internal/registry/models"
)

var faroeIslands = models.Country{Code: "FO", NameFo: "Føroyar"}

// Seeded people.
const (
	KariusPrivateID models.PrivateID = 1
	KariusPublicID  models.PublicID  = 1157442
	JonaPrivateID   models.PrivateID = 2
	JonaPublicID    models.PublicID  = 1157443
	OliPrivateID    models.PrivateID = 4
	OliPublicID     models.PublicID  = 1157445
)

// Seed returns a dataset holding the people the sample scenarios look up.
// Only Jóna starts out in the private community.
func Seed(now func() time.Time) *Dataset {
	d := NewDataset(now)
	t := d.now()

	d.AddPerson(models.PersonMedium{
		PersonSmall: models.PersonSmall{
			PrivateID: KariusPrivateID,
			Name:      models.Name{FirstNames: "Karius", LastName: "Davidsen"},
			Address: &models.Address{
				Street:      "Úti í Bø",
				HouseNumber: models.NewHouseNumber(16),
				PostalCode:  "520",
				City:        "Syðrugøta",
				Country:     faroeIslands,
				From:        models.NewDate(2008, time.April, 30),
			},
			Alive: true,
		},
		PublicID:    KariusPublicID,
		Ptal:        models.MustPtal("300408-559"),
		DateOfBirth: models.NewDate(2008, time.April, 30),
		CivilStatus: &models.CivilStatus{Type: "UNMARRIED", From: models.NewDate(2008, time.April, 30)},
		Incapacity: &models.Incapacity{
			Guardian1: &models.Guardian{
				Name: models.Name{FirstNames: "Dávur", LastName: "Davidsen"},
				Address: &models.Address{
					Street:      "Úti í Bø",
					HouseNumber: models.NewHouseNumber(16),
					PostalCode:  "520",
					City:        "Syðrugøta",
					Country:     faroeIslands,
					From:        models.NewDate(2001, time.March, 1),
				},
			},
		},
	})

	d.AddPerson(models.PersonMedium{
		PersonSmall: models.PersonSmall{
			PrivateID: JonaPrivateID,
			Name:      models.Name{FirstNames: "Jóna", MiddleNames: "Maria", LastName: "Poulsen"},
			Address: &models.Address{
				Street:      "Gríms Kambans gøta",
				HouseNumber: models.NewHouseNumberWithLetter(5, "b"),
				Apartment:   "2. hædd",
				PostalCode:  "100",
				City:        "Tórshavn",
				Country:     faroeIslands,
				From:        models.NewDate(2019, time.August, 1),
			},
			Alive: true,
		},
		PublicID:     JonaPublicID,
		Ptal:         models.MustPtal("010190-123"),
		DateOfBirth:  models.NewDate(1990, time.January, 1),
		CivilStatus:  &models.CivilStatus{Type: "MARRIED", From: models.NewDate(2015, time.June, 20)},
		SpecialMarks: []models.SpecialMark{models.SpecialMarkNoMarketing, models.SpecialMarkNoResearch},
	})

	d.AddPerson(models.PersonMedium{
		PersonSmall: models.PersonSmall{
			PrivateID:   OliPrivateID,
			Name:        models.Name{FirstNames: "Óli", LastName: "Jacobsen"},
			Alive:       false,
			DateOfDeath: models.NewDate(2020, time.January, 5),
		},
		PublicID:    OliPublicID,
		Ptal:        models.MustPtal("120345-987"),
		DateOfBirth: models.NewDate(1945, time.March, 12),
	})

	d.AddMember(JonaPrivateID)
	d.RecordChange(JonaPrivateID, t.Add(-48*time.Hour))
	d.RecordChange(OliPrivateID, t.Add(-72*time.Hour))

	d.SetPrivileges(
		models.Privilege{Name: "PERSON_SMALL", Description: "Look up minimal person records"},
		models.Privilege{Name: "PERSON_MEDIUM", Description: "Look up medium person records"},
		models.Privilege{Name: "PRIVATE_COMMUNITY", Description: "Manage the private community"},
		models.Privilege{Name: "PUBLIC_COMMUNITY", Description: "Read public community changes"},
	)
	return d
}
