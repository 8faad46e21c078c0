package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonMedium_Clone(t *testing.T) {
	orig := &PersonMedium{
		PersonSmall: PersonSmall{
			PrivateID: 1,
			Address:   &Address{Street: "Úti í Bø", City: "Syðrugøta"},
		},
		CivilStatus:  &CivilStatus{Type: "UNMARRIED"},
		SpecialMarks: []SpecialMark{SpecialMarkNoMarketing},
		Incapacity: &Incapacity{
			Guardian1: &Guardian{Name: Name{FirstNames: "Dávur"}, Address: &Address{Street: "Úti í Bø"}},
		},
	}

	cp := orig.Clone()
	require.Equal(t, orig, cp)

	cp.Address.City = "Tórshavn"
	cp.CivilStatus.Type = "MARRIED"
	cp.SpecialMarks[0] = SpecialMarkNoResearch
	cp.Incapacity.Guardian1.Address.Street = "Gríms Kambans gøta"

	assert.Equal(t, "Syðrugøta", orig.Address.City)
	assert.Equal(t, "UNMARRIED", orig.CivilStatus.Type)
	assert.Equal(t, SpecialMarkNoMarketing, orig.SpecialMarks[0])
	assert.Equal(t, "Úti í Bø", orig.Incapacity.Guardian1.Address.Street)
	assert.Nil(t, cp.Incapacity.Guardian2)

	var none *PersonMedium
	assert.Nil(t, none.Clone())
}

func TestIDs_IsZero(t *testing.T) {
	assert.True(t, PrivateID(0).IsZero())
	assert.True(t, PublicID(-1).IsZero())
	assert.False(t, PrivateID(1).IsZero())
	assert.False(t, PublicID(1157443).IsZero())
}
