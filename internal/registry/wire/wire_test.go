package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folkv3/internal/registry/models"
)

func TestPersonRequest_Selector(t *testing.T) {
	name := models.NewNameParam("Karius", "Davidsen")
	address := models.NewAddressParam("Úti í Bø", models.NewHouseNumber(16), "Syðrugøta")
	dob := models.NewDate(2008, 4, 30)

	t.Run("builders produce one selector each", func(t *testing.T) {
		cases := []struct {
			build func() (PersonRequest, error)
			want  Selector
		}{
			{func() (PersonRequest, error) { return IdentityRequest(models.ByPrivateID(1)) }, SelectPrivateID},
			{func() (PersonRequest, error) { return IdentityRequest(models.ByPublicID(1157442)) }, SelectPublicID},
			{func() (PersonRequest, error) { return IdentityRequest(models.ByPtal(models.MustPtal("300408-559"))) }, SelectPtal},
			{func() (PersonRequest, error) { return NameAndAddressRequest(name, address) }, SelectNameAndAddress},
			{func() (PersonRequest, error) { return NameAndDateOfBirthRequest(name, dob) }, SelectNameAndDateOfBirth},
		}
		for _, tc := range cases {
			req, err := tc.build()
			require.NoError(t, err)
			got, err := req.Selector()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		}
	})

	t.Run("ptal is sent without the dash", func(t *testing.T) {
		req, err := IdentityRequest(models.ByPtal(models.MustPtal("300408-559")))
		require.NoError(t, err)
		assert.Equal(t, "300408559", req.Ptal)
	})

	t.Run("ambiguous or empty requests are rejected", func(t *testing.T) {
		id := models.PrivateID(1)
		for _, req := range []PersonRequest{
			{},
			{PrivateID: &id, Ptal: "300408559"},
			{Name: &name},
			{Name: &name, Address: &address, DateOfBirth: &dob},
			{Address: &address},
		} {
			_, err := req.Selector()
			assert.ErrorIs(t, err, ErrInvalidRequest)
		}
	})

	t.Run("invalid inputs fail before sending", func(t *testing.T) {
		_, err := IdentityRequest(models.ByPrivateID(0))
		assert.ErrorIs(t, err, models.ErrInvalidID)

		_, err = NameAndAddressRequest(models.NameParam{LastName: "Davidsen"}, address)
		assert.ErrorIs(t, err, models.ErrInvalidParam)

		_, err = NameAndDateOfBirthRequest(name, models.Date{})
		assert.ErrorIs(t, err, models.ErrInvalidParam)
	})
}

func TestCommunityPersonResponse_ToModel(t *testing.T) {
	existing := models.PrivateID(7)
	person := &models.PersonSmall{PrivateID: 1}

	got, err := CommunityPersonResponse{Status: models.CommunityStatusAdded, Person: person}.ToModel()
	require.NoError(t, err)
	assert.Same(t, person, got.Person())

	_, err = CommunityPersonResponse{Status: models.CommunityStatusNotFound, Person: person}.ToModel()
	assert.ErrorIs(t, err, models.ErrInvalidCommunityPerson)

	round := FromCommunityPerson(models.AlreadyMember(existing))
	assert.Equal(t, models.CommunityStatusAlreadyMember, round.Status)
	require.NotNil(t, round.ExistingID)
	assert.Equal(t, existing, *round.ExistingID)
	assert.Nil(t, round.Person)
}
