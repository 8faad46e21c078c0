package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPtal(t *testing.T) {
	t.Run("accepts plain digits", func(t *testing.T) {
		p, err := NewPtal("300408559")
		require.NoError(t, err)
		assert.Equal(t, "300408559", p.String())
		assert.Equal(t, "300408-559", p.FormattedValue())
	})

	t.Run("accepts dashed form and normalises it", func(t *testing.T) {
		p, err := NewPtal("300408-559")
		require.NoError(t, err)
		assert.Equal(t, MustPtal("300408559"), p)
	})

	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"too short", "30040855"},
		{"too long", "3004085590"},
		{"letters", "30040A559"},
		{"dash in wrong place", "30040-8559"},
		{"surrounding whitespace", " 300408559"},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := NewPtal(tt.value)
			assert.ErrorIs(t, err, ErrInvalidPtal)
		})
	}
}

func TestPtalJSON(t *testing.T) {
	t.Run("zero value encodes as null", func(t *testing.T) {
		b, err := json.Marshal(Ptal{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(b))
	})

	t.Run("decodes dashed form", func(t *testing.T) {
		var p Ptal
		require.NoError(t, json.Unmarshal([]byte(`"300408-559"`), &p))
		assert.Equal(t, "300408559", p.String())
	})

	t.Run("rejects malformed value", func(t *testing.T) {
		var p Ptal
		assert.ErrorIs(t, json.Unmarshal([]byte(`"abc"`), &p), ErrInvalidPtal)
	})
}

func TestIdentity(t *testing.T) {
	t.Run("each constructor sets exactly one kind", func(t *testing.T) {
		priv := ByPrivateID(1)
		id, ok := priv.PrivateID()
		assert.True(t, ok)
		assert.Equal(t, PrivateID(1), id)
		_, ok = priv.PublicID()
		assert.False(t, ok)
		_, ok = priv.Ptal()
		assert.False(t, ok)

		pub := ByPublicID(1157442)
		assert.Equal(t, IdentityPublic, pub.Kind())
		assert.Equal(t, "1157442", pub.Value())

		ptal := ByPtal(MustPtal("300408559"))
		assert.Equal(t, IdentityPtal, ptal.Kind())
		assert.Equal(t, "ptal:300408559", ptal.String())
	})

	t.Run("zero identity is invalid", func(t *testing.T) {
		assert.Error(t, Identity{}.Validate())
	})

	t.Run("non-positive ids are invalid", func(t *testing.T) {
		assert.ErrorIs(t, ByPrivateID(0).Validate(), ErrInvalidID)
		assert.ErrorIs(t, ByPublicID(-4).Validate(), ErrInvalidID)
		assert.ErrorIs(t, ByPtal(Ptal{}).Validate(), ErrInvalidPtal)
	})

	t.Run("same value under different kinds is a different identity", func(t *testing.T) {
		assert.NotEqual(t, ByPrivateID(1), ByPublicID(1))
		assert.NotEqual(t, ByPrivateID(1).String(), ByPublicID(1).String())
	})
}

func TestNewIDs(t *testing.T) {
	_, err := NewPrivateID(0)
	assert.ErrorIs(t, err, ErrInvalidID)
	_, err = NewPublicID(-1)
	assert.ErrorIs(t, err, ErrInvalidID)

	id, err := NewPrivateID(42)
	require.NoError(t, err)
	assert.Equal(t, PrivateID(42), id)

	assert.Equal(t, []PrivateID{1, 2, 3}, PrivateIDs(1, 2, 3))
}
