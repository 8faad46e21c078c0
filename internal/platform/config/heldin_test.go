package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeldinBuilder(t *testing.T) {
	t.Run("fluent builder matches parsed path", func(t *testing.T) {
		built, err := SecureHost("10.20.30.40").FO().Test().COM().
			MemberCode("123456").SubsystemCode("my-system").
			WithUserID("my-system-id").Build()
		require.NoError(t, err)

		parsed, err := ParseHeldin("10.20.30.40", true, "FO-TST/COM/123456/my-system")
		require.NoError(t, err)
		parsed.UserID = "my-system-id"

		assert.Equal(t, parsed, built)
		assert.Equal(t, "SUBSYSTEM:FO-TST/COM/123456/my-system", built.ClientID())
		assert.Equal(t, "https://10.20.30.40", built.BaseURL())
		assert.False(t, built.IsProduction())
	})

	t.Run("production instance and gov class", func(t *testing.T) {
		h, err := Host("security-server:8080").FO().GOV().MemberCode("654321").SubsystemCode("tax").Build()
		require.NoError(t, err)
		assert.Equal(t, "FO/GOV/654321/tax", h.Path())
		assert.Equal(t, "http://security-server:8080", h.BaseURL())
		assert.True(t, h.IsProduction())
	})

	t.Run("missing parts fail validation", func(t *testing.T) {
		_, err := SecureHost("10.20.30.40").FO().COM().SubsystemCode("my-system").Build()
		assert.ErrorIs(t, err, ErrInvalidHeldin)

		_, err = SecureHost("10.20.30.40").COM().MemberCode("1").SubsystemCode("s").Build()
		assert.ErrorIs(t, err, ErrInvalidHeldin)

		_, err = SecureHost("").FO().COM().MemberCode("1").SubsystemCode("s").Build()
		assert.ErrorIs(t, err, ErrInvalidHeldin)
	})
}

func TestParseHeldin(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"test instance", "FO-TST/COM/123456/my-system", false},
		{"lower case instance and class", "fo-tst/com/123456/my-system", false},
		{"subsystem prefix", "SUBSYSTEM:FO/GOV/1/x", false},
		{"too few parts", "FO-TST/COM/123456", true},
		{"too many parts", "FO-TST/COM/123456/a/b", true},
		{"unknown instance", "EE/COM/123456/my-system", true},
		{"unknown class", "FO/XYZ/123456/my-system", true},
		{"empty member", "FO/COM//my-system", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ParseHeldin("host", true, tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHeldin)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, h.Validate())
		})
	}
}
