package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifadigital/raffle/internal/auth"
	"github.com/rifadigital/raffle/internal/model"
	"github.com/rifadigital/raffle/internal/utils"
)

func newTestRegistry(t *testing.T) *auth.Registry {
	t.Helper()
	jeyny, err := utils.HashPassword("flores123", 4) // min cost keeps the test fast
	require.NoError(t, err)
	admin, err := utils.HashPassword("root456", 4)
	require.NoError(t, err)
	return auth.NewRegistry(map[string]string{
		"jeyny": jeyny, // lowercase on purpose; registry normalizes
		"ADMIN": admin,
	})
}

func TestAuthenticate_ResolvesSeller(t *testing.T) {
	reg := newTestRegistry(t)

	id, err := reg.Authenticate("  jeyny ", "flores123")
	require.NoError(t, err)
	assert.Equal(t, model.SellerID("JEYNY"), id)

	id, err = reg.Authenticate("admin", "root456")
	require.NoError(t, err)
	assert.Equal(t, model.AdminSeller, id)
}

func TestAuthenticate_RejectsBadCredentials(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Authenticate("jeyny", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = reg.Authenticate("nobody", "flores123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials, "unknown seller and wrong password are indistinguishable")
}
