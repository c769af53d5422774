package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobias-homewood/jobly/internal/models"
)

const testSecret = "test-secret"

func TestCreateTokenRoundTrip(t *testing.T) {
	user := models.User{Username: "aliya", IsAdmin: true}

	token, err := CreateToken(user, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "aliya", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := CreateToken(models.User{Username: "aliya"}, testSecret)
	require.NoError(t, err)

	_, err = VerifyToken(token, "some-other-secret")
	assert.Error(t, err)
}

func TestVerifyTokenGarbage(t *testing.T) {
	_, err := VerifyToken("not-a-token", testSecret)
	assert.Error(t, err)
}

func TestVerifyTokenNonAdminClaims(t *testing.T) {
	token, err := CreateToken(models.User{Username: "bob", IsAdmin: false}, testSecret)
	require.NoError(t, err)

	claims, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Username)
	assert.False(t, claims.IsAdmin)
}
