// internal/utils/token_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAdminToken(t *testing.T) {
	SetTokenSecret("unit-test-secret")

	token, err := GenerateAdminToken(AreaProducts, 8)
	require.NoError(t, err)

	claims, err := ValidateAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, AreaProducts, claims.Area)
	assert.Equal(t, "admin:products", claims.Subject)
	assert.Equal(t, "storefront-backend", claims.Issuer)
}

func TestGenerateAdminTokenUnknownArea(t *testing.T) {
	_, err := GenerateAdminToken("warehouse", 8)
	assert.Error(t, err)
}

func TestValidateAdminTokenExpired(t *testing.T) {
	SetTokenSecret("unit-test-secret")

	token, err := GenerateAdminToken(AreaOrders, -1)
	require.NoError(t, err)

	_, err = ValidateAdminToken(token)
	assert.Error(t, err)
}

func TestValidateAdminTokenWrongSecret(t *testing.T) {
	SetTokenSecret("unit-test-secret")
	token, err := GenerateAdminToken(AreaOrders, 8)
	require.NoError(t, err)

	SetTokenSecret("a-different-secret")
	defer SetTokenSecret("unit-test-secret")

	_, err = ValidateAdminToken(token)
	assert.Error(t, err)
}

func TestValidateAdminTokenGarbage(t *testing.T) {
	SetTokenSecret("unit-test-secret")

	_, err := ValidateAdminToken("not.a.token")
	assert.Error(t, err)
}
