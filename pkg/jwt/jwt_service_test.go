package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Bar-Management-SaaS/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	service := &jwtService{secretKey: "test-secret", issuer: "BAR-MANAGEMENT"}

	token := service.GenerateToken("user-1", domain.UserTypeEmployee, domain.RoleManager, "store-1")
	require.NotEmpty(t, token)

	claims, err := service.GetClaimsByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, domain.UserTypeEmployee, claims.UserType)
	assert.Equal(t, domain.RoleManager, claims.Role)
	assert.Equal(t, "store-1", claims.StoreID)
}

func TestTamperedTokenRejected(t *testing.T) {
	service := &jwtService{secretKey: "test-secret", issuer: "BAR-MANAGEMENT"}
	other := &jwtService{secretKey: "other-secret", issuer: "BAR-MANAGEMENT"}

	token := service.GenerateToken("user-1", domain.UserTypeAdmin, domain.RoleSuperAdmin, "")

	_, err := other.GetClaimsByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGarbageTokenRejected(t *testing.T) {
	service := &jwtService{secretKey: "test-secret", issuer: "BAR-MANAGEMENT"}

	_, err := service.GetClaimsByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
