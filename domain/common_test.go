package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, RoleAtLeast(RoleOwner, RoleManager))
	assert.True(t, RoleAtLeast(RoleManager, RoleManager))
	assert.False(t, RoleAtLeast(RoleStaff, RoleManager))
	assert.True(t, RoleAtLeast(RoleSuperAdmin, RoleOwner))
	assert.False(t, RoleAtLeast("unknown", RoleStaff))
}
