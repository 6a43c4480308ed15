package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("Admin").IsValid(), "roles are case sensitive")
}

func TestRoleString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user", RoleUser.String())
	assert.Equal(t, "admin", RoleAdmin.String())
}
