package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleSupertutor.Valid())
	assert.False(t, Role(-1).Valid())
	assert.False(t, Role(4).Valid())
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "admin", RoleAdmin.String())
	assert.Equal(t, "teacher", RoleTeacher.String())
	assert.Equal(t, "tutor", RoleTutor.String())
	assert.Equal(t, "supertutor", RoleSupertutor.String())
	assert.Equal(t, "unknown", Role(9).String())
}
