package accesscard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"school-portal/internal/domain/accesscard"
)

func TestRoleValidate(t *testing.T) {
	assert.NoError(t, accesscard.RoleStudent.Validate())
	assert.NoError(t, accesscard.RoleInstructor.Validate())
	assert.NoError(t, accesscard.RoleAdmin.Validate())

	assert.Error(t, accesscard.Role("Superuser").Validate())
	assert.Error(t, accesscard.Role("").Validate())
	assert.Error(t, accesscard.Role("student").Validate())
}

func TestCardValidity(t *testing.T) {
	assert.False(t, accesscard.AccessCard{Role: accesscard.RoleStudent}.Valid())
	assert.True(t, accesscard.AccessCard{Role: accesscard.RoleStudent, Enrollments: 1}.Valid())

	// Staff cards are valid by existence, enrollments are irrelevant.
	assert.True(t, accesscard.AccessCard{Role: accesscard.RoleInstructor}.Valid())
	assert.True(t, accesscard.AccessCard{Role: accesscard.RoleAdmin}.Valid())

	// Unknown roles are not Student, so existence is enough.
	assert.True(t, accesscard.AccessCard{Role: accesscard.Role("Visitor")}.Valid())
}
