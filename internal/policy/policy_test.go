package policy

import (
	"testing"

	"estatedesk-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

type ownedResource struct {
	owner uint
}

func (r ownedResource) OwnerID() uint { return r.owner }

func TestCapabilityRoleGate(t *testing.T) {
	capability := RequireRole(models.RoleAdmin)

	ok, reason := capability.Check(Principal{ID: 1, Role: models.RoleAdmin}, nil)
	assert.True(t, ok)
	assert.Equal(t, ReasonNone, reason)

	ok, reason = capability.Check(Principal{ID: 2, Role: models.RoleAgent}, nil)
	assert.False(t, ok)
	assert.Equal(t, ReasonRole, reason)

	ok, reason = capability.Check(Principal{ID: 3, Role: models.RoleUser}, nil)
	assert.False(t, ok)
	assert.Equal(t, ReasonRole, reason)
}

func TestCapabilityMultipleRoles(t *testing.T) {
	capability := RequireRole(models.RoleAgent, models.RoleAdmin)

	ok, _ := capability.Check(Principal{ID: 1, Role: models.RoleAgent}, nil)
	assert.True(t, ok)
	ok, _ = capability.Check(Principal{ID: 2, Role: models.RoleAdmin}, nil)
	assert.True(t, ok)
	ok, reason := capability.Check(Principal{ID: 3, Role: models.RoleUser}, nil)
	assert.False(t, ok)
	assert.Equal(t, ReasonRole, reason)
}

func TestCapabilityOwnership(t *testing.T) {
	capability := RequireRole(models.RoleAdmin).WithOwnership()
	resource := ownedResource{owner: 7}

	// Owner passes when role matches.
	ok, reason := capability.Check(Principal{ID: 7, Role: models.RoleAdmin}, resource)
	assert.True(t, ok)
	assert.Equal(t, ReasonNone, reason)

	// Admin bypasses the ownership comparison.
	ok, reason = capability.Check(Principal{ID: 99, Role: models.RoleAdmin}, resource)
	assert.True(t, ok)
	assert.Equal(t, ReasonNone, reason)

	// Role failure is reported before ownership is considered.
	ok, reason = capability.Check(Principal{ID: 7, Role: models.RoleAgent}, resource)
	assert.False(t, ok)
	assert.Equal(t, ReasonRole, reason)
}

func TestCapabilityOwnershipDeniesNonOwner(t *testing.T) {
	// Ownership without an admin role in the gate: a non-owner non-admin
	// principal is denied with the ownership reason.
	capability := RequireRole(models.RoleAgent, models.RoleAdmin).WithOwnership()
	resource := ownedResource{owner: 7}

	ok, reason := capability.Check(Principal{ID: 8, Role: models.RoleAgent}, resource)
	assert.False(t, ok)
	assert.Equal(t, ReasonOwnership, reason)

	ok, reason = capability.Check(Principal{ID: 7, Role: models.RoleAgent}, resource)
	assert.True(t, ok)
	assert.Equal(t, ReasonNone, reason)
}

func TestCapabilityNilResourceSkipsOwnership(t *testing.T) {
	capability := RequireRole(models.RoleAdmin).WithOwnership()

	ok, reason := capability.Check(Principal{ID: 1, Role: models.RoleAdmin}, nil)
	assert.True(t, ok)
	assert.Equal(t, ReasonNone, reason)
}

func TestCanAccessAgentScope(t *testing.T) {
	assert.True(t, CanAccessAgentScope(Principal{ID: 5, Role: models.RoleAgent}, 5))
	assert.False(t, CanAccessAgentScope(Principal{ID: 5, Role: models.RoleAgent}, 6))
	assert.True(t, CanAccessAgentScope(Principal{ID: 1, Role: models.RoleAdmin}, 6))
	assert.False(t, CanAccessAgentScope(Principal{ID: 2, Role: models.RoleUser}, 6))
}
