package policy

import "estatedesk-backend/internal/models"

// Principal is the authenticated actor making a request.
type Principal struct {
	ID   uint
	Role models.Role
}

// Ownable is implemented by resources that belong to a single user or agent.
type Ownable interface {
	OwnerID() uint
}

// Reason categorizes why a capability check denied a request.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonRole      Reason = "role"
	ReasonOwnership Reason = "ownership"
)

// Capability is a reusable allow/deny check parameterized by required roles
// and an optional ownership requirement. Each check is a pure predicate over
// the principal and a freshly loaded resource; no authorization state is
// cached between requests.
type Capability struct {
	roles            []models.Role
	requireOwnership bool
}

// RequireRole builds a capability satisfied by any of the given roles.
func RequireRole(roles ...models.Role) Capability {
	return Capability{roles: roles}
}

// WithOwnership additionally requires the principal to own the resource.
// Admins bypass the ownership comparison (ownership-or-admin pattern).
func (c Capability) WithOwnership() Capability {
	c.requireOwnership = true
	return c
}

// Check evaluates the capability. Resource may be nil for create/list actions
// where there is no specific row to compare ownership against.
func (c Capability) Check(p Principal, resource Ownable) (bool, Reason) {
	if len(c.roles) > 0 && !c.hasRole(p.Role) {
		return false, ReasonRole
	}
	if c.requireOwnership && resource != nil {
		if p.Role != models.RoleAdmin && resource.OwnerID() != p.ID {
			return false, ReasonOwnership
		}
	}
	return true, ReasonNone
}

func (c Capability) hasRole(role models.Role) bool {
	for _, r := range c.roles {
		if r == role {
			return true
		}
	}
	return false
}

// Capabilities for the mutation endpoints. Property deletion compares
// ownership against the authenticated principal's id; with the ADMIN role
// gate in front the allow/deny outcomes match the ownership-or-admin rule.
var (
	ManageProperties = RequireRole(models.RoleAdmin)
	DeleteProperty   = RequireRole(models.RoleAdmin).WithOwnership()
	ManageClients    = RequireRole(models.RoleAgent, models.RoleAdmin)
	ManageUsers      = RequireRole(models.RoleAdmin)
	ManageNews       = RequireRole(models.RoleAdmin)
	ViewInquiries    = RequireRole(models.RoleAdmin)
	ViewDashboard    = RequireRole(models.RoleAdmin)
)

// CanAccessAgentScope reports whether the principal may read the client list
// of the given agent: the matching agent themself, or any admin.
func CanAccessAgentScope(p Principal, agentID uint) bool {
	return p.Role == models.RoleAdmin || p.ID == agentID
}
