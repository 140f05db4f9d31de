package auth

// Authorizer decides whether a caller may use a capability
type Authorizer interface {
	Allowed(caller Caller, capability Capability) bool
}

// RoleAuthorizer grants capabilities by the caller's role
type RoleAuthorizer struct {
	grants map[string]map[Capability]struct{}
}

// NewRoleAuthorizer builds an authorizer from the configured role table
func NewRoleAuthorizer(roles map[string][]string) *RoleAuthorizer {
	grants := make(map[string]map[Capability]struct{}, len(roles))
	for role, caps := range roles {
		set := make(map[Capability]struct{}, len(caps))
		for _, c := range caps {
			set[Capability(c)] = struct{}{}
		}
		grants[role] = set
	}
	return &RoleAuthorizer{grants: grants}
}

// Allowed reports whether the caller's role grants the capability. Unknown roles get nothing.
func (a *RoleAuthorizer) Allowed(caller Caller, capability Capability) bool {
	_, ok := a.grants[caller.Role][capability]
	return ok
}
