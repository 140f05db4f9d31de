package auth

// Capability names an action a caller may be allowed to perform on depth charts
type Capability string

const (
	CapViewChart       Capability = "view_chart"
	CapCreateChart     Capability = "create_chart"
	CapEditChart       Capability = "edit_chart"
	CapDeleteChart     Capability = "delete_chart"
	CapManagePositions Capability = "manage_positions"
	CapAssignPlayers   Capability = "assign_players"
	CapUnassignPlayers Capability = "unassign_players"
)

// AllCapabilities lists every known capability
var AllCapabilities = []Capability{
	CapViewChart,
	CapCreateChart,
	CapEditChart,
	CapDeleteChart,
	CapManagePositions,
	CapAssignPlayers,
	CapUnassignPlayers,
}

// IsValid checks if the Capability is known
func (c Capability) IsValid() bool {
	for _, known := range AllCapabilities {
		if c == known {
			return true
		}
	}
	return false
}
