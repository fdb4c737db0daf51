package model

// PlanEntry pairs a template source with its destination.
// Paths are slash-separated. Source is relative to the template root.
type PlanEntry struct {
	Kind        string
	Role        Role
	Source      string
	Destination string
	// Variation is set for RoleVariation entries.
	Variation *Variation
}
