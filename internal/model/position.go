package model

// PositionGroup is a labelled, ordered set of staff positions used for grouped selects.
type PositionGroup struct {
	Label     string   `json:"label"`
	Positions []string `json:"positions"`
}

// Position names referenced by the access rules below.
const (
	PositionDentist          = "Dentist"
	PositionPediatricDentist = "Pediatric Dentist"
	PositionDentalHygienist  = "Dental Hygienist"
	PositionOrthodontist     = "Orthodontist"
	PositionEndodontist      = "Endodontist"
	PositionPeriodontist     = "Periodontist"
	PositionOralSurgeon      = "Oral Surgeon"
)

// positionGroups is the fixed taxonomy in display order. Position strings are
// unique across all groups.
var positionGroups = []PositionGroup{
	{
		Label: "Clinical",
		Positions: []string{
			PositionDentist,
			PositionPediatricDentist,
			PositionDentalHygienist,
			"Dental Assistant",
		},
	},
	{
		Label: "Front office",
		Positions: []string{
			"Receptionist",
			"Office Manager",
			"Billing Coordinator",
			"Insurance Coordinator",
			"Treatment Coordinator",
		},
	},
	{
		Label: "Specialists",
		Positions: []string{
			PositionOrthodontist,
			PositionEndodontist,
			PositionPeriodontist,
			PositionOralSurgeon,
			"Prosthodontist",
		},
	},
	{
		Label: "Support",
		Positions: []string{
			"Sterilization Technician",
			"Lab Technician",
			"IT Support",
			"Practice Administrator",
		},
	},
}

// assignablePatientPositions can hold assigned patients and see a "my patients" view.
var assignablePatientPositions = []string{
	PositionDentist,
	PositionPediatricDentist,
	PositionOrthodontist,
	PositionEndodontist,
	PositionPeriodontist,
	PositionOralSurgeon,
	PositionDentalHygienist,
}

// chartDeletePositions are the dentist-level roles allowed to delete a patient chart.
// Dental Hygienist is assignable but cannot delete charts.
var chartDeletePositions = []string{
	PositionDentist,
	PositionPediatricDentist,
	PositionOrthodontist,
	PositionEndodontist,
	PositionPeriodontist,
	PositionOralSurgeon,
}

var (
	flatPositions   []string
	positionGroupOf map[string]string
	assignableSet   map[string]struct{}
	chartDeleteSet  map[string]struct{}
)

func init() {
	positionGroupOf = make(map[string]string)
	for _, g := range positionGroups {
		for _, p := range g.Positions {
			flatPositions = append(flatPositions, p)
			positionGroupOf[p] = g.Label
		}
	}
	assignableSet = toSet(assignablePatientPositions)
	chartDeleteSet = toSet(chartDeletePositions)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// PositionGroups returns a copy of the grouped taxonomy in display order.
func PositionGroups() []PositionGroup {
	groups := make([]PositionGroup, len(positionGroups))
	for i, g := range positionGroups {
		groups[i] = PositionGroup{
			Label:     g.Label,
			Positions: append([]string(nil), g.Positions...),
		}
	}
	return groups
}

// FlatPositions returns every position, preserving group and in-group order.
func FlatPositions() []string {
	return append([]string(nil), flatPositions...)
}

// AssignablePatientPositions returns the positions that may be assigned patients.
func AssignablePatientPositions() []string {
	return append([]string(nil), assignablePatientPositions...)
}

// ChartDeletePositions returns the positions that may delete a patient chart.
func ChartDeletePositions() []string {
	return append([]string(nil), chartDeletePositions...)
}

// IsValidPosition reports whether position belongs to the taxonomy.
func IsValidPosition(position string) bool {
	_, ok := positionGroupOf[position]
	return ok
}

// GroupOf returns the label of the group containing position, or "" for unknown values.
func GroupOf(position string) string {
	return positionGroupOf[position]
}

// CanHaveAssignedPatients reports whether holders of position can be assigned patients.
// Legacy or free-form values simply return false.
func CanHaveAssignedPatients(position string) bool {
	_, ok := assignableSet[position]
	return ok
}

// CanDeleteCharts reports whether holders of position may delete a patient chart.
func CanDeleteCharts(position string) bool {
	_, ok := chartDeleteSet[position]
	return ok
}
