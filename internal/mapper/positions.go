package mapper

import (
	"cap2vivo/internal/profiles"
	"cap2vivo/internal/vivo"
)

// PositionTypes maps the affiliation flags to VIVO person types. The rows
// are independent, not mutually exclusive; a profile can collect several.
//
// Graduate affiliations emit GraduateStudent only. The capPhysician flag is
// parsed and carried on the profile but has no VIVO target class in the
// source mapping, so it emits nothing here. TODO: map physician once a
// target class is agreed with the VIVO maintainers.
func PositionTypes(p profiles.Profile) []string {
	var types []string
	if p.Faculty {
		types = append(types, vivo.FacultyMember)
	}
	if p.MDStudent || p.MSStudent || p.PhDStudent {
		types = append(types, vivo.GraduateStudent)
	}
	if p.Postdoc {
		types = append(types, vivo.Postdoctoral)
	}
	if p.Staff {
		types = append(types, vivo.NonAcademic)
	}
	return types
}
