package mapper

import (
	"fmt"

	"cap2vivo/internal/vivo"

	log "github.com/sirupsen/logrus"
)

const (
	advisorRoleSuffix = "/postdoc-advisor-role"
	adviseeRoleSuffix = "/postdoc-advisee-role"

	advisorRoleLabel = "Postdoctoral Advisor"
	adviseeRoleLabel = "Postdoctoral Student"
)

// computeAdvising derives the advising role blocks for this profile.
//
// A faculty member with postdoctoral advisees is the only record in CAP
// that names the relationship: the advisee's own record never identifies
// its advisor by id. So the advisor's run pre-seeds the advisee's future
// graph through the outside graph. The advisee role URI derives from the
// advisee id alone, so contributions from different runs about the same
// person land on the same subjects and merge by union.
func (m *Mapper) computeAdvising(person string) {
	if m.profile.Faculty && len(m.profile.Advisees) > 0 {
		m.mapAdvisees(person)
	}

	if m.profile.Postdoc {
		// Advisee role on self, with no relationship link: the matching
		// advisor-side relationship, if any, was created when the
		// advisor's profile was processed.
		role := person + adviseeRoleSuffix
		m.own.AddURI(person, vivo.BearerOf, role)
		m.own.AddURI(role, vivo.RDFType, vivo.AdviseeRole)
		m.own.AddLiteral(role, vivo.RDFSLabel, adviseeRoleLabel)
	}

	// MD/MS/PhD student records carry no advisor id, so no advising
	// relationship is derivable for them here. Extension point: if CAP
	// ever exposes a thesis advisor id, seed it the same way as the
	// postdoc branch above.
}

func (m *Mapper) mapAdvisees(person string) {
	advisorRole := person + advisorRoleSuffix
	roleAsserted := false

	for _, advisee := range m.profile.Advisees {
		if advisee.ProfileID <= 0 {
			log.WithField("profileId", m.profile.ID).
				Errorf("postdoctoral advisee %q has no numeric profile id", advisee.Label)
			m.errs = append(m.errs, fmt.Errorf(
				"profile %d: postdoctoral advisee %q has no numeric profile id",
				m.profile.ID, advisee.Label))
			continue
		}

		if !roleAsserted {
			m.own.AddURI(person, vivo.BearerOf, advisorRole)
			m.own.AddURI(advisorRole, vivo.RDFType, vivo.AdvisorRole)
			m.own.AddLiteral(advisorRole, vivo.RDFSLabel, advisorRoleLabel)
			roleAsserted = true
		}

		relationship := fmt.Sprintf("%s/advising/%d", person, advisee.ProfileID)
		m.own.AddURI(advisorRole, vivo.RelatedBy, relationship)
		m.own.AddURI(relationship, vivo.RDFType, vivo.PostdocAdvising)
		m.own.AddURI(relationship, vivo.Relates, advisorRole)

		// Everything about the advisee goes to the outside graph, never
		// into this profile's own graph.
		adviseeURI := m.uris.Person(advisee.ProfileID)
		adviseeRole := adviseeURI + adviseeRoleSuffix
		m.outside.AddURI(adviseeURI, vivo.RDFType, vivo.FOAFPerson)
		m.outside.AddURI(adviseeURI, vivo.BearerOf, adviseeRole)
		m.outside.AddURI(adviseeRole, vivo.RDFType, vivo.AdviseeRole)
		m.outside.AddLiteral(adviseeRole, vivo.RDFSLabel, adviseeRoleLabel)
		m.outside.AddURI(adviseeRole, vivo.RelatedBy, relationship)
	}
}
