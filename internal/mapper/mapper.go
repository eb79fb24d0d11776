package mapper

import (
	"fmt"
	"strings"

	"cap2vivo/internal/degrees"
	"cap2vivo/internal/graph"
	"cap2vivo/internal/profiles"
	"cap2vivo/internal/prov"
	"cap2vivo/internal/vivo"
)

// Mapper derives the VIVO graphs for one CAP profile. One instance per
// profile; graphs are built lazily on first access and memoized. The only
// state shared with other mappers is the read-only degree catalog and the
// provenance annotator, so distinct profiles can map in parallel.
//
// Ownership contract: ProfileGraph only holds statements about the
// profile's own URI and URIs subordinate to it. Statements about other
// people land in OutsideGraph, where they can be merged into those people's
// eventual graphs by plain set union.
type Mapper struct {
	profile   profiles.Profile
	uris      *vivo.URIs
	annotator *prov.Annotator
	catalog   *degrees.Catalog

	built     bool
	own       *graph.Graph
	outside   *graph.Graph
	provGraph *graph.Graph
	errs      []error
}

func New(p profiles.Profile, uris *vivo.URIs, annotator *prov.Annotator, catalog *degrees.Catalog) *Mapper {
	return &Mapper{profile: p, uris: uris, annotator: annotator, catalog: catalog}
}

// ProfileGraph is the self-contained graph for the profile subject.
func (m *Mapper) ProfileGraph() *graph.Graph {
	m.build()
	return m.own
}

// OutsideGraph holds the partial statements about other people's URIs
// produced as a byproduct of advising computation. Empty when this profile
// created no cross-person references.
func (m *Mapper) OutsideGraph() *graph.Graph {
	m.build()
	return m.outside
}

// ProvenanceGraph records the derivation of this profile's graph from its
// CAP source record.
func (m *Mapper) ProvenanceGraph() *graph.Graph {
	if m.provGraph == nil {
		g := graph.New()
		source := m.profile.Resolve(profiles.RelSelf)
		if source == "" {
			source = fmt.Sprintf("urn:cap:profile:%d", m.profile.ID)
		}
		m.annotator.Annotate(g, m.uris.Person(m.profile.ID), source, m.profile.LastModified)
		m.provGraph = g
	}
	return m.provGraph
}

// Errs reports the non-fatal problems hit while mapping, such as advisees
// without a numeric profile id. The graphs stay valid; these exist so a
// batch driver can count and surface them.
func (m *Mapper) Errs() []error {
	m.build()
	return m.errs
}

func (m *Mapper) build() {
	if m.built {
		return
	}
	m.built = true
	m.own = graph.New()
	m.outside = graph.New()

	person := m.uris.Person(m.profile.ID)

	// Advising runs first: it decides which advisor/advisee role blocks
	// exist before the position and type statements are assembled.
	m.computeAdvising(person)

	m.own.AddURI(person, vivo.RDFType, vivo.FOAFPerson)
	m.own.AddLiteral(person, vivo.RDFSLabel, displayLabel(m.profile.Legal))
	// overview is always asserted, empty string when the bio is absent
	m.own.AddLiteral(person, vivo.Overview, m.profile.Bio)

	for _, t := range PositionTypes(m.profile) {
		m.own.AddURI(person, vivo.RDFType, t)
	}
	m.buildPositions(person)
	m.buildEducation(person)
	m.buildVCard(person)
}

func (m *Mapper) buildPositions(person string) {
	positions := person + "/positions"
	m.own.AddURI(person, vivo.RelatedBy, positions)
	m.own.AddURI(positions, vivo.RDFType, vivo.Position)
	m.own.AddURI(positions, vivo.Relates, person)
	if title := cleanTitle(m.profile.ShortTitle); title != "" {
		m.own.AddLiteral(positions, vivo.RDFSLabel, title)
	}
}

// buildEducation emits an awarded-degree node per education entry whose
// free-text degree resolves against the catalog.
func (m *Mapper) buildEducation(person string) {
	if m.catalog == nil {
		return
	}
	for i, edu := range m.profile.Education {
		guesses := m.catalog.Resolve(edu.Degree)
		if len(guesses) == 0 {
			continue
		}
		degreeURI, ok := m.catalog.URIFor(guesses[0])
		if !ok {
			continue
		}
		node := fmt.Sprintf("%s/awarded-degree-%d", person, i+1)
		m.own.AddURI(person, vivo.RelatedBy, node)
		m.own.AddURI(node, vivo.RDFType, vivo.AwardedDegree)
		m.own.AddLiteral(node, vivo.RDFSLabel, strings.TrimSpace(edu.Degree))
		m.own.AddURI(node, vivo.Relates, person)
		m.own.AddURI(node, vivo.AssignedDegree, degreeURI)
	}
}

// displayLabel renders "Last, First" with sensible fallbacks when a part
// is missing.
func displayLabel(n profiles.Name) string {
	switch {
	case n.Last != "" && n.First != "":
		return n.Last + ", " + n.First
	case n.Last != "":
		return n.Last
	default:
		return n.First
	}
}

func cleanTitle(title string) string {
	return strings.NewReplacer(`"`, "", `'`, "", "\n", "").Replace(title)
}
