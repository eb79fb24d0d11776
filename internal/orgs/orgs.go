package orgs

import (
	"strings"

	"cap2vivo/internal/graph"
	"cap2vivo/internal/vivo"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Source org type enumeration.
const (
	TypeRoot        = "ROOT"
	TypeSchool      = "SCHOOL"
	TypeDivision    = "DIVISION"
	TypeSubDivision = "SUB_DIVISION"
	TypeDepartment  = "DEPARTMENT"
)

var typeTable = map[string]string{
	TypeRoot:        vivo.University,
	TypeSchool:      vivo.School,
	TypeDivision:    vivo.Division,
	TypeSubDivision: vivo.Division,
	TypeDepartment:  vivo.Department,
}

// Organization is one source org record. Children are handled by Flatten,
// not carried here.
type Organization struct {
	Alias    string
	Type     string
	Name     string
	OrgCodes []string
}

// Entity is the ontology-typed organization the mapper emits.
type Entity struct {
	URI         string
	Types       []string
	Label       string
	Identifiers []string
}

// Parse pulls one org record (ignoring children) from raw JSON.
func Parse(raw []byte) Organization {
	doc := gjson.ParseBytes(raw)
	org := Organization{
		Alias: doc.Get("alias").String(),
		Type:  doc.Get("type").String(),
		Name:  doc.Get("name").String(),
	}
	doc.Get("orgCodes").ForEach(func(_, code gjson.Result) bool {
		org.OrgCodes = append(org.OrgCodes, code.String())
		return true
	})
	return org
}

// Types maps the source org type to ontology classes. Everything is an
// Organization; sub-divisions whose name mentions a center or program get
// the matching extra class, first rule wins.
func Types(orgType, name string) []string {
	types := []string{vivo.FOAFOrganization}
	if mapped, ok := typeTable[orgType]; ok {
		types = append(types, mapped)
	}
	if orgType == TypeSubDivision {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "center") {
			types = append(types, vivo.Center)
		} else if strings.Contains(lower, "program") {
			types = append(types, vivo.Program)
		}
	}
	return types
}

// Mapper converts org records into typed entities using the shared URI scheme.
type Mapper struct {
	uris *vivo.URIs
}

func NewMapper(uris *vivo.URIs) *Mapper {
	return &Mapper{uris: uris}
}

func (m *Mapper) Map(org Organization) Entity {
	return Entity{
		URI:         m.uris.Org(org.Alias),
		Types:       Types(org.Type, org.Name),
		Label:       org.Name,
		Identifiers: org.OrgCodes,
	}
}

// Graph renders the entity as statements.
func (e Entity) Graph() *graph.Graph {
	g := graph.New()
	for _, t := range e.Types {
		g.AddURI(e.URI, vivo.RDFType, t)
	}
	g.AddLiteral(e.URI, vivo.RDFSLabel, e.Label)
	for _, id := range e.Identifiers {
		g.AddLiteral(e.URI, vivo.DCIdentifier, id)
	}
	return g
}

// Flatten recursively extracts nested children as independent top-level org
// documents, children first, each with its own children removed. This keeps
// the document store free of unbounded nesting.
func Flatten(raw []byte) [][]byte {
	var docs [][]byte
	gjson.GetBytes(raw, "children").ForEach(func(_, child gjson.Result) bool {
		docs = append(docs, Flatten([]byte(child.Raw))...)
		return true
	})

	parent, err := sjson.DeleteBytes(raw, "children")
	if err != nil {
		parent = raw
	}
	return append(docs, parent)
}
