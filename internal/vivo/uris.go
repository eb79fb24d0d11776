package vivo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/valyala/fasttemplate"
)

var nonWord = regexp.MustCompile(`\W`)

// URIs expands the configured URI templates. The scheme is load bearing:
// identifiers must stay bit-exact across runs or cross-profile statements
// will never merge onto the same subjects.
type URIs struct {
	person *fasttemplate.Template
	org    *fasttemplate.Template
	degree *fasttemplate.Template
}

// NewURIs parses the three URI templates. Placeholders: {id} for the person
// template, {alias} for the org template, {degree} for the degree template.
func NewURIs(personTemplate, orgTemplate, degreeTemplate string) (*URIs, error) {
	p, err := fasttemplate.NewTemplate(personTemplate, "{", "}")
	if err != nil {
		return nil, fmt.Errorf("person uri template: %w", err)
	}
	o, err := fasttemplate.NewTemplate(orgTemplate, "{", "}")
	if err != nil {
		return nil, fmt.Errorf("org uri template: %w", err)
	}
	d, err := fasttemplate.NewTemplate(degreeTemplate, "{", "}")
	if err != nil {
		return nil, fmt.Errorf("degree uri template: %w", err)
	}
	return &URIs{person: p, org: o, degree: d}, nil
}

// Person derives the stable VIVO URI for a CAP profile id.
func (u *URIs) Person(profileID int64) string {
	return u.person.ExecuteString(map[string]interface{}{"id": fmt.Sprintf("%d", profileID)})
}

// VCard is the contact block URI, subordinate to the person URI.
func (u *URIs) VCard(profileID int64) string {
	return u.Person(profileID) + "/vcard"
}

// Org derives the organization URI from its unique alias.
func (u *URIs) Org(alias string) string {
	return u.org.ExecuteString(map[string]interface{}{"alias": alias})
}

// Degree derives a degree URI from an abbreviation, lowercased with all
// non-word characters stripped.
func (u *URIs) Degree(abbrev string) string {
	normalized := strings.ToLower(nonWord.ReplaceAllString(abbrev, ""))
	return u.degree.ExecuteString(map[string]interface{}{"degree": normalized})
}
