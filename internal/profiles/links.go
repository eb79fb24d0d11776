package profiles

import (
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Relation suffixes CAP uses in meta.links. The full rel values are
// API-versioned URLs, so matching is by suffix.
const (
	RelSelf   = "/rel/self"
	RelPublic = "/rel/public"
)

var linksPath = jp.MustParseString("$.meta.links[*]")

// parseLinks extracts the rel/href pairs from a raw profile's meta.links.
func parseLinks(rawProfile []byte) []Link {
	obj, err := oj.Parse(rawProfile)
	if err != nil {
		return nil
	}
	var links []Link
	for _, node := range linksPath.Get(obj) {
		link, ok := node.(map[string]interface{})
		if !ok {
			continue
		}
		rel, _ := link["rel"].(string)
		href, _ := link["href"].(string)
		links = append(links, Link{Rel: rel, Href: href})
	}
	return links
}

// ResolveLink returns the href of the first meta.links entry whose rel ends
// with the given relation suffix, or "" when absent.
func ResolveLink(rawProfile []byte, relSuffix string) string {
	for _, link := range parseLinks(rawProfile) {
		if strings.HasSuffix(link.Rel, relSuffix) && link.Href != "" {
			return link.Href
		}
	}
	return ""
}

// Resolve looks a relation suffix up in the parsed link list.
func (p Profile) Resolve(relSuffix string) string {
	for _, link := range p.Links {
		if strings.HasSuffix(link.Rel, relSuffix) && link.Href != "" {
			return link.Href
		}
	}
	return ""
}
