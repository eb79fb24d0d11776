package graph

import (
	"strings"
)

const rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// NTriples renders the graph as N-Triples, which is also valid Turtle.
// One statement per line, insertion order, so serialization is stable.
func (g *Graph) NTriples() string {
	var b strings.Builder
	for _, st := range g.statements {
		b.WriteString("<")
		b.WriteString(st.Subject)
		b.WriteString("> <")
		b.WriteString(st.Predicate)
		b.WriteString("> ")
		if st.Object.Literal {
			b.WriteString(`"`)
			b.WriteString(escapeLiteral(st.Object.Value))
			b.WriteString(`"`)
			if st.Object.Datatype != "" {
				b.WriteString("^^<")
				b.WriteString(st.Object.Datatype)
				b.WriteString(">")
			}
		} else {
			b.WriteString("<")
			b.WriteString(st.Object.Value)
			b.WriteString(">")
		}
		b.WriteString(" .\n")
	}
	return b.String()
}

func escapeLiteral(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	return r.Replace(s)
}

// JSONLD builds an expanded-form JSON-LD document from the graph,
// one node object per subject, ready to hand to a JSON-LD processor.
func (g *Graph) JSONLD() map[string]interface{} {
	nodes := make(map[string]map[string]interface{})
	var order []string

	for _, st := range g.statements {
		node, ok := nodes[st.Subject]
		if !ok {
			node = map[string]interface{}{"@id": st.Subject}
			nodes[st.Subject] = node
			order = append(order, st.Subject)
		}

		key := st.Predicate
		var value interface{}
		if st.Predicate == rdfType && !st.Object.Literal {
			key = "@type"
			value = st.Object.Value
		} else if st.Object.Literal {
			lit := map[string]interface{}{"@value": st.Object.Value}
			if st.Object.Datatype != "" {
				lit["@type"] = st.Object.Datatype
			}
			value = lit
		} else {
			value = map[string]interface{}{"@id": st.Object.Value}
		}

		switch existing := node[key].(type) {
		case nil:
			node[key] = []interface{}{value}
		case []interface{}:
			node[key] = append(existing, value)
		}
	}

	doc := make([]interface{}, 0, len(order))
	for _, subject := range order {
		doc = append(doc, nodes[subject])
	}
	return map[string]interface{}{"@graph": doc}
}
