package graph

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDeduplicates(t *testing.T) {
	g := New()
	g.AddURI("urn:a", "urn:p", "urn:b")
	g.AddURI("urn:a", "urn:p", "urn:b")
	g.AddLiteral("urn:a", "urn:p", "b")
	assert.Equal(t, 2, g.Len())
}

func TestUnionIsAdditive(t *testing.T) {
	a := New()
	a.AddURI("urn:a", "urn:p", "urn:b")
	b := New()
	b.AddURI("urn:a", "urn:p", "urn:b")
	b.AddLiteral("urn:c", "urn:q", "hello")

	a.Union(b)
	assert.Equal(t, 2, a.Len())
	assert.True(t, a.HasSubject("urn:c"))

	// re-merging must not change anything
	a.Union(b)
	assert.Equal(t, 2, a.Len())
}

func TestNTriples(t *testing.T) {
	g := New()
	g.AddURI("urn:a", rdfType, "urn:Person")
	g.AddLiteral("urn:a", "urn:label", `say "hi"`+"\n")
	g.AddTypedLiteral("urn:a", "urn:when", "2020-01-01T00:00:00Z", "http://www.w3.org/2001/XMLSchema#dateTime")

	ttl := g.NTriples()
	lines := strings.Split(strings.TrimSpace(ttl), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `<urn:a> <`+rdfType+`> <urn:Person> .`, lines[0])
	assert.Equal(t, `<urn:a> <urn:label> "say \"hi\"\n" .`, lines[1])
	assert.Contains(t, lines[2], `^^<http://www.w3.org/2001/XMLSchema#dateTime>`)
}

func TestJSONLDGroupsBySubject(t *testing.T) {
	g := New()
	g.AddURI("urn:a", rdfType, "urn:Person")
	g.AddURI("urn:a", rdfType, "urn:FacultyMember")
	g.AddLiteral("urn:a", "urn:label", "Lovelace, Ada")
	g.AddURI("urn:b", "urn:p", "urn:a")

	doc := g.JSONLD()
	nodes, ok := doc["@graph"].([]interface{})
	require.True(t, ok)
	require.Len(t, nodes, 2)

	first := nodes[0].(map[string]interface{})
	assert.Equal(t, "urn:a", first["@id"])
	assert.Equal(t, []interface{}{"urn:Person", "urn:FacultyMember"}, first["@type"])
}

func TestToNQuads(t *testing.T) {
	g := New()
	g.AddURI("http://example.org/a", rdfType, "http://example.org/Person")
	g.AddLiteral("http://example.org/a", "http://example.org/label", "Lovelace, Ada")

	proc, options := NewProcessor()
	nq, err := g.ToNQuads(proc, options)
	require.NoError(t, err)
	assert.Contains(t, nq, "<http://example.org/a>")
	assert.Contains(t, nq, `"Lovelace, Ada"`)
}

func TestStreamInsertIdempotent(t *testing.T) {
	g := New()
	g.AddURI("urn:a", "urn:p", "urn:b")
	g.AddLiteral("urn:a", "urn:q", "x")

	sink := NewMemorySink()
	require.NoError(t, StreamInsert(context.Background(), g, sink))
	require.NoError(t, StreamInsert(context.Background(), g, sink))
	assert.Equal(t, 2, sink.Graph.Len())
}
