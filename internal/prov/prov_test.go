package prov

import (
	"testing"
	"time"

	"cap2vivo/internal/config"
	"cap2vivo/internal/graph"
	"cap2vivo/internal/vivo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = config.ProvConfig{
	Entityuri:    "urn:prov:entity",
	Entityname:   "CAP to VIVO profile mapping",
	Activityuri:  "urn:prov:activity",
	Activityname: "CAP to VIVO mapping run",
	Agenturi:     "urn:prov:agent",
	Agentname:    "Research Directory Services",
	Orguri:       "urn:prov:org",
	Orgname:      "Example University Libraries",
}

func fixedClock() time.Time {
	return time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestAgentGraphMemoized(t *testing.T) {
	a := New(testCfg, WithClock(fixedClock))
	first := a.AgentGraph()
	second := a.AgentGraph()
	assert.Same(t, first, second)

	assert.True(t, first.Contains(graph.Statement{
		Subject:   "urn:prov:agent",
		Predicate: vivo.ProvActedOnBehalfOf,
		Object:    graph.URI("urn:prov:org"),
	}))
	assert.True(t, first.Contains(graph.Statement{
		Subject:   "urn:prov:org",
		Predicate: vivo.RDFType,
		Object:    graph.URI(vivo.ProvOrganization),
	}))
}

func TestAnnotate(t *testing.T) {
	a := New(testCfg, WithClock(fixedClock))
	g := graph.New()
	a.Annotate(g, "urn:subject", "urn:source", "2015-09-01T10:00:00.000-07:00")

	assert.True(t, g.Contains(graph.Statement{
		Subject:   "urn:subject",
		Predicate: vivo.ProvWasDerivedFrom,
		Object:    graph.URI("urn:source"),
	}))
	assert.True(t, g.Contains(graph.Statement{
		Subject:   "urn:subject",
		Predicate: vivo.ProvWasGeneratedBy,
		Object:    graph.URI("urn:prov:activity"),
	}))
	assert.True(t, g.Contains(graph.Statement{
		Subject:   "urn:prov:activity",
		Predicate: vivo.ProvUsed,
		Object:    graph.URI("urn:source"),
	}))
	// source timestamp converted to UTC
	assert.True(t, g.Contains(graph.Statement{
		Subject:   "urn:source",
		Predicate: vivo.ProvGeneratedAtTime,
		Object:    graph.TypedLiteral("2015-09-01T17:00:00Z", vivo.XSDDateTime),
	}))
	// mapping time comes from the injected clock
	assert.True(t, g.Contains(graph.Statement{
		Subject:   "urn:subject",
		Predicate: vivo.ProvGeneratedAtTime,
		Object:    graph.TypedLiteral("2020-06-01T12:00:00Z", vivo.XSDDateTime),
	}))
}

func TestParseModifiedVariants(t *testing.T) {
	a := New(testCfg, WithClock(fixedClock))
	now := "2020-06-01T12:00:00Z"

	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"absent defaults to now", nil, now},
		{"empty string defaults to now", "", now},
		{"iso string", "2015-09-01T10:00:00Z", "2015-09-01T10:00:00Z"},
		{"date only", "2015-09-01", "2015-09-01T00:00:00Z"},
		{"structured time", time.Date(2015, 9, 1, 10, 0, 0, 0, time.FixedZone("PDT", -7*3600)), "2015-09-01T17:00:00Z"},
		{"garbage falls back to now", "yesterday-ish", now},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, a.parseModified(test.in))
		})
	}
}
