package prov

import (
	"sync"
	"time"

	"cap2vivo/internal/config"
	"cap2vivo/internal/graph"
	"cap2vivo/internal/vivo"

	log "github.com/sirupsen/logrus"
)

// Annotator attaches the W3C PROV subgraph that records how each VIVO graph
// was derived from its CAP source. The mapping agent graph is fixed for the
// whole process and built exactly once; annotation is per entity.
type Annotator struct {
	cfg config.ProvConfig
	now func() time.Time

	once  sync.Once
	agent *graph.Graph
}

// Option adjusts an Annotator, mostly for deterministic tests.
type Option func(*Annotator)

// WithClock replaces the wall clock used for generatedAtTime literals.
func WithClock(now func() time.Time) Option {
	return func(a *Annotator) { a.now = now }
}

func New(cfg config.ProvConfig, opts ...Option) *Annotator {
	a := &Annotator{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AgentGraph is the fixed subgraph declaring the mapping entity, activity,
// agent and the organization the agent acts on behalf of. Memoized: safe to
// persist on every run into an additive store.
func (a *Annotator) AgentGraph() *graph.Graph {
	a.once.Do(func() {
		g := graph.New()
		g.AddURI(a.cfg.Entityuri, vivo.RDFType, vivo.ProvEntity)
		g.AddLiteral(a.cfg.Entityuri, vivo.RDFSLabel, a.cfg.Entityname)
		g.AddURI(a.cfg.Activityuri, vivo.RDFType, vivo.ProvActivity)
		g.AddLiteral(a.cfg.Activityuri, vivo.RDFSLabel, a.cfg.Activityname)
		g.AddURI(a.cfg.Agenturi, vivo.RDFType, vivo.ProvAgent)
		g.AddLiteral(a.cfg.Agenturi, vivo.RDFSLabel, a.cfg.Agentname)
		g.AddURI(a.cfg.Orguri, vivo.RDFType, vivo.ProvOrganization)
		g.AddLiteral(a.cfg.Orguri, vivo.RDFSLabel, a.cfg.Orgname)
		g.AddURI(a.cfg.Agenturi, vivo.ProvActedOnBehalfOf, a.cfg.Orguri)
		g.AddURI(a.cfg.Activityuri, vivo.ProvWasAssociated, a.cfg.Agenturi)
		a.agent = g
	})
	return a.agent
}

// Annotate appends the derivation statements for one mapped subject:
// subject and source are PROV entities, the source carries its last-modified
// time, the subject was derived from the source by the fixed mapping
// activity at mapping time.
func (a *Annotator) Annotate(g *graph.Graph, subjectURI, sourceURI string, sourceModified interface{}) *graph.Graph {
	g.AddURI(subjectURI, vivo.RDFType, vivo.ProvEntity)
	g.AddURI(sourceURI, vivo.RDFType, vivo.ProvEntity)
	g.AddTypedLiteral(sourceURI, vivo.ProvGeneratedAtTime, a.parseModified(sourceModified), vivo.XSDDateTime)
	g.AddURI(subjectURI, vivo.ProvWasDerivedFrom, sourceURI)
	g.AddURI(subjectURI, vivo.ProvWasGeneratedBy, a.cfg.Activityuri)
	g.AddTypedLiteral(subjectURI, vivo.ProvGeneratedAtTime, a.utc(a.now()), vivo.XSDDateTime)
	g.AddURI(a.cfg.Activityuri, vivo.ProvUsed, sourceURI)
	return g
}

// parseModified accepts an absent value (defaults to now), an ISO-8601
// string, or an already-structured time. Output is always UTC.
func (a *Annotator) parseModified(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return a.utc(a.now())
	case time.Time:
		return a.utc(t)
	case string:
		if t == "" {
			return a.utc(a.now())
		}
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return a.utc(parsed)
			}
		}
		log.Errorf("unparseable source timestamp %q, using current time", t)
		return a.utc(a.now())
	default:
		log.Errorf("unsupported source timestamp type %T, using current time", v)
		return a.utc(a.now())
	}
}

func (a *Annotator) utc(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
