package graph

// The statement container the mapper builds into. Statements are a set:
// adding a duplicate is a no-op, and two graphs about the same subject can
// be merged by union without coordination. That union-only contract is what
// lets different profile runs contribute partial statements about the same
// person URI.

// Term is the object position of a statement, a URI or a typed literal.
type Term struct {
	Value    string
	Literal  bool
	Datatype string
}

// URI returns a URI term.
func URI(v string) Term {
	return Term{Value: v}
}

// Literal returns a plain string literal term.
func Literal(v string) Term {
	return Term{Value: v, Literal: true}
}

// TypedLiteral returns a literal term with an explicit datatype.
func TypedLiteral(v, datatype string) Term {
	return Term{Value: v, Literal: true, Datatype: datatype}
}

// Statement is a single subject/predicate/object triple.
type Statement struct {
	Subject   string
	Predicate string
	Object    Term
}

// Graph is a duplicate-eliminating statement set with deterministic
// (insertion-ordered) iteration.
type Graph struct {
	seen       map[Statement]struct{}
	statements []Statement
}

func New() *Graph {
	return &Graph{seen: make(map[Statement]struct{})}
}

// Add inserts a statement, dropping exact duplicates.
func (g *Graph) Add(st Statement) {
	if _, ok := g.seen[st]; ok {
		return
	}
	g.seen[st] = struct{}{}
	g.statements = append(g.statements, st)
}

// AddURI asserts subject predicate <object>.
func (g *Graph) AddURI(subject, predicate, object string) {
	g.Add(Statement{Subject: subject, Predicate: predicate, Object: URI(object)})
}

// AddLiteral asserts subject predicate "object".
func (g *Graph) AddLiteral(subject, predicate, object string) {
	g.Add(Statement{Subject: subject, Predicate: predicate, Object: Literal(object)})
}

// AddTypedLiteral asserts subject predicate "object"^^<datatype>.
func (g *Graph) AddTypedLiteral(subject, predicate, object, datatype string) {
	g.Add(Statement{Subject: subject, Predicate: predicate, Object: TypedLiteral(object, datatype)})
}

// Union adds every statement of other into g.
func (g *Graph) Union(other *Graph) {
	if other == nil {
		return
	}
	for _, st := range other.statements {
		g.Add(st)
	}
}

// Statements returns a copy of the statement list in insertion order.
func (g *Graph) Statements() []Statement {
	out := make([]Statement, len(g.statements))
	copy(out, g.statements)
	return out
}

// Len is the number of distinct statements.
func (g *Graph) Len() int {
	return len(g.statements)
}

// Contains reports whether the exact statement is present.
func (g *Graph) Contains(st Statement) bool {
	_, ok := g.seen[st]
	return ok
}

// Subjects returns the distinct subject URIs in insertion order.
func (g *Graph) Subjects() []string {
	seen := make(map[string]struct{})
	var subjects []string
	for _, st := range g.statements {
		if _, ok := seen[st.Subject]; ok {
			continue
		}
		seen[st.Subject] = struct{}{}
		subjects = append(subjects, st.Subject)
	}
	return subjects
}

// HasSubject reports whether any statement is about the given URI.
func (g *Graph) HasSubject(uri string) bool {
	for _, st := range g.statements {
		if st.Subject == uri {
			return true
		}
	}
	return false
}
