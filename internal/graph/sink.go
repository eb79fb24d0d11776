package graph

import (
	"context"
	"fmt"
)

// Sink is an additive statement store. Insert must be idempotent so a
// retried stream never corrupts the store.
type Sink interface {
	Insert(ctx context.Context, st Statement) error
}

// StreamInsert pushes the graph into a sink statement by statement.
func StreamInsert(ctx context.Context, g *Graph, sink Sink) error {
	for _, st := range g.Statements() {
		if err := sink.Insert(ctx, st); err != nil {
			return fmt.Errorf("inserting statement about %s: %w", st.Subject, err)
		}
	}
	return nil
}

// MemorySink is an in-memory additive Sink, mostly for tests.
type MemorySink struct {
	Graph *Graph
}

func NewMemorySink() *MemorySink {
	return &MemorySink{Graph: New()}
}

func (m *MemorySink) Insert(_ context.Context, st Statement) error {
	m.Graph.Add(st)
	return nil
}
