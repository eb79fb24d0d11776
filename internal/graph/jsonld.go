package graph

import (
	"fmt"

	"github.com/piprate/json-gold/ld"
)

// NewProcessor builds the JSON-LD processor and options used for all
// graph-to-RDF conversions. Build these once and pass them around.
func NewProcessor() (*ld.JsonLdProcessor, *ld.JsonLdOptions) {
	proc := ld.NewJsonLdProcessor()
	options := ld.NewJsonLdOptions("")
	options.Format = "application/nquads"
	return proc, options
}

// ToNQuads converts the graph to N-Quads via its JSON-LD representation.
func (g *Graph) ToNQuads(proc *ld.JsonLdProcessor, options *ld.JsonLdOptions) (string, error) {
	nQuads, err := proc.ToRDF(g.JSONLD(), options)
	if err != nil {
		return "", err
	}

	switch nQuads := nQuads.(type) {
	case string:
		return nQuads, nil
	default:
		return "", fmt.Errorf("nq is not a string, instead it is a %T with value %v", nQuads, nQuads)
	}
}
