// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Relation labels a directed edge between two concepts. The set of relation
// kinds is closed: pattern inference and the domain table only ever emit
// these values.
type Relation string

const (
	RelExtends    Relation = "extends"
	RelDependsOn  Relation = "depends_on"
	RelMeasures   Relation = "measures"
	RelImplements Relation = "implements"
	RelImproves   Relation = "improves"
	RelEnables    Relation = "enables"
	RelCorrects   Relation = "corrects"
	RelApplies    Relation = "applies"

	// Relations emitted only by the domain table.
	RelUses   Relation = "uses"
	RelRunsOn Relation = "runs_on"
	RelCauses Relation = "causes"
)

// Triple is a directed, labeled edge candidate between two concept node IDs.
// Multiple triples between the same ordered pair with different relations
// are all valid and distinct.
type Triple struct {
	Source   string   `json:"source" yaml:"source"`
	Relation Relation `json:"relation" yaml:"relation"`
	Target   string   `json:"target" yaml:"target"`
}

// Node is one concept in a graph: a token-safe identifier plus a short
// display label (at most four words).
type Node struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Edge connects two nodes of the same graph by their IDs.
type Edge struct {
	Source   string   `json:"source" yaml:"source"`
	Relation Relation `json:"relation" yaml:"relation"`
	Target   string   `json:"target" yaml:"target"`
}

// ConceptGraph is the bounded node/edge description derived from one digest.
// Every edge references only node IDs present in Nodes; nodes with no
// incident edge are still listed. Graphs are built fresh per digest and
// never merged across papers.
type ConceptGraph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// NodeByID returns the node with the given ID and whether it exists.
func (g ConceptGraph) NodeByID(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
