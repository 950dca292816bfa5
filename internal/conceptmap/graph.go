// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package conceptmap

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pdiddy/paper-hunter/pkg/types"
)

// Map derives a concept graph from one digest: entity extraction, relation
// inference, and bounded graph construction. It never propagates a failure
// to its caller — an unexpected panic anywhere in the extraction patterns is
// recovered and substituted with a minimal single-node error graph.
func Map(digest string, cfg types.GraphConfig) (g types.ConceptGraph) {
	defer func() {
		if r := recover(); r != nil {
			g = errorGraph()
		}
	}()

	entities := ExtractEntities(digest)
	triples := InferRelations(digest, entities, cfg.MaxEdges)
	return Build(entities, triples, cfg)
}

// Build assembles the bounded graph. At most cfg.MaxNodes entities are
// retained, in iteration order — deliberately not by any centrality
// measure. Edges are kept only when both endpoints survived the node cap;
// nodes with no incident edge remain in the node set as isolated nodes, so
// the graph accounts for every retained node exactly once and no edge
// references a node outside the set.
func Build(entities *EntitySet, triples []types.Triple, cfg types.GraphConfig) types.ConceptGraph {
	retained := entities.Entities()
	if cfg.MaxNodes > 0 && len(retained) > cfg.MaxNodes {
		retained = retained[:cfg.MaxNodes]
	}

	var g types.ConceptGraph
	byID := make(map[string]bool, len(retained))
	for _, entity := range retained {
		id := NodeID(entity)
		if id == "" || byID[id] {
			continue
		}
		byID[id] = true
		g.Nodes = append(g.Nodes, types.Node{ID: id, Label: displayLabel(entity)})
	}

	for _, t := range triples {
		if cfg.MaxEdges > 0 && len(g.Edges) >= cfg.MaxEdges {
			break
		}
		if !byID[t.Source] || !byID[t.Target] {
			continue
		}
		g.Edges = append(g.Edges, types.Edge{Source: t.Source, Relation: t.Relation, Target: t.Target})
	}

	return g
}

// RenderMermaid projects a concept graph onto mermaid "graph TD" syntax:
// one line per edge with inline node declarations, then one standalone line
// per node never referenced by an edge.
func RenderMermaid(g types.ConceptGraph) string {
	labels := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		labels[n.ID] = n.Label
	}

	lines := []string{"graph TD"}
	referenced := make(map[string]bool)

	for _, e := range g.Edges {
		lines = append(lines, fmt.Sprintf("    %s[%s] -->|%s| %s[%s]",
			e.Source, labels[e.Source], e.Relation, e.Target, labels[e.Target]))
		referenced[e.Source] = true
		referenced[e.Target] = true
	}

	for _, n := range g.Nodes {
		if !referenced[n.ID] {
			lines = append(lines, fmt.Sprintf("    %s[%s]", n.ID, n.Label))
		}
	}

	return strings.Join(lines, "\n")
}

// errorGraph is the substitute output when graph construction fails.
func errorGraph() types.ConceptGraph {
	return types.ConceptGraph{
		Nodes: []types.Node{{ID: "error", Label: "Error creating concept map"}},
	}
}

// NodeID converts an entity to a token-safe identifier: punctuation
// stripped, whitespace collapsed to single underscores, lowercased.
func NodeID(entity string) string {
	var b strings.Builder
	b.Grow(len(entity))
	for _, r := range entity {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(strings.Join(strings.Fields(b.String()), "_"))
}

// displayLabel returns the first four words of the entity.
func displayLabel(entity string) string {
	words := strings.Fields(entity)
	if len(words) > 4 {
		words = words[:4]
	}
	return strings.Join(words, " ")
}
