// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package conceptmap

import (
	"regexp"
	"strings"

	"github.com/pdiddy/paper-hunter/pkg/types"
)

// relationEntry maps one relation kind to its verb patterns. The table is a
// slice, not a map, so relations are always checked in the same order.
type relationEntry struct {
	relation types.Relation
	verbs    []*regexp.Regexp
}

func verbs(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// relationTable is the fixed relation vocabulary: each relation kind carries
// one to three verb patterns matched between entity mentions.
var relationTable = []relationEntry{
	{types.RelExtends, verbs(`extends?`, `builds? upon`, `generalizes?`)},
	{types.RelDependsOn, verbs(`depends? on`, `requires?`, `needs?`, `uses?`)},
	{types.RelMeasures, verbs(`measures?`, `quantif(?:y|ies)`, `detects?`)},
	{types.RelImplements, verbs(`implements?`, `realizes?`, `demonstrates?`)},
	{types.RelImproves, verbs(`improves?`, `enhances?`, `optimizes?`)},
	{types.RelEnables, verbs(`enables?`, `allows?`, `facilitates?`)},
	{types.RelCorrects, verbs(`corrects?`, `fix(?:es)?`, `mitigates?`)},
	{types.RelApplies, verbs(`appl(?:y|ies)`, `utilizes?`, `employs?`)},
}

// domainTable lists hand-curated quantum-science relations. A domain triple
// is emitted only when both endpoints are present, by normalized form, in
// the extracted entity set.
var domainTable = []types.Triple{
	{Source: "quantum_error_correction", Relation: types.RelUses, Target: "surface_code"},
	{Source: "logical_qubit", Relation: types.RelDependsOn, Target: "physical_qubit"},
	{Source: "quantum_algorithm", Relation: types.RelRunsOn, Target: "quantum_computer"},
	{Source: "decoherence", Relation: types.RelCauses, Target: "quantum_noise"},
	{Source: "syndrome_measurement", Relation: types.RelEnables, Target: "error_correction"},
	{Source: "quantum_gate", Relation: types.RelImplements, Target: "quantum_operation"},
	{Source: "entanglement", Relation: types.RelEnables, Target: "quantum_communication"},
}

// InferRelations scans the digest for lexical evidence of relations between
// every ordered pair of distinct entities, then appends domain-table triples
// whose endpoints are both present. Pattern-matched triples precede domain
// triples; the combined list is truncated to maxEdges, so domain triples are
// silently dropped when the cap is reached first.
//
// The scan is O(entities² × relations × patterns) — acceptable because both
// the entity count and the edge cap are small bounded constants.
func InferRelations(digest string, entities *EntitySet, maxEdges int) []types.Triple {
	text := strings.ToLower(digest)
	list := entities.Entities()

	var triples []types.Triple
	for i, source := range list {
		for j, target := range list {
			if i == j {
				continue
			}
			srcLower := strings.ToLower(source)
			tgtLower := strings.ToLower(target)

			for _, entry := range relationTable {
				if mentionsInOrder(text, srcLower, entry.verbs, tgtLower) {
					triples = append(triples, types.Triple{
						Source:   NodeID(source),
						Relation: entry.relation,
						Target:   NodeID(target),
					})
				}
			}
		}
	}

	triples = append(triples, presentDomainTriples(entities)...)

	if maxEdges > 0 && len(triples) > maxEdges {
		triples = triples[:maxEdges]
	}
	return triples
}

// mentionsInOrder reports whether text contains the source mention, then
// any of the verb patterns, then the target mention, in that order across
// any distance. The window between the first source mention and the last
// target mention is searched, which is equivalent to a non-greedy
// source-verb-target regex over the whole text.
func mentionsInOrder(text, source string, verbs []*regexp.Regexp, target string) bool {
	start := strings.Index(text, source)
	if start < 0 {
		return false
	}
	rest := text[start+len(source):]

	last := strings.LastIndex(rest, target)
	if last < 0 {
		return false
	}
	window := rest[:last]

	for _, verb := range verbs {
		if verb.MatchString(window) {
			return true
		}
	}
	return false
}

// presentDomainTriples returns the domain triples whose endpoints both map
// to extracted entities.
func presentDomainTriples(entities *EntitySet) []types.Triple {
	ids := make(map[string]bool, entities.Len())
	for _, e := range entities.Entities() {
		ids[NodeID(e)] = true
	}

	var triples []types.Triple
	for _, t := range domainTable {
		if ids[t.Source] && ids[t.Target] {
			triples = append(triples, t)
		}
	}
	return triples
}
