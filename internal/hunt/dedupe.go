// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hunt

import (
	"sort"

	"github.com/pdiddy/paper-hunter/pkg/types"
)

// Dedupe removes duplicate papers and returns the survivors sorted by
// relevance score, highest first.
//
// Two independent seen-sets are kept, one per identifier namespace: a
// candidate is dropped when its arXiv ID was already seen OR its DOI was
// already seen. The first occurrence of an identifier wins. Two papers
// sharing only an arXiv ID collide, two sharing only a DOI collide, but two
// papers with disjoint identifiers in both fields never collide even when
// their titles match — title-similarity dedup is deliberately not performed.
// A paper with neither identifier can never be deduplicated and is always
// kept.
//
// The sort is stable: papers with equal scores keep their relative input
// order, so Dedupe(Dedupe(x)) == Dedupe(x).
func Dedupe(papers []types.Paper) []types.Paper {
	seenIDs := make(map[string]bool)
	seenDOIs := make(map[string]bool)

	kept := make([]types.Paper, 0, len(papers))
	for _, p := range papers {
		if p.ArxivID != "" && seenIDs[p.ArxivID] {
			continue
		}
		if p.DOI != "" && seenDOIs[p.DOI] {
			continue
		}
		if p.ArxivID != "" {
			seenIDs[p.ArxivID] = true
		}
		if p.DOI != "" {
			seenDOIs[p.DOI] = true
		}
		kept = append(kept, p)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].RelevanceScore > kept[j].RelevanceScore
	})
	return kept
}
