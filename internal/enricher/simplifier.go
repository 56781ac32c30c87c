package enricher

import (
	"sort"

	"github.com/olehluchkiv/gosolid/internal/analyzer"
)

// Simplifier reduces a large diagram to its most important elements.
type Simplifier interface {
	Simplify(result *analyzer.Result, maxNodes int) *analyzer.Result
}

// DefaultSimplifier caps a result at MaxNodes by edge count. Realisations and
// context usages both count as edges.
type DefaultSimplifier struct {
	MaxNodes int // 0 means no cap
}

func NewDefaultSimplifier(maxNodes int) *DefaultSimplifier {
	return &DefaultSimplifier{MaxNodes: maxNodes}
}

func (s *DefaultSimplifier) Enrich(result *analyzer.Result) *analyzer.Result {
	if s.MaxNodes <= 0 {
		return result
	}
	return s.Simplify(result, s.MaxNodes)
}

func (s *DefaultSimplifier) Simplify(result *analyzer.Result, maxNodes int) *analyzer.Result {
	edgeCount := make(map[string]int)
	for _, rel := range result.Relations {
		edgeCount[key(rel.Type.PkgPath, rel.Type.Name)]++
		edgeCount[key(rel.Interface.PkgPath, rel.Interface.Name)]++
	}
	for _, c := range result.Contexts {
		edgeCount[key(c.Type.PkgPath, c.Type.Name)]++
		edgeCount[key(c.Contract.PkgPath, c.Contract.Name)]++
	}

	if len(edgeCount) <= maxNodes {
		return result
	}

	// Rank nodes by edge count, keep top N
	type nodeRank struct {
		key   string
		count int
	}
	var ranks []nodeRank
	for k, c := range edgeCount {
		ranks = append(ranks, nodeRank{k, c})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].count != ranks[j].count {
			return ranks[i].count > ranks[j].count
		}
		return ranks[i].key < ranks[j].key
	})

	keep := make(map[string]bool)
	for _, r := range ranks[:maxNodes] {
		keep[r.key] = true
	}

	out := &analyzer.Result{ModulePath: result.ModulePath}
	for _, iface := range result.Interfaces {
		if keep[key(iface.PkgPath, iface.Name)] {
			out.Interfaces = append(out.Interfaces, iface)
		}
	}
	for _, typ := range result.Types {
		if keep[key(typ.PkgPath, typ.Name)] {
			out.Types = append(out.Types, typ)
		}
	}
	for _, rel := range result.Relations {
		if keep[key(rel.Type.PkgPath, rel.Type.Name)] && keep[key(rel.Interface.PkgPath, rel.Interface.Name)] {
			out.Relations = append(out.Relations, rel)
		}
	}
	for _, c := range result.Contexts {
		if keep[key(c.Type.PkgPath, c.Type.Name)] && keep[key(c.Contract.PkgPath, c.Contract.Name)] {
			out.Contexts = append(out.Contexts, c)
		}
	}
	out.Findings = result.Findings
	return out
}
