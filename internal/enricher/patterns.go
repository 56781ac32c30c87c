package enricher

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olehluchkiv/gosolid/internal/analyzer"
)

// PatternDetector identifies design patterns in the interface graph.
type PatternDetector interface {
	Detect(result *analyzer.Result) []DetectedPattern
}

// StrategyDetector recognizes a context holding a capability interface that
// has at least MinVariants implementations.
type StrategyDetector struct {
	MinVariants int
}

func NewStrategyDetector() *StrategyDetector { return &StrategyDetector{MinVariants: 1} }

func (d *StrategyDetector) Detect(result *analyzer.Result) []DetectedPattern {
	variants := make(map[string][]*analyzer.TypeDef)
	for _, rel := range result.Relations {
		k := key(rel.Interface.PkgPath, rel.Interface.Name)
		variants[k] = append(variants[k], rel.Type)
	}

	var out []DetectedPattern
	for _, c := range result.Contexts {
		contract := key(c.Contract.PkgPath, c.Contract.Name)
		ctxKey := key(c.Type.PkgPath, c.Type.Name)

		var names, participants []string
		for _, v := range variants[contract] {
			if k := key(v.PkgPath, v.Name); k != ctxKey {
				names = append(names, v.Name)
				participants = append(participants, k)
			}
		}
		if len(names) < d.MinVariants {
			continue
		}
		sort.Strings(names)
		sort.Strings(participants)

		out = append(out, DetectedPattern{
			Name:         "strategy",
			Description:  fmt.Sprintf("%s.%s holds %s (%s)", c.Type.Name, c.Field, c.Contract.Name, strings.Join(names, ", ")),
			Participants: append([]string{ctxKey, contract}, participants...),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Description < out[j].Description })
	return out
}
