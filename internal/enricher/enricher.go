package enricher

import "github.com/olehluchkiv/gosolid/internal/analyzer"

// Enricher transforms an analysis result before it is rendered.
type Enricher interface {
	Enrich(result *analyzer.Result) *analyzer.Result
}

// DetectedPattern represents a recognized design pattern.
type DetectedPattern struct {
	Name         string
	Description  string
	Participants []string // type/interface keys involved
}

func key(pkgPath, name string) string {
	return pkgPath + "." + name
}
