package analyzer

import (
	"strings"
	"unicode"
)

// Filter applies filtering options to the analysis result. Interfaces and
// types survive only if they take part in a surviving relation; contexts need
// their contract to survive; findings are filtered by package prefix only.
func Filter(result *Result, opts AnalyzeOptions) *Result {
	filtered := &Result{ModulePath: result.ModulePath}

	ifaceSet := make(map[string]bool)
	typeSet := make(map[string]bool)

	for _, rel := range result.Relations {
		iface := rel.Interface
		typ := rel.Type

		if !opts.IncludeStdlib && isStdlib(iface.PkgPath) {
			continue
		}
		if !opts.IncludeUnexported && (isUnexported(iface.Name) || isUnexported(typ.Name)) {
			continue
		}
		if opts.Filter != "" {
			ifaceMatch := strings.HasPrefix(iface.PkgPath, opts.Filter)
			typeMatch := strings.HasPrefix(typ.PkgPath, opts.Filter)
			if !ifaceMatch && !typeMatch {
				continue
			}
		}

		filtered.Relations = append(filtered.Relations, rel)
		ifaceSet[ifaceKey(iface)] = true
		typeSet[typeKey(typ)] = true
	}

	// Include only interfaces and types that participate in relations (prune orphans)
	for i := range result.Interfaces {
		iface := &result.Interfaces[i]
		if ifaceSet[ifaceKey(iface)] {
			filtered.Interfaces = append(filtered.Interfaces, *iface)
		}
	}
	for i := range result.Types {
		typ := &result.Types[i]
		if typeSet[typeKey(typ)] {
			filtered.Types = append(filtered.Types, *typ)
		}
	}

	for _, c := range result.Contexts {
		if !ifaceSet[ifaceKey(c.Contract)] {
			continue
		}
		if !opts.IncludeUnexported && isUnexported(c.Type.Name) {
			continue
		}
		if opts.Filter != "" && !strings.HasPrefix(c.Type.PkgPath, opts.Filter) {
			continue
		}
		filtered.Contexts = append(filtered.Contexts, c)
	}

	for _, f := range result.Findings {
		if opts.Filter != "" && !strings.HasPrefix(f.PkgPath, opts.Filter) {
			continue
		}
		filtered.Findings = append(filtered.Findings, f)
	}

	return filtered
}

func isStdlib(pkgPath string) bool {
	// Stdlib packages have no dot in the first path element
	firstPart, _, _ := strings.Cut(pkgPath, "/")
	return !strings.Contains(firstPart, ".")
}

func isUnexported(name string) bool {
	if name == "" {
		return true
	}
	// Built-in types like 'error' are lowercase but considered exported
	if name == "error" {
		return false
	}
	return unicode.IsLower(rune(name[0]))
}

func ifaceKey(iface *InterfaceDef) string {
	return iface.PkgPath + "." + iface.Name
}

func typeKey(typ *TypeDef) string {
	return typ.PkgPath + "." + typ.Name
}
