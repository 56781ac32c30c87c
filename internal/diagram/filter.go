package diagram

import (
	"strings"

	"github.com/olehluchkiv/gosolid/internal/analyzer"
)

// Focus narrows a Result to the selected node IDs (see NodeID) and whatever is
// directly connected to them: implementations, implemented interfaces and
// contexts holding a selected interface.
func Focus(result *analyzer.Result, ids []string) *analyzer.Result {
	if len(ids) == 0 {
		return result
	}
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	keepIface := make(map[string]bool)
	keepType := make(map[string]bool)
	out := &analyzer.Result{ModulePath: result.ModulePath}

	for _, rel := range result.Relations {
		tID := NodeID(rel.Type.PkgName, rel.Type.Name)
		iID := NodeID(rel.Interface.PkgName, rel.Interface.Name)
		if selected[tID] || selected[iID] {
			out.Relations = append(out.Relations, rel)
			keepType[tID] = true
			keepIface[iID] = true
		}
	}

	for _, c := range result.Contexts {
		cID := NodeID(c.Type.PkgName, c.Type.Name)
		iID := NodeID(c.Contract.PkgName, c.Contract.Name)
		if selected[cID] || selected[iID] {
			out.Contexts = append(out.Contexts, c)
			keepIface[iID] = true
		}
	}

	for _, iface := range result.Interfaces {
		id := NodeID(iface.PkgName, iface.Name)
		if selected[id] || keepIface[id] {
			out.Interfaces = append(out.Interfaces, iface)
		}
	}
	kept := make(map[string]bool)
	for _, typ := range result.Types {
		id := NodeID(typ.PkgName, typ.Name)
		if selected[id] || keepType[id] {
			out.Types = append(out.Types, typ)
			kept[typeKey(typ.PkgPath, typ.Name)] = true
		}
	}
	for _, c := range out.Contexts {
		kept[typeKey(c.Type.PkgPath, c.Type.Name)] = true
	}

	for _, f := range result.Findings {
		if recv, _, ok := strings.Cut(f.Subject, "."); ok && kept[typeKey(f.PkgPath, recv)] {
			out.Findings = append(out.Findings, f)
		}
	}
	return out
}
