package analyzer

import "go/types"

// detectContexts finds struct types that hold a capability: a field whose type
// is a non-empty named interface declared in one of the local packages.
func detectContexts(result *Result, local map[string]bool) []ContextDef {
	byKey := make(map[string]*InterfaceDef, len(result.Interfaces))
	for i := range result.Interfaces {
		iface := &result.Interfaces[i]
		byKey[iface.PkgPath+"."+iface.Name] = iface
	}

	var contexts []ContextDef
	for i := range result.Types {
		t := &result.Types[i]
		st, ok := t.TypeObj.Underlying().(*types.Struct)
		if !ok {
			continue
		}
		for j := 0; j < st.NumFields(); j++ {
			f := st.Field(j)
			named, ok := types.Unalias(f.Type()).(*types.Named)
			if !ok || named.Obj().Pkg() == nil {
				continue
			}
			if !local[named.Obj().Pkg().Path()] {
				continue
			}
			iface, ok := byKey[named.Obj().Pkg().Path()+"."+named.Obj().Name()]
			if !ok || iface.TypeObj.NumMethods() == 0 {
				continue
			}
			contexts = append(contexts, ContextDef{Type: t, Field: f.Name(), Contract: iface})
		}
	}
	return contexts
}
