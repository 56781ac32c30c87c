package analyzer

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/packages"
)

// Check inspects a loaded program for one kind of design smell.
type Check interface {
	Rule() Rule
	Run(p *Program) []Finding
}

// DefaultChecks returns every built-in check.
func DefaultChecks() []Check {
	return []Check{
		IdentityBranchCheck{},
		ForcedNoopCheck{},
		InternalConstructionCheck{},
		ConcreteDependencyCheck{},
	}
}

// eachFunc calls fn for every function or method with a body in the analyzed packages.
func eachFunc(p *Program, fn func(pkg *packages.Package, decl *ast.FuncDecl)) {
	for _, pkg := range p.Packages {
		if pkg.TypesInfo == nil {
			continue
		}
		insp := inspector.New(pkg.Syntax)
		insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
			decl := n.(*ast.FuncDecl)
			if decl.Body != nil {
				fn(pkg, decl)
			}
		})
	}
}

// IdentityBranchCheck reports code that inspects the concrete type behind an
// interface value: type switches and type assertions naming a concrete type.
// Assertions on error values are left alone.
type IdentityBranchCheck struct{}

func (IdentityBranchCheck) Rule() Rule { return RuleIdentityBranch }

func (c IdentityBranchCheck) Run(p *Program) []Finding {
	var findings []Finding
	eachFunc(p, func(pkg *packages.Package, decl *ast.FuncDecl) {
		info := pkg.TypesInfo
		subject := funcSubject(decl)
		qual := types.RelativeTo(pkg.Types)

		ast.Inspect(decl.Body, func(n ast.Node) bool {
			switch s := n.(type) {
			case *ast.TypeSwitchStmt:
				x := typeSwitchSubject(s)
				if x == nil || !isBranchableInterface(info.TypeOf(x)) {
					return true
				}
				var names []string
				for _, stmt := range s.Body.List {
					for _, e := range stmt.(*ast.CaseClause).List {
						if t := info.TypeOf(e); isConcreteCase(e, t) {
							names = append(names, types.TypeString(t, qual))
						}
					}
				}
				if len(names) > 0 {
					msg := fmt.Sprintf("%s switches on the concrete type of %s (%s)",
						subject, types.ExprString(x), strings.Join(names, ", "))
					findings = append(findings, p.finding(RuleIdentityBranch, pkg.PkgPath, subject, s.Pos(), msg))
				}
			case *ast.TypeAssertExpr:
				// x.(type) inside a type switch has no Type and is handled above.
				if s.Type == nil || !isBranchableInterface(info.TypeOf(s.X)) {
					return true
				}
				if t := info.TypeOf(s.Type); isConcreteCase(s.Type, t) {
					msg := fmt.Sprintf("%s asserts %s to concrete %s",
						subject, types.ExprString(s.X), types.TypeString(t, qual))
					findings = append(findings, p.finding(RuleIdentityBranch, pkg.PkgPath, subject, s.Pos(), msg))
				}
			}
			return true
		})
	})
	return findings
}

func typeSwitchSubject(s *ast.TypeSwitchStmt) ast.Expr {
	var e ast.Expr
	switch a := s.Assign.(type) {
	case *ast.ExprStmt:
		e = a.X
	case *ast.AssignStmt:
		if len(a.Rhs) == 1 {
			e = a.Rhs[0]
		}
	}
	if ta, ok := ast.Unparen(e).(*ast.TypeAssertExpr); ok {
		return ta.X
	}
	return nil
}

func isBranchableInterface(t types.Type) bool {
	if t == nil {
		return false
	}
	if _, ok := t.Underlying().(*types.Interface); !ok {
		return false
	}
	return !types.Identical(t, types.Universe.Lookup("error").Type())
}

func isConcreteCase(e ast.Expr, t types.Type) bool {
	if id, ok := e.(*ast.Ident); ok && id.Name == "nil" {
		return false
	}
	if t == nil {
		return false
	}
	_, iface := t.Underlying().(*types.Interface)
	return !iface
}

// ForcedNoopCheck reports methods that exist only to satisfy a contract: an
// empty body, or a single return of zero values. When the type already
// satisfies a narrower interface without that method, it is suggested.
type ForcedNoopCheck struct{}

func (ForcedNoopCheck) Rule() Rule { return RuleForcedNoop }

func (c ForcedNoopCheck) Run(p *Program) []Finding {
	type hit struct {
		fn        *types.Func
		decl      *ast.FuncDecl
		typ       *TypeDef
		contracts []*InterfaceDef
	}
	var order []*types.Func
	hits := make(map[*types.Func]*hit)

	for _, rel := range p.Result.Relations {
		if !p.IsLocal(rel.Interface.PkgPath) || !p.IsLocal(rel.Type.PkgPath) {
			continue
		}
		var recv types.Type = rel.Type.TypeObj
		if rel.ViaPointer {
			recv = types.NewPointer(recv)
		}
		mset := p.methodSets.MethodSet(recv)
		iface := rel.Interface.TypeObj
		for i := 0; i < iface.NumMethods(); i++ {
			m := iface.Method(i)
			sel := mset.Lookup(m.Pkg(), m.Name())
			if sel == nil {
				continue
			}
			fn, ok := sel.Obj().(*types.Func)
			if !ok {
				continue
			}
			decl := p.FuncDecl(fn)
			if decl == nil || decl.Body == nil || !isTrivialBody(decl.Body) {
				continue
			}
			h, ok := hits[fn]
			if !ok {
				h = &hit{fn: fn, decl: decl, typ: rel.Type}
				hits[fn] = h
				order = append(order, fn)
			}
			h.contracts = append(h.contracts, rel.Interface)
		}
	}

	var findings []Finding
	for _, fn := range order {
		h := hits[fn]
		sort.Slice(h.contracts, func(i, j int) bool { return h.contracts[i].Name < h.contracts[j].Name })
		names := make([]string, len(h.contracts))
		for i, ct := range h.contracts {
			names[i] = ct.Name
		}
		subject := h.typ.Name + "." + fn.Name()
		msg := fmt.Sprintf("%s does nothing but is required by %s", subject, strings.Join(names, ", "))
		f := p.finding(RuleForcedNoop, h.typ.PkgPath, subject, h.decl.Pos(), msg)
		if narrow := narrowerContract(p, h.typ, h.contracts, fn.Name()); narrow != nil {
			f.Suggestion = fmt.Sprintf("%s already satisfies the narrower %s", h.typ.Name, narrow.Name)
		}
		findings = append(findings, f)
	}
	return findings
}

// narrowerContract finds a local interface implemented by typ whose methods
// are a subset of one of the contracts but which does not include method.
// The largest such interface wins; ties break on name.
func narrowerContract(p *Program, typ *TypeDef, contracts []*InterfaceDef, method string) *InterfaceDef {
	var best *InterfaceDef
	for _, rel := range p.RelationsOf(typ.TypeObj) {
		cand := rel.Interface
		if !p.IsLocal(cand.PkgPath) || hasMethod(cand, method) {
			continue
		}
		for _, ct := range contracts {
			if cand == ct || !methodsSubset(cand, ct) {
				continue
			}
			if best == nil || len(cand.Methods) > len(best.Methods) ||
				(len(cand.Methods) == len(best.Methods) && cand.Name < best.Name) {
				best = cand
			}
		}
	}
	return best
}

func hasMethod(iface *InterfaceDef, name string) bool {
	for _, m := range iface.Methods {
		if m.Name == name {
			return true
		}
	}
	return false
}

func methodsSubset(sub, super *InterfaceDef) bool {
	for _, m := range sub.Methods {
		if !hasMethod(super, m.Name) {
			return false
		}
	}
	return true
}

func isTrivialBody(body *ast.BlockStmt) bool {
	switch len(body.List) {
	case 0:
		return true
	case 1:
		ret, ok := body.List[0].(*ast.ReturnStmt)
		if !ok {
			return false
		}
		for _, r := range ret.Results {
			if !isZeroLiteral(r) {
				return false
			}
		}
		return true
	}
	return false
}

func isZeroLiteral(e ast.Expr) bool {
	switch v := ast.Unparen(e).(type) {
	case *ast.Ident:
		return v.Name == "nil" || v.Name == "false"
	case *ast.BasicLit:
		switch v.Kind {
		case token.STRING:
			return v.Value == `""` || v.Value == "``"
		case token.INT, token.FLOAT:
			return strings.Trim(v.Value, "0.") == ""
		}
	case *ast.CompositeLit:
		return len(v.Elts) == 0
	}
	return false
}

// InternalConstructionCheck reports constructors that build their own
// collaborator and store it in the struct they return, instead of receiving it.
// A collaborator is a local type that implements a local interface.
type InternalConstructionCheck struct{}

func (InternalConstructionCheck) Rule() Rule { return RuleInternalConstruction }

func (c InternalConstructionCheck) Run(p *Program) []Finding {
	var findings []Finding
	eachFunc(p, func(pkg *packages.Package, decl *ast.FuncDecl) {
		info := pkg.TypesInfo
		fn, ok := info.Defs[decl.Name].(*types.Func)
		if !ok {
			return
		}
		owners := resultStructs(p, fn.Type().(*types.Signature))
		if len(owners) == 0 {
			return
		}
		subject := funcSubject(decl)
		qual := types.RelativeTo(pkg.Types)

		report := func(owner *types.Named, field string, value ast.Expr, built *types.Named) {
			msg := fmt.Sprintf("%s constructs %s for %s.%s",
				subject, types.TypeString(types.Unalias(info.TypeOf(value)), qual), owner.Obj().Name(), field)
			f := p.finding(RuleInternalConstruction, pkg.PkgPath, subject, value.Pos(), msg)
			if abs := abstractionFor(p, built); abs != nil {
				f.Suggestion = fmt.Sprintf("accept a %s parameter instead", abs.Name)
			}
			findings = append(findings, f)
		}

		ast.Inspect(decl.Body, func(n ast.Node) bool {
			switch s := n.(type) {
			case *ast.CompositeLit:
				owner := namedOf(info.TypeOf(s))
				if owner == nil || !owners[owner] {
					return true
				}
				for _, elt := range s.Elts {
					kv, ok := elt.(*ast.KeyValueExpr)
					if !ok {
						continue
					}
					key, ok := kv.Key.(*ast.Ident)
					if !ok {
						continue
					}
					if built := constructed(p, info, kv.Value, owner); built != nil {
						report(owner, key.Name, kv.Value, built)
					}
				}
			case *ast.AssignStmt:
				if len(s.Lhs) != len(s.Rhs) {
					return true
				}
				for i, lhs := range s.Lhs {
					sel, ok := lhs.(*ast.SelectorExpr)
					if !ok {
						continue
					}
					owner := namedOf(info.TypeOf(sel.X))
					if owner == nil || !owners[owner] {
						continue
					}
					if built := constructed(p, info, s.Rhs[i], owner); built != nil {
						report(owner, sel.Sel.Name, s.Rhs[i], built)
					}
				}
			}
			return true
		})
	})
	return findings
}

// resultStructs returns the local struct types a function returns, by value or pointer.
func resultStructs(p *Program, sig *types.Signature) map[*types.Named]bool {
	owners := make(map[*types.Named]bool)
	for i := 0; i < sig.Results().Len(); i++ {
		named := namedOf(sig.Results().At(i).Type())
		if named == nil || named.Obj().Pkg() == nil || !p.IsLocal(named.Obj().Pkg().Path()) {
			continue
		}
		if _, ok := named.Underlying().(*types.Struct); ok {
			owners[named] = true
		}
	}
	return owners
}

// constructed reports the collaborator type built by e: T{...}, &T{...} or NewT(...).
func constructed(p *Program, info *types.Info, e ast.Expr, owner *types.Named) *types.Named {
	e = ast.Unparen(e)
	switch v := e.(type) {
	case *ast.UnaryExpr:
		if v.Op != token.AND {
			return nil
		}
		if _, ok := ast.Unparen(v.X).(*ast.CompositeLit); !ok {
			return nil
		}
	case *ast.CompositeLit:
	case *ast.CallExpr:
		if !strings.HasPrefix(calleeName(v.Fun), "New") {
			return nil
		}
	default:
		return nil
	}
	built := namedOf(info.TypeOf(e))
	if built == nil || built == owner || built.Obj().Pkg() == nil || !p.IsLocal(built.Obj().Pkg().Path()) {
		return nil
	}
	if len(p.RelationsOf(built)) == 0 {
		return nil
	}
	return built
}

func calleeName(fun ast.Expr) string {
	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	}
	return ""
}

// ConcreteDependencyCheck reports struct fields typed as a concrete local type
// when an interface in the same package already describes it. Embedded fields
// are composition, not dependencies, and are skipped.
type ConcreteDependencyCheck struct{}

func (ConcreteDependencyCheck) Rule() Rule { return RuleConcreteDependency }

func (c ConcreteDependencyCheck) Run(p *Program) []Finding {
	var findings []Finding
	for i := range p.Result.Types {
		t := &p.Result.Types[i]
		if !p.IsLocal(t.PkgPath) {
			continue
		}
		st, ok := t.TypeObj.Underlying().(*types.Struct)
		if !ok {
			continue
		}
		for j := 0; j < st.NumFields(); j++ {
			field := st.Field(j)
			if field.Embedded() {
				continue
			}
			dep := namedOf(field.Type())
			if dep == nil || dep.Obj().Pkg() == nil || !p.IsLocal(dep.Obj().Pkg().Path()) {
				continue
			}
			if _, ok := dep.Underlying().(*types.Interface); ok {
				continue
			}
			abs := abstractionFor(p, dep, t.PkgPath)
			if abs == nil {
				continue
			}
			subject := t.Name + "." + field.Name()
			msg := fmt.Sprintf("%s depends on concrete %s", subject,
				types.TypeString(field.Type(), types.RelativeTo(t.TypeObj.Obj().Pkg())))
			f := p.finding(RuleConcreteDependency, t.PkgPath, subject, field.Pos(), msg)
			f.Suggestion = fmt.Sprintf("depend on %s instead", abs.Name)
			findings = append(findings, f)
		}
	}
	return findings
}

// abstractionFor returns a local interface implemented by named, declared in
// named's own package or in one of the extra packages. Widest contract wins.
func abstractionFor(p *Program, named *types.Named, extraPkgs ...string) *InterfaceDef {
	pkgs := map[string]bool{named.Obj().Pkg().Path(): true}
	for _, e := range extraPkgs {
		pkgs[e] = true
	}
	var best *InterfaceDef
	for _, rel := range p.RelationsOf(named) {
		iface := rel.Interface
		if !p.IsLocal(iface.PkgPath) || !pkgs[iface.PkgPath] {
			continue
		}
		if best == nil || len(iface.Methods) > len(best.Methods) ||
			(len(iface.Methods) == len(best.Methods) && iface.Name < best.Name) {
			best = iface
		}
	}
	return best
}

// namedOf strips aliases and one level of pointer and returns the named type, if any.
func namedOf(t types.Type) *types.Named {
	if t == nil {
		return nil
	}
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}
	named, _ := t.(*types.Named)
	return named
}

// funcSubject names a declaration as Recv.Method or Func.
func funcSubject(decl *ast.FuncDecl) string {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return decl.Name.Name
	}
	return recvName(decl.Recv.List[0].Type) + "." + decl.Name.Name
}

func recvName(e ast.Expr) string {
	switch v := e.(type) {
	case *ast.StarExpr:
		return recvName(v.X)
	case *ast.IndexExpr:
		return recvName(v.X)
	case *ast.IndexListExpr:
		return recvName(v.X)
	case *ast.ParenExpr:
		return recvName(v.X)
	case *ast.Ident:
		return v.Name
	}
	return "?"
}
