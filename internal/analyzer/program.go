package analyzer

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// Program is what a Check sees: the loaded packages, the relation graph and
// lookups shared between checks.
type Program struct {
	Packages []*packages.Package
	Result   *Result

	dir        string
	fset       *token.FileSet
	local      map[string]bool
	decls      map[*types.Func]*ast.FuncDecl
	relsByType map[string][]Relation
	methodSets *typeutil.MethodSetCache
}

func newProgram(pkgs []*packages.Package, dir string, result *Result, cache *typeutil.MethodSetCache) *Program {
	p := &Program{
		Packages:   pkgs,
		Result:     result,
		dir:        dir,
		local:      localPackages(pkgs),
		decls:      make(map[*types.Func]*ast.FuncDecl),
		relsByType: make(map[string][]Relation),
		methodSets: cache,
	}
	for _, pkg := range pkgs {
		if p.fset == nil {
			p.fset = pkg.Fset
		}
		if pkg.TypesInfo == nil {
			continue
		}
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				fd, ok := decl.(*ast.FuncDecl)
				if !ok {
					continue
				}
				if fn, ok := pkg.TypesInfo.Defs[fd.Name].(*types.Func); ok {
					p.decls[fn] = fd
				}
			}
		}
	}
	for _, rel := range result.Relations {
		key := rel.Type.PkgPath + "." + rel.Type.Name
		p.relsByType[key] = append(p.relsByType[key], rel)
	}
	return p
}

// IsLocal reports whether pkgPath was one of the analyzed packages.
func (p *Program) IsLocal(pkgPath string) bool { return p.local[pkgPath] }

// Position maps pos to a module-relative file and a line.
func (p *Program) Position(pos token.Pos) (string, int) {
	return resolvePosition(p.fset, pos, p.dir)
}

// FuncDecl returns the declaration of fn if it lives in an analyzed package.
func (p *Program) FuncDecl(fn *types.Func) *ast.FuncDecl {
	return p.decls[fn.Origin()]
}

// RelationsOf returns the interfaces implemented by the named type.
func (p *Program) RelationsOf(named *types.Named) []Relation {
	obj := named.Obj()
	if obj.Pkg() == nil {
		return nil
	}
	return p.relsByType[obj.Pkg().Path()+"."+obj.Name()]
}

func (p *Program) finding(rule Rule, pkgPath, subject string, pos token.Pos, msg string) Finding {
	file, line := p.Position(pos)
	return Finding{
		Rule:    rule,
		PkgPath: pkgPath,
		Subject: subject,
		File:    file,
		Line:    line,
		Message: msg,
	}
}
