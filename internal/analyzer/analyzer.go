package analyzer

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

const loadMode = packages.NeedName | packages.NeedTypes | packages.NeedSyntax |
	packages.NeedTypesInfo | packages.NeedImports | packages.NeedModule

// Analyze loads Go packages from dir, finds all interface-implementation
// relationships and the contexts that hold capabilities, then runs the design
// checks over the loaded sources.
func Analyze(ctx context.Context, dir string, opts AnalyzeOptions, logger *slog.Logger) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	cfg := &packages.Config{
		Mode:    loadMode,
		Dir:     absDir,
		Context: ctx,
	}

	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	roots, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	pkgs := roots

	// When including stdlib, also load common stdlib packages that define interfaces
	if opts.IncludeStdlib {
		stdlibPatterns := []string{"fmt", "io", "io/fs", "encoding", "encoding/json", "sort", "hash", "context"}
		stdPkgs, stdErr := packages.Load(cfg, stdlibPatterns...)
		if stdErr != nil {
			logger.Warn("failed to load stdlib packages", "error", stdErr)
		} else {
			pkgs = append(append([]*packages.Package(nil), roots...), stdPkgs...)
		}
	}

	logger.Info("packages loaded", "packages_count", len(pkgs), "patterns", patterns)

	// Log packages with errors but continue
	for _, pkg := range roots {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
	}

	var ifaces []InterfaceDef
	var namedTypes []TypeDef
	seenIfaces := make(map[string]bool) // pkgPath.Name dedup

	collectFromScope := func(scope *types.Scope, pkgPath, pkgName string, fset *token.FileSet) {
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok {
				continue
			}
			named, ok := tn.Type().(*types.Named)
			if !ok {
				continue
			}
			iface, ok := named.Underlying().(*types.Interface)
			if !ok {
				continue
			}
			key := pkgPath + "." + tn.Name()
			if seenIfaces[key] {
				continue
			}
			seenIfaces[key] = true
			ifaces = append(ifaces, InterfaceDef{
				Name:       tn.Name(),
				PkgPath:    pkgPath,
				PkgName:    pkgName,
				Methods:    extractIfaceMethods(iface),
				TypeObj:    iface,
				SourceFile: resolveSourceFile(fset, tn.Pos(), absDir),
			})
			logger.Debug("found interface", "name", tn.Name(), "package", pkgPath, "methods", iface.NumMethods())
		}
	}

	rootSet := make(map[*packages.Package]bool, len(roots))
	for _, pkg := range roots {
		rootSet[pkg] = true
	}

	var modulePath string
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		if modulePath == "" && pkg.Module != nil {
			modulePath = pkg.Module.Path
		}

		scope := pkg.Types.Scope()
		collectFromScope(scope, pkg.PkgPath, pkg.Name, pkg.Fset)

		// Concrete types only come from the packages the caller asked for.
		if rootSet[pkg] {
			for _, name := range scope.Names() {
				tn, ok := scope.Lookup(name).(*types.TypeName)
				if !ok {
					continue
				}
				named, ok := tn.Type().(*types.Named)
				if !ok {
					continue
				}
				if _, ok := named.Underlying().(*types.Interface); ok {
					continue
				}
				methods := extractTypeMethods(named)
				namedTypes = append(namedTypes, TypeDef{
					Name:       tn.Name(),
					PkgPath:    pkg.PkgPath,
					PkgName:    pkg.Name,
					IsStruct:   isStruct(named),
					Methods:    methods,
					TypeObj:    named,
					SourceFile: resolveSourceFile(pkg.Fset, tn.Pos(), absDir),
				})
				logger.Debug("found type", "name", tn.Name(), "package", pkg.PkgPath, "methods", len(methods))
			}
		}

		// Also collect interfaces from imported packages (for stdlib matching)
		for _, imp := range pkg.Imports {
			if imp.Types == nil {
				continue
			}
			collectFromScope(imp.Types.Scope(), imp.PkgPath, imp.Name, imp.Fset)
		}
	}

	// Also add the built-in 'error' interface from the universe scope
	if tn, ok := types.Universe.Lookup("error").(*types.TypeName); ok {
		if iface, ok := tn.Type().Underlying().(*types.Interface); ok && !seenIfaces["builtin.error"] {
			seenIfaces["builtin.error"] = true
			ifaces = append(ifaces, InterfaceDef{
				Name:    "error",
				PkgPath: "builtin",
				PkgName: "builtin",
				Methods: extractIfaceMethods(iface),
				TypeObj: iface,
			})
		}
	}

	logger.Info("types collected", "interfaces", len(ifaces), "types", len(namedTypes))

	var methodSetCache typeutil.MethodSetCache
	relations := matchRelations(namedTypes, ifaces, &methodSetCache, logger)

	result := &Result{
		Interfaces: ifaces,
		Types:      namedTypes,
		Relations:  relations,
		ModulePath: modulePath,
	}
	result.Contexts = detectContexts(result, localPackages(roots))

	checks := opts.Checks
	if checks == nil {
		checks = DefaultChecks()
	}
	prog := newProgram(roots, absDir, result, &methodSetCache)
	for _, c := range checks {
		found := c.Run(prog)
		logger.Debug("check complete", "rule", c.Rule(), "findings", len(found))
		result.Findings = append(result.Findings, found...)
	}
	sortFindings(result.Findings)

	logger.Info("analysis complete",
		"relations", len(result.Relations),
		"contexts", len(result.Contexts),
		"findings", len(result.Findings))

	return result, nil
}

func matchRelations(namedTypes []TypeDef, ifaces []InterfaceDef, cache *typeutil.MethodSetCache, logger *slog.Logger) []Relation {
	var relations []Relation
	for i := range namedTypes {
		t := &namedTypes[i]
		valType := t.TypeObj
		valMethodSet := cache.MethodSet(valType)
		ptrMethodSet := cache.MethodSet(types.NewPointer(valType))

		for j := range ifaces {
			iface := &ifaces[j]

			// Skip empty interfaces
			if iface.TypeObj.NumMethods() == 0 {
				continue
			}

			if types.Implements(valType, iface.TypeObj) || matchesMethodSet(valMethodSet, iface.TypeObj) {
				relations = append(relations, Relation{Type: t, Interface: iface})
				logger.Debug("match found", "type", t.Name, "interface", iface.Name, "via_pointer", false)
			} else if types.Implements(types.NewPointer(valType), iface.TypeObj) || matchesMethodSet(ptrMethodSet, iface.TypeObj) {
				relations = append(relations, Relation{Type: t, Interface: iface, ViaPointer: true})
				logger.Debug("match found", "type", t.Name, "interface", iface.Name, "via_pointer", true)
			}
		}
	}
	return relations
}

func localPackages(roots []*packages.Package) map[string]bool {
	local := make(map[string]bool, len(roots))
	for _, pkg := range roots {
		local[pkg.PkgPath] = true
	}
	return local
}

func sortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Rule < b.Rule
	})
}

func extractIfaceMethods(iface *types.Interface) []MethodSig {
	methods := make([]MethodSig, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		methods[i] = MethodSig{
			Name:      m.Name(),
			Signature: formatSignature(m),
		}
	}
	return methods
}

func extractTypeMethods(named *types.Named) []MethodSig {
	var methods []MethodSig
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		methods = append(methods, MethodSig{
			Name:      m.Name(),
			Signature: formatSignature(m),
		})
	}
	return methods
}

func formatSignature(fn *types.Func) string {
	sig := fn.Type().(*types.Signature)
	var b strings.Builder
	b.WriteString(fn.Name())
	b.WriteString("(")
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(shortType(params.At(i).Type()))
	}
	b.WriteString(")")
	results := sig.Results()
	switch results.Len() {
	case 0:
	case 1:
		b.WriteString(" ")
		b.WriteString(shortType(results.At(0).Type()))
	default:
		b.WriteString(" (")
		for i := 0; i < results.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(shortType(results.At(i).Type()))
		}
		b.WriteString(")")
	}
	return b.String()
}

func shortType(t types.Type) string {
	return types.TypeString(t, func(pkg *types.Package) string {
		return pkg.Name()
	})
}

func isStruct(named *types.Named) bool {
	_, ok := named.Underlying().(*types.Struct)
	return ok
}

// matchesMethodSet reports whether mset has every method of iface with the
// same signature. Interfaces from a separate stdlib load carry their own type
// objects, so signatures that are not identical are compared by their fully
// qualified spelling.
func matchesMethodSet(mset *types.MethodSet, iface *types.Interface) bool {
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		sel := mset.Lookup(m.Pkg(), m.Name())
		if sel == nil {
			return false
		}
		if !sameSignature(sel.Obj().Type(), m.Type()) {
			return false
		}
	}
	return true
}

func sameSignature(a, b types.Type) bool {
	if types.Identical(a, b) {
		return true
	}
	return types.TypeString(a, nil) == types.TypeString(b, nil)
}

// resolveSourceFile resolves a token position to a file path relative to moduleRoot.
func resolveSourceFile(fset *token.FileSet, pos token.Pos, moduleRoot string) string {
	file, _ := resolvePosition(fset, pos, moduleRoot)
	return file
}

func resolvePosition(fset *token.FileSet, pos token.Pos, moduleRoot string) (string, int) {
	if fset == nil || !pos.IsValid() {
		return "", 0
	}
	position := fset.Position(pos)
	if !position.IsValid() || position.Filename == "" {
		return "", 0
	}
	rel, err := filepath.Rel(moduleRoot, position.Filename)
	if err != nil {
		return position.Filename, position.Line
	}
	return rel, position.Line
}
