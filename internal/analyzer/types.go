package analyzer

import (
	"fmt"
	"go/types"
)

// InterfaceDef represents a discovered Go interface, a capability contract.
type InterfaceDef struct {
	Name       string
	PkgPath    string
	PkgName    string
	Methods    []MethodSig
	TypeObj    *types.Interface
	SourceFile string
}

// TypeDef represents a discovered named Go type.
type TypeDef struct {
	Name       string
	PkgPath    string
	PkgName    string
	IsStruct   bool
	Methods    []MethodSig
	TypeObj    *types.Named
	SourceFile string
}

// MethodSig captures a method name and its signature string.
type MethodSig struct {
	Name      string
	Signature string
}

// Relation captures that a concrete type implements an interface.
type Relation struct {
	Type       *TypeDef
	Interface  *InterfaceDef
	ViaPointer bool // true if only *T (not T) satisfies the interface
}

// ContextDef is a struct that holds a capability through an interface-typed field.
type ContextDef struct {
	Type     *TypeDef
	Field    string
	Contract *InterfaceDef
}

// Rule names a design check.
type Rule string

const (
	RuleIdentityBranch       Rule = "identity-branch"
	RuleForcedNoop           Rule = "forced-noop"
	RuleInternalConstruction Rule = "internal-construction"
	RuleConcreteDependency   Rule = "concrete-dependency"
)

// Finding is one design smell located in source.
type Finding struct {
	Rule       Rule
	PkgPath    string
	Subject    string // e.g. "LegacyPayroll.Calculate" or "BirdView.bird"
	File       string // relative to the analyzed module root when possible
	Line       int
	Message    string
	Suggestion string
}

func (f Finding) String() string {
	s := fmt.Sprintf("%s:%d: [%s] %s", f.File, f.Line, f.Rule, f.Message)
	if f.Suggestion != "" {
		s += " (" + f.Suggestion + ")"
	}
	return s
}

// Result holds the complete analysis output.
type Result struct {
	Interfaces []InterfaceDef
	Types      []TypeDef
	Relations  []Relation
	Contexts   []ContextDef
	Findings   []Finding
	ModulePath string // module path from go.mod (e.g. "github.com/user/repo")
}

// AnalyzeOptions controls analysis behavior.
type AnalyzeOptions struct {
	Patterns          []string // package patterns relative to dir; default "./..."
	Filter            string   // package path prefix filter
	IncludeStdlib     bool
	IncludeUnexported bool
	Checks            []Check // nil runs DefaultChecks
}
