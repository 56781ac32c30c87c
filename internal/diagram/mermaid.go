package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olehluchkiv/gosolid/internal/analyzer"
)

// DiagramOptions controls Mermaid diagram generation.
type DiagramOptions struct {
	MaxMethodsPerBox int  // default 5, 0 means unlimited
	IncludeInit      bool // include %%{init:}%% directive (for standalone .mmd files)
	MarkSmells       bool // style types that carry findings
}

// DefaultDiagramOptions returns sensible defaults for diagram generation.
func DefaultDiagramOptions() DiagramOptions {
	return DiagramOptions{MaxMethodsPerBox: 5, MarkSmells: true}
}

// GenerateMermaid produces a Mermaid classDiagram string from analysis
// results: capability interfaces, the variants that implement them, and the
// contexts that hold them.
func GenerateMermaid(result *analyzer.Result, opts DiagramOptions) string {
	var b strings.Builder

	ifaces := sortedInterfaces(result.Interfaces)
	typs := sortedTypes(result.Types)
	rels := sortedRelations(result.Relations)
	ctxs := sortedContexts(result.Contexts)

	// Context structs that implement nothing are not in Types; draw them too.
	seenTypes := make(map[string]bool, len(typs))
	for _, t := range typs {
		seenTypes[typeKey(t.PkgPath, t.Name)] = true
	}
	for _, c := range ctxs {
		key := typeKey(c.Type.PkgPath, c.Type.Name)
		if !seenTypes[key] {
			seenTypes[key] = true
			typs = append(typs, *c.Type)
		}
	}
	typs = sortedTypes(typs)

	smelly := smellyTypes(result.Findings)
	hasNodes := len(ifaces) > 0 || len(typs) > 0

	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}%%\n")
	}
	b.WriteString("classDiagram")
	if hasNodes {
		b.WriteString("\n")
		b.WriteString("    direction LR\n")
		b.WriteString("    classDef interfaceStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold\n")
		b.WriteString("    classDef implStyle fill:#4a9c6d,stroke:#357a50,color:#fff,stroke-width:2px")
		if opts.MarkSmells {
			b.WriteString("\n    classDef smellStyle fill:#c0392b,stroke:#922b21,color:#fff,stroke-width:2px")
		}
	}

	for _, iface := range ifaces {
		b.WriteString("\n")
		writeInterfaceBlock(&b, iface, opts)
	}

	if len(ifaces) > 0 && len(typs) > 0 {
		b.WriteString("\n")
	}
	for _, typ := range typs {
		b.WriteString("\n")
		writeTypeBlock(&b, typ)
	}

	if hasNodes && (len(rels) > 0 || len(ctxs) > 0) {
		b.WriteString("\n")
	}
	for _, rel := range rels {
		b.WriteString("\n")
		writeRelation(&b, rel)
	}
	for _, c := range ctxs {
		b.WriteString("\n")
		writeUsage(&b, c)
	}

	if hasNodes {
		b.WriteString("\n")
		for _, iface := range ifaces {
			b.WriteString(fmt.Sprintf("\n    cssClass \"%s\" interfaceStyle", NodeID(iface.PkgName, iface.Name)))
		}
		for _, typ := range typs {
			style := "implStyle"
			if opts.MarkSmells && smelly[typeKey(typ.PkgPath, typ.Name)] {
				style = "smellStyle"
			}
			b.WriteString(fmt.Sprintf("\n    cssClass \"%s\" %s", NodeID(typ.PkgName, typ.Name), style))
		}
	}

	return b.String()
}

// SanitizeSignature removes characters in method signatures that break Mermaid syntax.
// Mermaid treats {}, <>, and ~ as special in class diagram labels.
func SanitizeSignature(sig string) string {
	sig = strings.ReplaceAll(sig, "<-chan", "chan")
	// "interface" is reserved in browser Mermaid.js (<<interface>> tag parsing).
	sig = strings.ReplaceAll(sig, "interface{}", "any")
	sig = strings.ReplaceAll(sig, "{}", "")
	return sig
}

// sanitizeID replaces /, ., - with _ in node identifiers.
func sanitizeID(s string) string {
	r := strings.NewReplacer("/", "_", ".", "_", "-", "_")
	return r.Replace(s)
}

// NodeID builds a sanitized node ID from pkgName and type/interface name.
func NodeID(pkgName, name string) string {
	return sanitizeID(pkgName + "_" + name)
}

func typeKey(pkgPath, name string) string {
	return pkgPath + "." + name
}

// smellyTypes returns the keys of types named as the receiver part of a finding subject.
func smellyTypes(findings []analyzer.Finding) map[string]bool {
	out := make(map[string]bool)
	for _, f := range findings {
		if recv, _, ok := strings.Cut(f.Subject, "."); ok {
			out[typeKey(f.PkgPath, recv)] = true
		}
	}
	return out
}

func sortedInterfaces(in []analyzer.InterfaceDef) []analyzer.InterfaceDef {
	out := make([]analyzer.InterfaceDef, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool {
		if out[i].PkgName != out[j].PkgName {
			return out[i].PkgName < out[j].PkgName
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortedTypes(in []analyzer.TypeDef) []analyzer.TypeDef {
	out := make([]analyzer.TypeDef, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool {
		if out[i].PkgName != out[j].PkgName {
			return out[i].PkgName < out[j].PkgName
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortedRelations(in []analyzer.Relation) []analyzer.Relation {
	out := make([]analyzer.Relation, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool {
		ti := NodeID(out[i].Type.PkgName, out[i].Type.Name)
		tj := NodeID(out[j].Type.PkgName, out[j].Type.Name)
		if ti != tj {
			return ti < tj
		}
		return NodeID(out[i].Interface.PkgName, out[i].Interface.Name) < NodeID(out[j].Interface.PkgName, out[j].Interface.Name)
	})
	return out
}

func sortedContexts(in []analyzer.ContextDef) []analyzer.ContextDef {
	out := make([]analyzer.ContextDef, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool {
		ci := NodeID(out[i].Type.PkgName, out[i].Type.Name)
		cj := NodeID(out[j].Type.PkgName, out[j].Type.Name)
		if ci != cj {
			return ci < cj
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// writeInterfaceBlock writes a Mermaid class block for an interface.
func writeInterfaceBlock(b *strings.Builder, iface analyzer.InterfaceDef, opts DiagramOptions) {
	b.WriteString(fmt.Sprintf("    class %s {\n", NodeID(iface.PkgName, iface.Name)))
	b.WriteString("        <<interface>>\n")
	if iface.SourceFile != "" {
		b.WriteString("        %% file: " + iface.SourceFile + "\n")
	}
	writeMethodLines(b, iface.Methods, opts)
	b.WriteString("    }")
}

// writeTypeBlock writes a Mermaid class block for a concrete type. Methods
// are omitted; they are listed on the interfaces the type implements.
func writeTypeBlock(b *strings.Builder, typ analyzer.TypeDef) {
	b.WriteString(fmt.Sprintf("    class %s {\n", NodeID(typ.PkgName, typ.Name)))
	if typ.SourceFile != "" {
		b.WriteString("        %% file: " + typ.SourceFile + "\n")
	}
	b.WriteString("    }")
}

func writeMethodLines(b *strings.Builder, methods []analyzer.MethodSig, opts DiagramOptions) {
	limit := len(methods)
	truncated := false
	if opts.MaxMethodsPerBox > 0 && limit > opts.MaxMethodsPerBox {
		limit = opts.MaxMethodsPerBox
		truncated = true
	}
	for i := 0; i < limit; i++ {
		b.WriteString(fmt.Sprintf("        +%s\n", SanitizeSignature(methods[i].Signature)))
	}
	if truncated {
		b.WriteString("        ...\n")
	}
}

func writeRelation(b *strings.Builder, rel analyzer.Relation) {
	b.WriteString(fmt.Sprintf("    %s --|> %s",
		NodeID(rel.Type.PkgName, rel.Type.Name),
		NodeID(rel.Interface.PkgName, rel.Interface.Name)))
}

// writeUsage draws a context holding its capability through a field.
func writeUsage(b *strings.Builder, c analyzer.ContextDef) {
	b.WriteString(fmt.Sprintf("    %s --> %s : %s",
		NodeID(c.Type.PkgName, c.Type.Name),
		NodeID(c.Contract.PkgName, c.Contract.Name),
		c.Field))
}
