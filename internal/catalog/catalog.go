// Package catalog lists the principle demonstrations and runs them in order.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/olehluchkiv/gosolid/internal/principles/dip"
	"github.com/olehluchkiv/gosolid/internal/principles/isp"
	"github.com/olehluchkiv/gosolid/internal/principles/lsp"
	"github.com/olehluchkiv/gosolid/internal/principles/ocp"
	"github.com/olehluchkiv/gosolid/internal/principles/srp"
)

// ErrUnknownPrinciple is returned by Lookup for codes that name no demonstration.
var ErrUnknownPrinciple = errors.New("unknown principle")

// Principle identifies one of the five design guidelines.
type Principle int

const (
	SingleResponsibility Principle = iota
	OpenClosed
	Substitution
	InterfaceSegregation
	DependencyInversion
)

var principleNames = [...]struct{ code, title string }{
	SingleResponsibility: {"srp", "Single responsibility"},
	OpenClosed:           {"ocp", "Open/closed"},
	Substitution:         {"lsp", "Substitutability"},
	InterfaceSegregation: {"isp", "Interface segregation"},
	DependencyInversion:  {"dip", "Dependency inversion"},
}

// Code returns the short lower-case code, e.g. "ocp".
func (p Principle) Code() string {
	if p < 0 || int(p) >= len(principleNames) {
		return fmt.Sprintf("principle(%d)", int(p))
	}
	return principleNames[p].code
}

func (p Principle) String() string {
	if p < 0 || int(p) >= len(principleNames) {
		return fmt.Sprintf("Principle(%d)", int(p))
	}
	return principleNames[p].title
}

// Demonstration is one runnable example.
type Demonstration struct {
	Principle Principle
	Title     string
	Run       func(w io.Writer) error
}

// All returns the demonstrations in canonical order.
func All() []Demonstration {
	return []Demonstration{
		{Principle: SingleResponsibility, Title: "Order split into order, repository and viewer", Run: srp.Demonstrate},
		{Principle: OpenClosed, Title: "Payroll over Remunerable", Run: ocp.Demonstrate},
		{Principle: Substitution, Title: "Base and derived names", Run: lsp.Demonstrate},
		{Principle: InterfaceSegregation, Title: "Birds that do and don't fly", Run: isp.Demonstrate},
		{Principle: DependencyInversion, Title: "Password reminder over DBConnection", Run: dip.Demonstrate},
	}
}

// Lookup finds a demonstration by code. Matching is case-insensitive.
func Lookup(code string) (Demonstration, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, d := range All() {
		if d.Principle.Code() == code {
			return d, nil
		}
	}
	return Demonstration{}, fmt.Errorf("%q: %w", code, ErrUnknownPrinciple)
}

// Select resolves codes to demonstrations, keeping the given order.
// No codes selects everything.
func Select(codes []string) ([]Demonstration, error) {
	if len(codes) == 0 {
		return All(), nil
	}
	demos := make([]Demonstration, 0, len(codes))
	for _, c := range codes {
		d, err := Lookup(c)
		if err != nil {
			return nil, err
		}
		demos = append(demos, d)
	}
	return demos, nil
}

// Run writes a header for each demonstration and runs it. It stops at the
// first failure or when ctx is cancelled.
func Run(ctx context.Context, w io.Writer, demos []Demonstration, logger *slog.Logger) error {
	logger = logger.With("component", "catalog", "run_id", uuid.NewString())
	logger.Info("running demonstrations", "count", len(demos))

	for i, d := range demos {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "== %s (%s): %s\n", d.Principle, d.Principle.Code(), d.Title); err != nil {
			return err
		}
		logger.Debug("demonstration started", "principle", d.Principle.Code())
		if err := d.Run(w); err != nil {
			logger.Error("demonstration failed", "principle", d.Principle.Code(), "error", err)
			return fmt.Errorf("%s: %w", d.Principle.Code(), err)
		}
	}

	logger.Info("demonstrations complete")
	return nil
}
