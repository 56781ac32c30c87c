package lsp

import (
	"fmt"
	"io"
)

// Namer reports a display name.
type Namer interface {
	Name() string
}

// Base is the original implementation.
type Base struct{}

func (Base) Name() string { return "Class A" }

// Derived embeds Base and overrides Name. Callers of Namer cannot tell the
// difference beyond the returned value.
type Derived struct {
	Base
}

func (Derived) Name() string { return "Class B" }

// PrintName writes n's name on its own line.
func PrintName(w io.Writer, n Namer) error {
	_, err := fmt.Fprintln(w, n.Name())
	return err
}
