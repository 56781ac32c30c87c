package lsp

import "io"

// Demonstrate prints the name of a Base and of a Derived through the same function.
func Demonstrate(w io.Writer) error {
	for _, n := range []Namer{Base{}, Derived{}} {
		if err := PrintName(w, n); err != nil {
			return err
		}
	}
	return nil
}
