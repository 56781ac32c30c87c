// Package lsp shows the substitution principle: a value of a derived type must
// work wherever its base is expected, without surprising the caller.
package lsp
