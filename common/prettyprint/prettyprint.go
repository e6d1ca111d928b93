// Package prettyprint defines the interface of values that know how to
// render themselves in a human readable form.
package prettyprint

import (
	"io"
	"strings"
)

// PrettyPrinter is an interface for types that know how to pretty
// print themselves (e.g., to be displayed in a debug log).
type PrettyPrinter interface {
	// PrettyPrint writes a pretty-printed representation of the type
	// to the given writer.
	PrettyPrint(prefix string, w io.Writer)
}

// Sprint returns the pretty-printed representation of p without the
// trailing newline.
func Sprint(p PrettyPrinter) string {
	var b strings.Builder
	p.PrettyPrint("", &b)
	return strings.TrimSuffix(b.String(), "\n")
}
