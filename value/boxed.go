package value

import (
	"fmt"
	"io"
)

// BoxedSymbol is an object wrapper around a symbol. Boxes have identity,
// the wrapped symbol stays the same token.
type BoxedSymbol struct {
	sym *Symbol
}

// Unbox returns the wrapped symbol.
func (b *BoxedSymbol) Unbox() *Symbol {
	return b.sym
}

// PrettyPrint writes a pretty-printed representation of the box.
func (b *BoxedSymbol) PrettyPrint(prefix string, w io.Writer) {
	fmt.Fprintf(w, "%s%s\n", prefix, b.String())
}

// String returns a string representation of the box.
func (b *BoxedSymbol) String() string {
	return "[Symbol: " + b.sym.String() + "]"
}

// Box wraps sym into a new box.
func Box(sym *Symbol) *BoxedSymbol {
	if sym == nil {
		panic("value: boxing a nil symbol")
	}
	return &BoxedSymbol{sym: sym}
}
