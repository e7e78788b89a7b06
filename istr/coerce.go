package istr

import (
	"fmt"
	"io"
)

// nullLiteral is the configured textual form for nil values. It follows the
// null literal of the dynamic hosts this type models rather than Go's
// "<nil>".
const nullLiteral = "null"

// WriteValue writes the textual form of an arbitrary value to w. This is the
// plain value-to-text coercion: deferred callables are not honored here (see
// WriteSlot). nil renders as the literal "null"; strings and byte slices are
// written as-is; io.WriterTo values (which includes nested *String
// instances) write themselves; everything else renders through fmt, which
// picks up fmt.Stringer and error implementations.
func WriteValue(w io.Writer, v any) error {
	switch tv := v.(type) {
	case nil:
		_, err := io.WriteString(w, nullLiteral)
		return err
	case string:
		_, err := io.WriteString(w, tv)
		return err
	case []byte:
		_, err := w.Write(tv)
		return err
	case io.WriterTo:
		_, err := tv.WriteTo(w)
		return err
	default:
		_, err := fmt.Fprintf(w, "%v", tv)
		return err
	}
}
