package istr

// Builder consumes the pieces of an interpolated string as discrete events:
// one Literal call per fragment and one Value call per embedded value,
// interleaved in document order. This lets a downstream tree or document
// builder incorporate the template's pieces as distinct nodes rather than as
// one flattened string. Values are delivered raw: deferred callables are
// not invoked; an adapter that wants slot semantics applies WriteSlot.
type Builder interface {
	Literal(text string) error
	Value(v any) error
}

// Build emits s through b, one event per fragment and one per value, in
// document order. The first event error aborts the emission and is returned.
func (s *String) Build(b Builder) error {
	for i, frag := range s.fragments {
		if err := b.Literal(frag); err != nil {
			return err
		}
		if i < len(s.values) {
			if err := b.Value(s.values[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
