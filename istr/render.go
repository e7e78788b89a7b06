package istr

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// ErrCallableArity reports a value slot holding a callable that takes two or
// more parameters. Such a callable can be satisfied neither by zero-argument
// invocation nor by sink-argument invocation, so rendering fails. The error
// is raised at render time, never at construction: an instance that is never
// rendered may legally hold such a value.
var ErrCallableArity = errors.New("istr: slot callable must take zero parameters or a single sink parameter")

// Lazy is a deferred zero-parameter callable slot value. Rendering invokes
// it and renders its result in place, applying the slot rules recursively,
// so nested deferred callables are honored.
type Lazy func() any

// Stream is a deferred one-parameter callable slot value. Rendering invokes
// it with the sink itself, so the callable can write directly and
// incrementally instead of materializing an intermediate string.
type Stream func(w io.Writer) error

// countingWriter tracks bytes forwarded to the underlying sink so WriteTo
// can satisfy the io.WriterTo contract.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

var _ io.WriterTo = (*String)(nil)

// WriteTo renders the fully-expanded text to w, interleaving fragments and
// values in document order. Rendering never mutates the instance, but it
// invokes every callable slot on every call, so callable side effects repeat
// per render. Sink failures propagate unchanged; a callable of invalid arity
// fails with ErrCallableArity.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	for i, frag := range s.fragments {
		if _, err := io.WriteString(cw, frag); err != nil {
			return cw.n, err
		}
		if i < len(s.values) {
			if err := WriteSlot(cw, s.values[i]); err != nil {
				return cw.n, err
			}
		}
	}
	return cw.n, nil
}

// Text renders to a fresh in-memory buffer and returns the accumulated text.
// The only failures an in-memory sink surfaces are the instance's own: an
// invalid-arity callable, or an error returned by a streaming callable.
func (s *String) Text() (string, error) {
	var sb strings.Builder
	if _, err := s.WriteTo(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// String implements fmt.Stringer. A rendering failure against the in-memory
// sink signals a programming error (a misconfigured callable slot), not a
// recoverable condition, so String panics instead of swallowing it. Callers
// that need the error should use Text.
func (s *String) String() string {
	text, err := s.Text()
	if err != nil {
		panic(err)
	}
	return text
}

var (
	writerType = reflect.TypeOf((*io.Writer)(nil)).Elem()
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
)

// WriteSlot renders a single slot value to w, applying the deferred-callable
// rules before falling back to the plain value-to-text coercion:
//   - a zero-parameter callable is invoked and its result rendered
//     recursively through the same rules,
//   - a one-parameter callable whose parameter accepts the sink is invoked
//     with the sink itself,
//   - any other callable fails with ErrCallableArity,
//   - everything else goes through WriteValue.
//
// It is exported for builder adapters that need slot semantics outside of a
// full render.
func WriteSlot(w io.Writer, v any) error {
	switch fn := v.(type) {
	case Lazy:
		if fn == nil {
			return WriteValue(w, nil)
		}
		return WriteSlot(w, fn())
	case Stream:
		if fn == nil {
			return WriteValue(w, nil)
		}
		return fn(w)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func {
		return WriteValue(w, v)
	}
	if rv.IsNil() {
		// A nil callable renders like a nil value.
		return WriteValue(w, nil)
	}

	t := rv.Type()
	switch {
	case t.NumIn() == 0, t.NumIn() == 1 && t.IsVariadic():
		res, ok, err := callResult(rv.Call(nil))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		return WriteSlot(w, res)
	case t.NumIn() == 1 && writerType.AssignableTo(t.In(0)):
		_, _, err := callResult(rv.Call([]reflect.Value{reflect.ValueOf(w)}))
		return err
	default:
		return fmt.Errorf("%w: callable takes %d parameters", ErrCallableArity, t.NumIn())
	}
}

// callResult extracts the renderable result of a callable invocation. A
// trailing error result is split off and propagated; ok reports whether a
// non-error result remains to render.
func callResult(out []reflect.Value) (any, bool, error) {
	if len(out) == 0 {
		return nil, false, nil
	}
	if last := out[len(out)-1]; last.Type().Implements(errorType) {
		if !last.IsNil() {
			return nil, false, last.Interface().(error)
		}
		out = out[:len(out)-1]
		if len(out) == 0 {
			return nil, false, nil
		}
	}
	return out[0].Interface(), true, nil
}
