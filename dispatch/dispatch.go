// Package dispatch routes named operations to interpolated strings using an
// explicit two-tier scheme: a small fixed set of operations the value
// supports natively, and a rendered-text fallback table that Invoke forwards
// to when the native tier reports ErrUnsupportedOp.
//
// This is the caller-side analogue of the "missing method falls through to
// the string form" behavior of dynamic hosts. Nothing is intercepted at
// runtime; the fallback is a deliberate second tier, and an operation
// neither tier knows stays an error.
package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/on-the-ground/lazystring/istr"
	"github.com/on-the-ground/lazystring/shared/helper"
)

// ErrUnsupportedOp is reported by Native when the interpolated string has no
// native handler for an operation. Invoke treats it as the signal to forward
// the operation to the rendered text.
var ErrUnsupportedOp = errors.New("dispatch: unsupported operation")

// StringOp is a fallback operation over the rendered text.
type StringOp func(text string, args []any) (any, error)

// Dispatcher routes named operations to interpolated strings. It is safe for
// concurrent use once constructed and configured; Register is not
// synchronized with in-flight Invoke calls.
type Dispatcher struct {
	logger   *zap.Logger
	fallback map[string]StringOp
}

// New returns a dispatcher carrying the standard rendered-text fallback
// table. A nil logger disables tracing.
func New(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	fallback := make(map[string]StringOp, len(stdFallback))
	for name, fn := range stdFallback {
		fallback[name] = fn
	}
	return &Dispatcher{logger: logger, fallback: fallback}
}

// Register adds or replaces a rendered-text fallback operation.
func (d *Dispatcher) Register(op string, fn StringOp) {
	d.fallback[op] = fn
}

// Native executes an operation the interpolated string supports natively:
//
//	text            -> string, the rendered text
//	len             -> int, byte length of the rendered text
//	at      (int)   -> byte at the given position of the rendered text
//	concat  (*istr.String | string) -> *istr.String, structural concatenation
//	equal   (*istr.String)          -> bool, rendered texts equal
//	compare (*istr.String)          -> int, lexicographic order
//	hash            -> uint64, xxhash of the rendered text
//	pattern         -> *regexp.Regexp compiled from the rendered text
//	bytes   [string] -> []byte, UTF-8 or the named charset
//	build   (istr.Builder) -> nil, emits fragment/value events
//
// Any other operation returns ErrUnsupportedOp.
func (d *Dispatcher) Native(s *istr.String, op string, args ...any) (any, error) {
	switch op {
	case "text":
		return s.Text()
	case "len":
		text, err := s.Text()
		if err != nil {
			return nil, err
		}
		return len(text), nil
	case "at":
		i, err := helper.ArgAs[int](args, 0)
		if err != nil {
			return nil, err
		}
		text, err := s.Text()
		if err != nil {
			return nil, err
		}
		if i < 0 || i >= len(text) {
			return nil, fmt.Errorf("dispatch: index %d out of range for length %d", i, len(text))
		}
		return text[i], nil
	case "concat":
		if other, err := helper.ArgAs[*istr.String](args, 0); err == nil {
			return s.Concat(other), nil
		}
		text, err := helper.ArgAs[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.ConcatText(text), nil
	case "equal", "compare":
		other, err := helper.ArgAs[*istr.String](args, 0)
		if err != nil {
			return nil, err
		}
		text, err := s.Text()
		if err != nil {
			return nil, err
		}
		otherText, err := other.Text()
		if err != nil {
			return nil, err
		}
		if op == "equal" {
			return text == otherText, nil
		}
		return strings.Compare(text, otherText), nil
	case "hash":
		text, err := s.Text()
		if err != nil {
			return nil, err
		}
		return xxhash.Sum64String(text), nil
	case "pattern":
		return s.Pattern()
	case "bytes":
		if len(args) == 0 {
			return s.Bytes()
		}
		charset, err := helper.ArgAs[string](args, 0)
		if err != nil {
			return nil, err
		}
		return s.BytesIn(charset)
	case "build":
		b, err := helper.ArgAs[istr.Builder](args, 0)
		if err != nil {
			return nil, err
		}
		return nil, s.Build(b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOp, op)
	}
}

// Invoke runs op against the interpolated string, trying the native tier
// first and, on ErrUnsupportedOp, rendering the text and forwarding to the
// fallback table. When the fallback tier fails too, both failures are
// combined so the caller sees the full dispatch story.
func (d *Dispatcher) Invoke(s *istr.String, op string, args ...any) (any, error) {
	res, err := d.Native(s, op, args...)
	if err == nil || !errors.Is(err, ErrUnsupportedOp) {
		return res, err
	}

	fn, ok := d.fallback[op]
	if !ok {
		return nil, err
	}
	text, terr := s.Text()
	if terr != nil {
		return nil, multierr.Append(err, terr)
	}
	d.logger.Debug("forwarding operation to rendered text", zap.String("op", op))
	res, ferr := fn(text, args)
	if ferr != nil {
		return nil, multierr.Append(err, ferr)
	}
	return res, nil
}
