package dispatch

import (
	"strings"

	"github.com/on-the-ground/lazystring/shared/helper"
)

// stdFallback is the standard rendered-text operation table. Each entry
// receives the already-rendered text, so the interpolated string has been
// expanded exactly once by the time an operation runs.
var stdFallback = map[string]StringOp{
	"contains": func(text string, args []any) (any, error) {
		sub, err := helper.ArgAs[string](args, 0)
		if err != nil {
			return nil, err
		}
		return strings.Contains(text, sub), nil
	},
	"hasPrefix": func(text string, args []any) (any, error) {
		prefix, err := helper.ArgAs[string](args, 0)
		if err != nil {
			return nil, err
		}
		return strings.HasPrefix(text, prefix), nil
	},
	"hasSuffix": func(text string, args []any) (any, error) {
		suffix, err := helper.ArgAs[string](args, 0)
		if err != nil {
			return nil, err
		}
		return strings.HasSuffix(text, suffix), nil
	},
	"index": func(text string, args []any) (any, error) {
		sub, err := helper.ArgAs[string](args, 0)
		if err != nil {
			return nil, err
		}
		return strings.Index(text, sub), nil
	},
	"toUpper": func(text string, _ []any) (any, error) {
		return strings.ToUpper(text), nil
	},
	"toLower": func(text string, _ []any) (any, error) {
		return strings.ToLower(text), nil
	},
	"trimSpace": func(text string, _ []any) (any, error) {
		return strings.TrimSpace(text), nil
	},
	"split": func(text string, args []any) (any, error) {
		sep, err := helper.ArgAs[string](args, 0)
		if err != nil {
			return nil, err
		}
		return strings.Split(text, sep), nil
	},
	"replace": func(text string, args []any) (any, error) {
		old, err := helper.ArgAs[string](args, 0)
		if err != nil {
			return nil, err
		}
		repl, err := helper.ArgAs[string](args, 1)
		if err != nil {
			return nil, err
		}
		return strings.ReplaceAll(text, old, repl), nil
	},
	"repeat": func(text string, args []any) (any, error) {
		count, err := helper.ArgAs[int](args, 0)
		if err != nil {
			return nil, err
		}
		return strings.Repeat(text, count), nil
	},
}
