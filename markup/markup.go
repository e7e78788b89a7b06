// Package markup adapts interpolated-string emission events to etree XML
// element trees. Each fragment and each value becomes its own
// character-data child of the target element, so a document builder keeps
// the template's pieces as distinct nodes instead of one flattened string.
package markup

import (
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/on-the-ground/lazystring/istr"
)

// Appender feeds fragment/value events into an etree element.
type Appender struct {
	parent *etree.Element
	logger *zap.Logger
}

var _ istr.Builder = (*Appender)(nil)

// NewAppender returns an Appender targeting parent. A nil logger disables
// tracing.
func NewAppender(parent *etree.Element, logger *zap.Logger) *Appender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Appender{parent: parent, logger: logger}
}

// Literal appends the fragment as its own character-data node.
func (a *Appender) Literal(text string) error {
	a.parent.CreateText(text)
	return nil
}

// Value appends the value's text as its own character-data node, applying
// the slot rules so deferred callables are honored. A nested *istr.String
// contributes its own event stream rather than one flattened node.
func (a *Appender) Value(v any) error {
	if nested, ok := v.(*istr.String); ok {
		a.logger.Debug("descending into nested interpolated string")
		return nested.Build(a)
	}
	var sb strings.Builder
	if err := istr.WriteSlot(&sb, v); err != nil {
		return err
	}
	a.parent.CreateText(sb.String())
	return nil
}
