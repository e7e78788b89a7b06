package istr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/lazystring/istr"
)

// recordingBuilder captures emission events in order. failAfter, when
// positive, makes the builder fail once that many events have been accepted.
type recordingBuilder struct {
	events    []string
	values    []any
	failAfter int
	err       error
}

func (rb *recordingBuilder) accept() error {
	if rb.failAfter > 0 && len(rb.events) >= rb.failAfter {
		return rb.err
	}
	return nil
}

func (rb *recordingBuilder) Literal(text string) error {
	if err := rb.accept(); err != nil {
		return err
	}
	rb.events = append(rb.events, "literal:"+text)
	return nil
}

func (rb *recordingBuilder) Value(v any) error {
	if err := rb.accept(); err != nil {
		return err
	}
	rb.events = append(rb.events, "value")
	rb.values = append(rb.values, v)
	return nil
}

func TestBuild_EmitsInterleavedEvents(t *testing.T) {
	s := istr.MustNew([]string{"a", "b", "c"}, []any{1, 2})

	rb := &recordingBuilder{}
	require.NoError(t, s.Build(rb))

	assert.Equal(t, []string{"literal:a", "value", "literal:b", "value", "literal:c"}, rb.events)
	assert.Equal(t, []any{1, 2}, rb.values)
}

func TestBuild_EmitsEmptyFragments(t *testing.T) {
	s := istr.MustNew([]string{"", ""}, []any{"v"})

	rb := &recordingBuilder{}
	require.NoError(t, s.Build(rb))

	assert.Equal(t, []string{"literal:", "value", "literal:"}, rb.events)
}

func TestBuild_DeliversValuesRaw(t *testing.T) {
	s := istr.MustNew([]string{"", ""}, []any{istr.Lazy(func() any { return "Z" })})

	rb := &recordingBuilder{}
	require.NoError(t, s.Build(rb))

	// the callable arrives uninvoked; slot semantics are the adapter's call
	require.Len(t, rb.values, 1)
	_, ok := rb.values[0].(istr.Lazy)
	assert.True(t, ok)
}

func TestBuild_AbortsOnFirstError(t *testing.T) {
	boom := errors.New("builder refused")
	s := istr.MustNew([]string{"a", "b"}, []any{1})

	rb := &recordingBuilder{failAfter: 2, err: boom}
	err := s.Build(rb)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"literal:a", "value"}, rb.events)
}
