package syntax

import (
	"fmt"

	"github.com/amp-labs/amp-dict/debug"
)

// Spanned pairs a value with the span of source it was produced from.
type Spanned[T any] struct {
	V    T
	Span Span
}

// NewSpanned wraps v with span.
func NewSpanned[T any](v T, span Span) Spanned[T] {
	return Spanned[T]{V: v, Span: span}
}

// WithoutSpan wraps v with a detached span.
func WithoutSpan[T any](v T) Spanned[T] {
	return Spanned[T]{V: v, Span: Detached()}
}

// AsRef returns a Spanned pointing at the wrapped value instead of holding a
// copy of it.
func AsRef[T any](s *Spanned[T]) Spanned[*T] {
	return Spanned[*T]{V: &s.V, Span: s.Span}
}

// Map transforms the wrapped value, keeping the span.
func Map[T, U any](s Spanned[T], f func(T) U) Spanned[U] {
	return Spanned[U]{V: f(s.V), Span: s.Span}
}

// Format implements fmt.Formatter. %v prints the value alone; %#v appends
// the span, as in `"hello" <3..10>`.
func (s Spanned[T]) Format(f fmt.State, verb rune) {
	debug.FormatValue(f, verb, s.V)

	if verb == 'v' && f.Flag('#') {
		_, _ = fmt.Fprintf(f, " <%s>", s.Span)
	}
}
