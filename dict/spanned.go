package dict

import (
	"fmt"

	"github.com/amp-labs/amp-dict/syntax"
)

// SpannedEntry is a dict entry produced from source text. It remembers where
// the key was written as well as where the value came from, so evaluator
// errors can point at either.
type SpannedEntry[V any] struct {
	Key   syntax.Span
	Value syntax.Spanned[V]
}

// NewSpannedEntry creates an entry whose key was written at key.
func NewSpannedEntry[V any](key syntax.Span, value syntax.Spanned[V]) SpannedEntry[V] {
	return SpannedEntry[V]{Key: key, Value: value}
}

// SpannedEntryOf creates an entry without a separate key, such as an array
// element: the key span is the value span.
func SpannedEntryOf[V any](value syntax.Spanned[V]) SpannedEntry[V] {
	return SpannedEntry[V]{Key: value.Span, Value: value}
}

// AsRefEntry returns an entry pointing at e's value.
func AsRefEntry[V any](e *SpannedEntry[V]) SpannedEntry[*V] {
	return SpannedEntry[*V]{Key: e.Key, Value: syntax.AsRef(&e.Value)}
}

// MapEntry transforms the value of an entry, keeping both spans.
func MapEntry[V, U any](e SpannedEntry[V], f func(V) U) SpannedEntry[U] {
	return SpannedEntry[U]{Key: e.Key, Value: syntax.Map(e.Value, f)}
}

// Format implements fmt.Formatter. %v prints just the value; %#v prefixes the
// key span and prints the value with its span:
//
//	key<0..4> "hello" <7..14>
func (e SpannedEntry[V]) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = fmt.Fprintf(f, "key<%s> ", e.Key)
	}

	e.Value.Format(f, verb)
}
