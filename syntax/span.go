// Package syntax holds the source-location types that runtime values carry
// for diagnostics.
package syntax

import (
	"fmt"
	"log/slog"
)

// SourceID identifies a source file within a compilation. The zero value
// means "no source": the value was synthesized rather than parsed.
type SourceID uint32

// Span is a half-open byte range [Start, End) within a source file.
type Span struct {
	Source SourceID
	Start  int
	End    int
}

// NewSpan creates a span in source covering [start, end).
func NewSpan(source SourceID, start, end int) Span {
	return Span{Source: source, Start: start, End: end}
}

// Detached returns the span used for values that did not come from any
// source text.
func Detached() Span {
	return Span{}
}

// IsDetached reports whether the span points at no source.
func (s Span) IsDetached() bool {
	return s.Source == 0
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Join returns the smallest span covering both s and other. Spans from
// different sources can't be joined, so s is returned unchanged; a detached
// s takes other as is.
func (s Span) Join(other Span) Span {
	switch {
	case s.IsDetached():
		return other
	case other.IsDetached() || s.Source != other.Source:
		return s
	}

	return Span{
		Source: s.Source,
		Start:  min(s.Start, other.Start),
		End:    max(s.End, other.End),
	}
}

// String renders the span as start..end.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// LogValue implements slog.LogValuer.
func (s Span) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("source", uint64(s.Source)),
		slog.Int("start", s.Start),
		slog.Int("end", s.End),
	)
}
