package dict

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/amp-labs/amp-dict/debug"
)

const defaultIndent = "    "

// RenderOptions controls the debug rendering of a Dict.
type RenderOptions struct {
	// Pretty puts every entry on its own indented line and uses `key = value`
	// instead of `key=value`.
	Pretty bool

	// Indent is the per-level indentation in pretty mode.
	Indent string
}

// RenderOption is a functional option for Render.
type RenderOption func(*RenderOptions)

// WithPretty selects the multi-line layout.
func WithPretty() RenderOption {
	return func(o *RenderOptions) {
		o.Pretty = true
	}
}

// WithIndent sets the indentation used in pretty mode.
func WithIndent(indent string) RenderOption {
	return func(o *RenderOptions) {
		o.Indent = indent
	}
}

// renderer is implemented by every *Dict[V], whatever V is, so that nested
// dicts render with the options of the outermost one.
type renderer interface {
	render(b *strings.Builder, opts RenderOptions)
}

// Render returns the debug rendering of the Dict. The compact form is
//
//	(10="hello", "sp ace"="quotes", twenty="there")
//
// and the pretty form is
//
//	(
//	    10 = "hello",
//	    "sp ace" = "quotes",
//	    twenty = "there",
//	)
//
// An empty Dict renders as () either way. This format is for diagnostics and
// snapshot tests; it is not meant to be parsed.
func (d *Dict[V]) Render(opts ...RenderOption) string {
	options := RenderOptions{Indent: defaultIndent}

	for _, opt := range opts {
		opt(&options)
	}

	var b strings.Builder

	d.render(&b, options)

	return b.String()
}

func (d *Dict[V]) render(b *strings.Builder, opts RenderOptions) {
	if d.IsEmpty() {
		b.WriteString("()")

		return
	}

	b.WriteByte('(')

	first := true

	for key, value := range d.All() {
		if opts.Pretty {
			b.WriteByte('\n')
			b.WriteString(opts.Indent)
			b.WriteString(key.String())
			b.WriteString(" = ")
			b.WriteString(debug.Indent(renderValue(value, opts), opts.Indent))
			b.WriteByte(',')
		} else {
			if !first {
				b.WriteString(", ")
			}

			b.WriteString(key.String())
			b.WriteByte('=')
			b.WriteString(renderValue(value, opts))
		}

		first = false
	}

	if opts.Pretty {
		b.WriteByte('\n')
	}

	b.WriteByte(')')
}

func renderValue(value any, opts RenderOptions) string {
	if nested, ok := value.(renderer); ok {
		var b strings.Builder

		nested.render(&b, opts)

		return b.String()
	}

	state := &renderState{opts: opts}

	debug.FormatValue(state, 'v', value)

	return state.String()
}

// renderState is the fmt.State handed to values that format themselves. A
// Dict reached through such a value, like a SpannedEntry, picks the options
// back up from it instead of falling back to the defaults.
type renderState struct {
	strings.Builder
	opts RenderOptions
}

func (s *renderState) Width() (int, bool) { return 0, false }

func (s *renderState) Precision() (int, bool) { return 0, false }

func (s *renderState) Flag(c int) bool { return c == '#' && s.opts.Pretty }

// String returns the compact rendering.
func (d *Dict[V]) String() string {
	return d.Render()
}

// Format implements fmt.Formatter: %v and %s print the compact rendering,
// %#v the pretty one. Inside Render, the outer call's options win.
func (d *Dict[V]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if state, ok := f.(*renderState); ok {
			d.render(&state.Builder, state.opts)
		} else if f.Flag('#') {
			_, _ = io.WriteString(f, d.Render(WithPretty()))
		} else {
			_, _ = io.WriteString(f, d.Render())
		}
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(dict=%s)", verb, d.Render())
	}
}

// LogValue implements slog.LogValuer. The Dict logs as a group with one attr
// per entry, in iteration order; nested dicts become nested groups.
func (d *Dict[V]) LogValue() slog.Value {
	if d == nil {
		return slog.GroupValue()
	}

	attrs := make([]slog.Attr, 0, d.Len())

	for key, value := range d.All() {
		attrs = append(attrs, slog.Any(key.text(), value))
	}

	return slog.GroupValue(attrs...)
}
