// Package debug renders runtime values for diagnostics: error messages,
// test snapshots and log lines. The output is for humans and is not meant to
// be parsed back.
package debug

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// FormatValue writes v to f the way diagnostics show values:
//   - fmt.Formatter implementations format themselves and see f's flags,
//     so a pretty (%#v) request propagates into nested containers
//   - strings are double-quoted
//   - non-nil pointers are followed
//   - everything else uses %v
func FormatValue(f fmt.State, verb rune, v any) {
	switch typed := v.(type) {
	case fmt.Formatter:
		typed.Format(f, verb)
	case string:
		_, _ = f.Write([]byte(strconv.Quote(typed)))
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer && !rv.IsNil() {
			FormatValue(f, verb, rv.Elem().Interface())

			return
		}

		_, _ = fmt.Fprint(f, v)
	}
}

// Sprint renders v with FormatValue, compact or pretty.
func Sprint(v any, pretty bool) string {
	if pretty {
		return fmt.Sprintf("%#v", formatted{v})
	}

	return fmt.Sprintf("%v", formatted{v})
}

// Indent prefixes every line of s except the first with prefix. It is used
// to nest multi-line renderings inside an already indented line.
func Indent(s, prefix string) string {
	if !strings.Contains(s, "\n") {
		return s
	}

	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}

type formatted struct {
	v any
}

func (w formatted) Format(f fmt.State, verb rune) {
	FormatValue(f, verb, w.v)
}
