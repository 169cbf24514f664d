package sortable

// String is a sortable wrapper type for string. Keys sort byte-wise, which is
// the order of Go's < operator on strings (not a locale or natural order).
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
