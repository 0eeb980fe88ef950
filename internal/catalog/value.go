package catalog

import "strconv"

// Kind discriminates the variants of Value.
type Kind int

const (
	KindInteger Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindText:
		return "text"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is either an integer or a string.
type Value struct {
	kind Kind
	i    int64
	s    string
}

// Int returns an integer Value.
func Int(v int64) Value {
	return Value{kind: KindInteger, i: v}
}

// Text returns a string Value.
func Text(v string) Value {
	return Value{kind: KindText, s: v}
}

// Kind returns the variant.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer and whether the value is an integer.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInteger
}

// Text returns the string and whether the value is a string.
func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindText
}

// Interface returns the value as int64 or string.
func (v Value) Interface() any {
	if v.kind == KindText {
		return v.s
	}
	return v.i
}

func (v Value) String() string {
	if v.kind == KindText {
		return strconv.Quote(v.s)
	}
	return strconv.FormatInt(v.i, 10)
}

// Entry is one published constant.
type Entry struct {
	// Name is the published constant name.
	Name string
	// Symbol is the native symbol the value was resolved from. Empty for text entries.
	Symbol string
	Value  Value
}
