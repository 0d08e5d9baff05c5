package curry

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// KwArg is a named argument. Values of this type passed to
// Args.With or Curried.Call are treated as keyword arguments;
// all other values are positional.
type KwArg struct {
	Name  string
	Value any
}

// Kw returns a named argument.
func Kw(name string, value any) KwArg {
	return KwArg{Name: name, Value: value}
}

// Args holds the arguments accumulated by a partial application:
// an ordered sequence of positional values and a set of named values.
//
// An Args value is immutable: With returns a new value and never
// modifies the backing storage of its receiver, so Args values
// derived from a common parent never observe each other's
// additions. The zero Args is empty and ready to use.
type Args struct {
	// pos and named are never written to once
	// they have been stored in an Args.
	pos   []any
	named map[string]any
}

// NewArgs returns the result of adding values to an empty Args.
func NewArgs(values ...any) Args {
	return Args{}.With(values...)
}

// With returns a new Args holding the arguments of a followed by
// values. Positional values are appended in order; a KwArg replaces
// any earlier value with the same name.
func (a Args) With(values ...any) Args {
	var pos []any
	var named map[string]any
	for _, v := range values {
		if kw, ok := v.(KwArg); ok {
			if named == nil {
				named = maps.Clone(a.named)
				if named == nil {
					named = make(map[string]any)
				}
			}
			named[kw.Name] = kw.Value
			continue
		}
		if pos == nil {
			pos = make([]any, len(a.pos), len(a.pos)+len(values))
			copy(pos, a.pos)
		}
		pos = append(pos, v)
	}
	if pos == nil {
		pos = a.pos
	}
	if named == nil {
		named = a.named
	}
	return Args{
		pos:   pos,
		named: named,
	}
}

// Merge returns a new Args holding the arguments of a followed by
// those of b, as if b's values had been passed to a.With.
func (a Args) Merge(b Args) Args {
	values := make([]any, 0, b.Len())
	values = append(values, b.pos...)
	for name, v := range b.named {
		values = append(values, Kw(name, v))
	}
	return a.With(values...)
}

// Len returns the number of filling arguments held: the number of
// positional values plus the number of distinct names.
func (a Args) Len() int {
	return len(a.pos) + len(a.named)
}

// Positional returns a copy of the positional values.
func (a Args) Positional() []any {
	return slices.Clone(a.pos)
}

// Named returns a copy of the named values.
func (a Args) Named() map[string]any {
	return maps.Clone(a.named)
}

// Lookup returns the value of the named argument.
func (a Args) Lookup(name string) (any, bool) {
	v, ok := a.named[name]
	return v, ok
}

// Has reports whether all the given names have values.
func (a Args) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := a.named[name]; !ok {
			return false
		}
	}
	return true
}

// String returns the arguments formatted as a call argument list,
// with named arguments in sorted order.
func (a Args) String() string {
	var buf strings.Builder
	for i, v := range a.pos {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%#v", v)
	}
	for i, name := range slices.Sorted(maps.Keys(a.named)) {
		if i > 0 || len(a.pos) > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s=%#v", name, a.named[name])
	}
	return buf.String()
}
