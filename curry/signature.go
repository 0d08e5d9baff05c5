package curry

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Kind classifies a parameter slot.
type Kind int

const (
	// PositionalRequired parameters may be passed by position
	// or by name and have no default.
	PositionalRequired Kind = iota
	// PositionalDefault parameters may be passed by position or by
	// name and take their default when omitted.
	PositionalDefault
	// CatchAllPositional absorbs surplus positional arguments.
	CatchAllPositional
	// KeywordRequired parameters can only be passed by name.
	KeywordRequired
	// KeywordDefault parameters can only be passed by name
	// and take their default when omitted.
	KeywordDefault
	// CatchAllKeyword absorbs named arguments that match
	// no other parameter.
	CatchAllKeyword
)

var kindNames = []string{
	PositionalRequired: "positional",
	PositionalDefault:  "positional with default",
	CatchAllPositional: "catch-all positional",
	KeywordRequired:    "keyword-only",
	KeywordDefault:     "keyword-only with default",
	CatchAllKeyword:    "catch-all keyword",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsCatchAll reports whether k is one of the catch-all kinds.
// Catch-all parameters never count towards arity.
func (k Kind) IsCatchAll() bool {
	return k == CatchAllPositional || k == CatchAllKeyword
}

// HasDefault reports whether parameters of kind k can be omitted
// in favour of their default value.
func (k Kind) HasDefault() bool {
	return k == PositionalDefault || k == KeywordDefault
}

// positional reports whether k fills from positional arguments.
func (k Kind) positional() bool {
	return k == PositionalRequired || k == PositionalDefault
}

// rank gives the order in which kinds must appear in a signature.
func (k Kind) rank() int {
	switch k {
	case PositionalRequired, PositionalDefault:
		return 0
	case CatchAllPositional:
		return 1
	case KeywordRequired, KeywordDefault:
		return 2
	}
	return 3
}

// Param describes one parameter slot of a callable.
type Param struct {
	Name string
	Kind Kind
	// Default holds the value used when the parameter is
	// omitted. It is only used when Kind.HasDefault is true.
	Default any
}

// Required returns a positional parameter without a default.
func Required(name string) Param {
	return Param{Name: name, Kind: PositionalRequired}
}

// Optional returns a positional parameter with the given default.
func Optional(name string, def any) Param {
	return Param{Name: name, Kind: PositionalDefault, Default: def}
}

// Keyword returns a keyword-only parameter without a default.
func Keyword(name string) Param {
	return Param{Name: name, Kind: KeywordRequired}
}

// KeywordOptional returns a keyword-only parameter with the given default.
func KeywordOptional(name string, def any) Param {
	return Param{Name: name, Kind: KeywordDefault, Default: def}
}

// VarArgs returns a parameter that absorbs surplus positional arguments.
func VarArgs(name string) Param {
	return Param{Name: name, Kind: CatchAllPositional}
}

// VarKwargs returns a parameter that absorbs unmatched named arguments.
func VarKwargs(name string) Param {
	return Param{Name: name, Kind: CatchAllKeyword}
}

func (p Param) String() string {
	switch p.Kind {
	case CatchAllPositional:
		return "*" + p.Name
	case CatchAllKeyword:
		return "**" + p.Name
	}
	if p.Kind.HasDefault() {
		return fmt.Sprintf("%s=%v", p.Name, p.Default)
	}
	return p.Name
}

// Mode selects how arity is inferred from a Signature.
type Mode int

const (
	// Strict counts every positional parameter, whether or not
	// it has a default. Keyword-only parameters are not counted.
	Strict Mode = iota
	// DefaultAware counts only the parameters without a default,
	// leaving the callee to fill in the rest.
	DefaultAware
)

// Signature is an ordered list of parameters. Positional
// parameters come first, then the catch-all positional parameter,
// then keyword-only parameters, then the catch-all keyword
// parameter.
type Signature []Param

// Arity returns the number of filling arguments that must be
// gathered before a call is attempted.
func (s Signature) Arity(mode Mode) int {
	n := 0
	for _, p := range s {
		switch {
		case p.Kind.IsCatchAll():
		case mode == DefaultAware:
			if !p.Kind.HasDefault() {
				n++
			}
		case p.Kind.positional():
			n++
		}
	}
	return n
}

// RequiredKeywords returns the names of the keyword-only parameters
// that have no default, in declaration order.
func (s Signature) RequiredKeywords() []string {
	var names []string
	for _, p := range s {
		if p.Kind == KeywordRequired {
			names = append(names, p.Name)
		}
	}
	return names
}

// Index returns the index of the parameter with the given name,
// or -1 if there is none.
func (s Signature) Index(name string) int {
	return slices.IndexFunc(s, func(p Param) bool {
		return p.Name == name
	})
}

// Validate checks that s is well formed: names are non-empty and
// unique, kinds appear in order, no positional parameter without a
// default follows one with a default, and there is at most one
// catch-all of each kind.
func (s Signature) Validate() error {
	seen := make(map[string]bool)
	rank := 0
	sawDefault := false
	for i, p := range s {
		if p.Kind < PositionalRequired || p.Kind > CatchAllKeyword {
			return fmt.Errorf("parameter %d has invalid kind %v", i, p.Kind)
		}
		if p.Name == "" {
			return fmt.Errorf("parameter %d has no name", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate parameter %q", p.Name)
		}
		seen[p.Name] = true
		r := p.Kind.rank()
		if r < rank || (r == rank && p.Kind.IsCatchAll()) {
			return fmt.Errorf("%v parameter %q out of order", p.Kind, p.Name)
		}
		rank = r
		switch p.Kind {
		case PositionalDefault:
			sawDefault = true
		case PositionalRequired:
			if sawDefault {
				return fmt.Errorf("parameter %q without default follows parameter with default", p.Name)
			}
		}
	}
	return nil
}

func (s Signature) String() string {
	var buf strings.Builder
	buf.WriteByte('(')
	star := false
	for i, p := range s {
		if i > 0 {
			buf.WriteString(", ")
		}
		if !star && (p.Kind == KeywordRequired || p.Kind == KeywordDefault) {
			buf.WriteString("*, ")
		}
		if p.Kind == CatchAllPositional || p.Kind == KeywordRequired || p.Kind == KeywordDefault {
			star = true
		}
		buf.WriteString(p.String())
	}
	buf.WriteByte(')')
	return buf.String()
}

// Binding holds arguments matched to the parameters of a Signature.
type Binding struct {
	sig    Signature
	values []any
}

// Bind matches args against s. Positional arguments fill positional
// parameters in order, with any surplus going to the catch-all
// positional parameter. Named arguments fill the parameter of the
// same name, with unknown names going to the catch-all keyword
// parameter. Omitted parameters take their defaults.
//
// The catch-all positional parameter is always bound to a non-nil
// []any and the catch-all keyword parameter to a non-nil
// map[string]any.
//
// On failure the returned error is an *ArgumentError.
func (s Signature) Bind(args Args) (*Binding, error) {
	b := &Binding{
		sig:    s,
		values: make([]any, len(s)),
	}
	set := make([]bool, len(s))
	varArgs, varKwargs := -1, -1
	npos := 0
	for i, p := range s {
		switch {
		case p.Kind.positional():
			npos++
		case p.Kind == CatchAllPositional:
			varArgs = i
		case p.Kind == CatchAllKeyword:
			varKwargs = i
		}
	}
	var extra []any
	for i, v := range args.pos {
		if i < npos {
			b.values[i] = v
			set[i] = true
			continue
		}
		if varArgs < 0 {
			return nil, &ArgumentError{
				Err:    ErrTooManyArguments,
				Detail: fmt.Sprintf("takes %d but %d were given", npos, len(args.pos)),
			}
		}
		extra = append(extra, v)
	}
	var extraKw map[string]any
	for _, name := range slices.Sorted(maps.Keys(args.named)) {
		v := args.named[name]
		i := s.Index(name)
		if i >= 0 && !s[i].Kind.IsCatchAll() {
			if set[i] {
				return nil, &ArgumentError{Param: name, Err: ErrDuplicateArgument}
			}
			b.values[i] = v
			set[i] = true
			continue
		}
		if varKwargs < 0 {
			return nil, &ArgumentError{Param: name, Err: ErrUnexpectedArgument}
		}
		if extraKw == nil {
			extraKw = make(map[string]any)
		}
		extraKw[name] = v
	}
	var missing []string
	for i, p := range s {
		if set[i] {
			continue
		}
		switch {
		case p.Kind == CatchAllPositional:
			if extra == nil {
				extra = []any{}
			}
			b.values[i] = extra
		case p.Kind == CatchAllKeyword:
			if extraKw == nil {
				extraKw = map[string]any{}
			}
			b.values[i] = extraKw
		case p.Kind.HasDefault():
			b.values[i] = p.Default
		default:
			missing = append(missing, p.Name)
		}
	}
	if len(missing) > 0 {
		return nil, &ArgumentError{
			Param: strings.Join(missing, ", "),
			Err:   ErrMissingArgument,
		}
	}
	return b, nil
}

// Signature returns the signature the arguments were bound to.
func (b *Binding) Signature() Signature {
	return b.sig
}

// Values returns the bound values, one for each parameter in
// signature order.
func (b *Binding) Values() []any {
	return slices.Clone(b.values)
}

// Get returns the value bound to the named parameter.
func (b *Binding) Get(name string) (any, bool) {
	i := b.sig.Index(name)
	if i < 0 {
		return nil, false
	}
	return b.values[i], true
}
