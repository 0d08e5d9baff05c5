package curry

import (
	"fmt"
	"reflect"
)

// Option configures Curry and CurryDefault.
type Option func(*options)

type options struct {
	arity    int
	hasArity bool
	name     string
}

// WithArity sets the number of filling arguments to gather before
// the target is called, bypassing signature inspection. This makes
// it possible to curry targets without a signature, or to restrict
// or extend the arity of those with one.
func WithArity(n int) Option {
	return func(o *options) {
		o.arity = n
		o.hasArity = true
	}
}

// WithName sets the name reported by the curried function.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// Curried is a partial application of a target callable. Calling it
// either calls the target, when enough arguments have been gathered,
// or returns a new Curried holding the arguments so far.
//
// A Curried value is immutable and may be called any number of
// times, concurrently if the target allows it; each call starts from
// the same accumulated arguments.
type Curried struct {
	target Callable
	name   string
	arity  int
	// waitFor holds keyword-only parameters without defaults.
	// The target is not called until all of them are present.
	waitFor []string
	args    Args
}

// Curry returns a curried form of target with no arguments applied.
//
// The target may be a Callable, a func(Args) (any, error), or any
// other Go function, which is adapted with Reflect. Anything else
// results in an error wrapping ErrInvalidArgument.
//
// Unless WithArity is given, the arity is the number of positional
// parameters in the target's signature, including those with
// defaults. Keyword-only parameters are not counted, although the
// target is still not called until those without defaults have been
// named. A target without a signature must be given an arity.
func Curry(target any, opts ...Option) (*Curried, error) {
	return newCurried(target, Strict, opts)
}

// CurryDefault is like Curry except that parameters with defaults are
// not counted when inferring arity: the target is called as soon as
// all parameters without defaults could be filled, leaving the target
// to supply the rest.
func CurryDefault(target any, opts ...Option) (*Curried, error) {
	return newCurried(target, DefaultAware, opts)
}

// MustCurry is like Curry but panics on error.
func MustCurry(target any, opts ...Option) *Curried {
	return must(Curry(target, opts...))
}

// MustCurryDefault is like CurryDefault but panics on error.
func MustCurryDefault(target any, opts ...Option) *Curried {
	return must(CurryDefault(target, opts...))
}

func must(c *Curried, err error) *Curried {
	if err != nil {
		panic(err)
	}
	return c
}

func newCurried(target any, mode Mode, opts []Option) (*Curried, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasArity && o.arity < 0 {
		return nil, fmt.Errorf("curry: negative arity %d: %w", o.arity, ErrInvalidArgument)
	}
	callable, err := asCallable(target)
	if err != nil {
		return nil, err
	}
	c := &Curried{
		target: callable,
		name:   o.name,
		arity:  o.arity,
	}
	if c.name == "" {
		c.name = nameOf(target, callable)
	}
	if o.hasArity {
		return c, nil
	}
	s, ok := callable.(Signer)
	if !ok {
		return nil, fmt.Errorf("curry: cannot determine arity of %s; use WithArity: %w", c.name, ErrInvalidArgument)
	}
	sig := s.Signature()
	c.arity = sig.Arity(mode)
	c.waitFor = sig.RequiredKeywords()
	return c, nil
}

func asCallable(target any) (Callable, error) {
	switch target := target.(type) {
	case nil:
		return nil, fmt.Errorf("curry: nil target: %w", ErrInvalidArgument)
	case *Curried:
		if target == nil {
			return nil, fmt.Errorf("curry: nil *Curried target: %w", ErrInvalidArgument)
		}
		return curriedCallable{target}, nil
	case Callable:
		if v := reflect.ValueOf(target); isNilable(v.Kind()) && v.IsNil() {
			return nil, fmt.Errorf("curry: nil %T target: %w", target, ErrInvalidArgument)
		}
		return target, nil
	case func(Args) (any, error):
		if target == nil {
			return nil, fmt.Errorf("curry: nil function target: %w", ErrInvalidArgument)
		}
		return CallableFunc(target), nil
	}
	if reflect.TypeOf(target).Kind() != reflect.Func {
		return nil, fmt.Errorf("curry: %T is not callable: %w", target, ErrInvalidArgument)
	}
	return Reflect(target)
}

func isNilable(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	}
	return false
}

func nameOf(target any, c Callable) string {
	if n, ok := c.(Namer); ok {
		return n.Name()
	}
	if v := reflect.ValueOf(target); v.Kind() == reflect.Func {
		return funcName(v)
	}
	return fmt.Sprintf("%T", target)
}

// curriedCallable allows a Curried to be curried again.
// It has no signature of its own.
type curriedCallable struct {
	c *Curried
}

func (cc curriedCallable) Call(args Args) (any, error) {
	return cc.c.call(cc.c.args.Merge(args))
}

func (cc curriedCallable) Name() string {
	return cc.c.name
}

// Call applies values to c. Values of type KwArg (see Kw) are named
// arguments; all others are positional.
//
// If the accumulated arguments number fewer than the arity, or a
// keyword-only parameter without a default has not yet been
// supplied, Call returns a new *Curried holding them and a nil
// error; c itself is unchanged. Otherwise it calls the target with
// all the accumulated arguments and returns exactly what the target
// returns. Surplus arguments are passed on for the target to reject.
func (c *Curried) Call(values ...any) (any, error) {
	if c == nil {
		panic("(*Curried).Call called on nil *Curried")
	}
	return c.call(c.args.With(values...))
}

func (c *Curried) call(args Args) (any, error) {
	if args.Len() < c.arity || !args.Has(c.waitFor...) {
		c1 := *c
		c1.args = args
		return &c1, nil
	}
	return c.target.Call(args)
}

// Name returns the name of the target.
func (c *Curried) Name() string {
	return c.name
}

// Arity returns the number of filling arguments gathered before
// the target is called.
func (c *Curried) Arity() int {
	return c.arity
}

// Args returns the arguments accumulated so far.
func (c *Curried) Args() Args {
	return c.args
}

func (c *Curried) String() string {
	return c.name + "(" + c.args.String() + ")"
}

// Result interprets the values returned from Curried.Call, which
// are expected to be the final result of type T. If v is a *Curried,
// the error wraps ErrNotReady.
func Result[T any](v any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if c, ok := v.(*Curried); ok {
		if _, want := any(zero).(*Curried); !want {
			return zero, fmt.Errorf("curry: %s has %d of %d arguments: %w", c.name, c.args.Len(), c.arity, ErrNotReady)
		}
	}
	if v == nil {
		if t := reflect.TypeFor[T](); !isNilable(t.Kind()) {
			return zero, fmt.Errorf("curry: result is nil, not %v", t)
		}
		return zero, nil
	}
	r, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("curry: result has type %T, not %v", v, reflect.TypeFor[T]())
	}
	return r, nil
}

// IsPartial reports whether v, as returned from Curried.Call, is a
// partial application awaiting further arguments.
func IsPartial(v any) bool {
	_, ok := v.(*Curried)
	return ok
}
