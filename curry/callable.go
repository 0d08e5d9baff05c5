package curry

import (
	"errors"
	"fmt"
)

// Callable is implemented by values that can be curried.
type Callable interface {
	Call(args Args) (any, error)
}

// Signer is optionally implemented by a Callable to declare its
// parameters. Curry uses it to infer arity.
type Signer interface {
	Signature() Signature
}

// Namer is optionally implemented by a Callable to report a
// human-readable name.
type Namer interface {
	Name() string
}

// CallableFunc adapts an ordinary function to a Callable.
// It has no signature, so it can only be curried with an
// explicit arity.
type CallableFunc func(args Args) (any, error)

// Call implements Callable.
func (f CallableFunc) Call(args Args) (any, error) {
	return f(args)
}

// Func is a Callable with a declared signature. Arguments are bound
// to the signature before the implementation is called, so the
// implementation sees each parameter filled exactly once.
type Func struct {
	name string
	sig  Signature
	impl func(b *Binding) (any, error)
}

// NewFunc returns a Func with the given name and signature that
// calls impl with the bound arguments. It returns an error wrapping
// ErrInvalidArgument if the signature is malformed or impl is nil.
func NewFunc(name string, sig Signature, impl func(b *Binding) (any, error)) (*Func, error) {
	if impl == nil {
		return nil, fmt.Errorf("curry: nil implementation for %q: %w", name, ErrInvalidArgument)
	}
	if err := sig.Validate(); err != nil {
		return nil, fmt.Errorf("curry: bad signature for %q: %v: %w", name, err, ErrInvalidArgument)
	}
	return &Func{
		name: name,
		sig:  sig,
		impl: impl,
	}, nil
}

// MustFunc is like NewFunc but panics on error.
func MustFunc(name string, sig Signature, impl func(b *Binding) (any, error)) *Func {
	f, err := NewFunc(name, sig, impl)
	if err != nil {
		panic(err)
	}
	return f
}

// Call implements Callable by binding args to the signature
// and calling the implementation. A binding failure is returned
// as an *ArgumentError naming f.
func (f *Func) Call(args Args) (any, error) {
	b, err := f.sig.Bind(args)
	if err != nil {
		var aerr *ArgumentError
		if errors.As(err, &aerr) && aerr.Func == "" {
			aerr.Func = f.name
		}
		return nil, err
	}
	return f.impl(b)
}

// Signature implements Signer.
func (f *Func) Signature() Signature {
	return f.sig
}

// Name implements Namer.
func (f *Func) Name() string {
	return f.name
}

func (f *Func) String() string {
	return f.name + f.sig.String()
}
