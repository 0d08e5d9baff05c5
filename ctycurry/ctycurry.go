// Package ctycurry curries functions from the go-cty function package.
//
// A cty function declares its positional parameters and an optional
// variadic parameter, which is enough to derive a curry.Signature:
// each parameter is required and the variadic parameter is a
// catch-all. Arguments may be given either as cty.Value or as
// ordinary Go values, which are converted using their implied cty
// type.
package ctycurry

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/GamerX248/curry/curry"
)

// Func returns fn as a curry.Func with the given name.
// The result of calling it is a cty.Value.
func Func(name string, fn function.Function) (*curry.Func, error) {
	return curry.NewFunc(name, Signature(fn), func(b *curry.Binding) (any, error) {
		return call(name, fn, b)
	})
}

// Signature returns the signature of fn.
func Signature(fn function.Function) curry.Signature {
	params := fn.Params()
	vp := fn.VarParam()
	used := make(map[string]bool)
	for _, p := range params {
		used[p.Name] = true
	}
	if vp != nil {
		used[vp.Name] = true
	}
	sig := make(curry.Signature, 0, len(params)+1)
	for i, p := range params {
		sig = append(sig, curry.Required(paramName(p, i, used)))
	}
	if vp != nil {
		sig = append(sig, curry.VarArgs(paramName(*vp, len(params), used)))
	}
	return sig
}

// Curry returns fn curried; see curry.Curry.
func Curry(name string, fn function.Function, opts ...curry.Option) (*curry.Curried, error) {
	f, err := Func(name, fn)
	if err != nil {
		return nil, err
	}
	return curry.Curry(f, opts...)
}

// Float returns a numeric result as a float64.
func Float(v any, err error) (float64, error) {
	cv, err := curry.Result[cty.Value](v, err)
	if err != nil {
		return 0, err
	}
	var f float64
	if err := gocty.FromCtyValue(cv, &f); err != nil {
		return 0, err
	}
	return f, nil
}

// paramName returns the name of p, inventing one not in used
// if it is anonymous so that the signature stays valid.
func paramName(p function.Parameter, i int, used map[string]bool) string {
	if p.Name != "" {
		return p.Name
	}
	name := fmt.Sprintf("arg%d", i)
	for used[name] {
		i++
		name = fmt.Sprintf("arg%d", i)
	}
	used[name] = true
	return name
}

func call(name string, fn function.Function, b *curry.Binding) (cty.Value, error) {
	var args []cty.Value
	for _, p := range b.Signature() {
		v, _ := b.Get(p.Name)
		if p.Kind == curry.CatchAllPositional {
			for _, x := range v.([]any) {
				cv, err := toValue(name, p.Name, x)
				if err != nil {
					return cty.NilVal, err
				}
				args = append(args, cv)
			}
			continue
		}
		cv, err := toValue(name, p.Name, v)
		if err != nil {
			return cty.NilVal, err
		}
		args = append(args, cv)
	}
	return fn.Call(args)
}

func toValue(fname, pname string, x any) (cty.Value, error) {
	switch x := x.(type) {
	case cty.Value:
		return x, nil
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	ty, err := gocty.ImpliedType(x)
	if err == nil {
		var v cty.Value
		if v, err = gocty.ToCtyValue(x, ty); err == nil {
			return v, nil
		}
	}
	return cty.NilVal, &curry.ArgumentError{
		Func:   fname,
		Param:  pname,
		Detail: err.Error(),
		Err:    curry.ErrArgumentType,
	}
}
