package curry

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"runtime"
	"strings"
)

var errorType = reflect.TypeFor[error]()

// Reflect adapts an arbitrary Go function to a Func.
//
// If no params are given, every parameter of fn becomes a required
// positional parameter named arg0, arg1 and so on, and a variadic
// final parameter becomes VarArgs("args").
//
// Otherwise params must describe the parameters of fn one for one,
// in order. A CatchAllPositional parameter must correspond to the
// variadic parameter of fn; a CatchAllKeyword parameter must
// correspond to a parameter of type map[string]T. Defaults must be
// convertible to the type of their parameter.
//
// When the Func is called, each argument is assigned to its Go
// parameter. Numeric arguments are converted when neither precision
// nor sign is lost (NaN converts to any float type); any other mismatch yields an *ArgumentError wrapping
// ErrArgumentType, without fn being called.
//
// If the last result of fn is an error, it is returned as the error
// from Call. The remaining results are returned as nil if there are
// none, as the value itself if there is one, or as a []any.
func Reflect(fn any, params ...Param) (*Func, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, fmt.Errorf("curry: %T is not a function: %w", fn, ErrInvalidArgument)
	}
	if v.IsNil() {
		return nil, fmt.Errorf("curry: nil %T: %w", fn, ErrInvalidArgument)
	}
	t := v.Type()
	name := funcName(v)
	sig := Signature(params)
	if len(params) == 0 {
		sig = implicitSignature(t)
	} else if err := checkParams(t, sig); err != nil {
		return nil, fmt.Errorf("curry: cannot adapt %s: %v: %w", name, err, ErrInvalidArgument)
	}
	return NewFunc(name, sig, func(b *Binding) (any, error) {
		return callFunc(name, v, b)
	})
}

// MustReflect is like Reflect but panics on error.
func MustReflect(fn any, params ...Param) *Func {
	f, err := Reflect(fn, params...)
	if err != nil {
		panic(err)
	}
	return f
}

func implicitSignature(t reflect.Type) Signature {
	sig := make(Signature, t.NumIn())
	for i := range sig {
		if t.IsVariadic() && i == t.NumIn()-1 {
			sig[i] = VarArgs("args")
		} else {
			sig[i] = Required(fmt.Sprintf("arg%d", i))
		}
	}
	return sig
}

func checkParams(t reflect.Type, sig Signature) error {
	if len(sig) != t.NumIn() {
		return fmt.Errorf("%d parameters declared for function with %d", len(sig), t.NumIn())
	}
	for i, p := range sig {
		variadic := t.IsVariadic() && i == t.NumIn()-1
		pt := t.In(i)
		switch p.Kind {
		case CatchAllPositional:
			if !variadic {
				return fmt.Errorf("catch-all parameter %q is not variadic", p.Name)
			}
			continue
		case CatchAllKeyword:
			if pt.Kind() != reflect.Map || pt.Key().Kind() != reflect.String {
				return fmt.Errorf("catch-all keyword parameter %q has type %v, not map[string]T", p.Name, pt)
			}
			continue
		}
		if variadic {
			return fmt.Errorf("variadic parameter %q must be a catch-all", p.Name)
		}
		if p.Kind.HasDefault() {
			if _, err := convert(p.Default, pt); err != nil {
				return fmt.Errorf("default for %q: %v", p.Name, err)
			}
		}
	}
	return nil
}

func callFunc(name string, fv reflect.Value, b *Binding) (any, error) {
	t := fv.Type()
	values := b.Values()
	in := make([]reflect.Value, 0, len(values))
	argErr := func(p Param, err error) error {
		return &ArgumentError{
			Func:   name,
			Param:  p.Name,
			Detail: err.Error(),
			Err:    ErrArgumentType,
		}
	}
	for i, p := range b.Signature() {
		pt := t.In(i)
		switch p.Kind {
		case CatchAllPositional:
			extra, _ := values[i].([]any)
			for _, x := range extra {
				xv, err := convert(x, pt.Elem())
				if err != nil {
					return nil, argErr(p, err)
				}
				in = append(in, xv)
			}
		case CatchAllKeyword:
			extra, _ := values[i].(map[string]any)
			m := reflect.MakeMapWithSize(pt, len(extra))
			for k, x := range extra {
				xv, err := convert(x, pt.Elem())
				if err != nil {
					return nil, argErr(Param{Name: k}, err)
				}
				m.SetMapIndex(reflect.ValueOf(k).Convert(pt.Key()), xv)
			}
			in = append(in, m)
		default:
			xv, err := convert(values[i], pt)
			if err != nil {
				return nil, argErr(p, err)
			}
			in = append(in, xv)
		}
	}
	out := fv.Call(in)
	var err error
	if n := t.NumOut(); n > 0 && t.Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			err = e.Interface().(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}
	results := make([]any, len(out))
	for i, r := range out {
		results[i] = r.Interface()
	}
	return results, err
}

// convert returns x as a value assignable to t.
func convert(x any, t reflect.Type) (reflect.Value, error) {
	if x == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use nil as %v", t)
	}
	xv := reflect.ValueOf(x)
	xt := xv.Type()
	if xt.AssignableTo(t) {
		return xv, nil
	}
	if isNumeric(xt) && isNumeric(t) {
		cv := xv.Convert(t)
		if xv.CanFloat() && math.IsNaN(xv.Float()) {
			if cv.CanFloat() {
				return cv, nil
			}
		} else if sign(cv) == sign(xv) && cv.Convert(xt).Equal(xv) {
			return cv, nil
		}
		return reflect.Value{}, fmt.Errorf("cannot convert %v to %v without loss", x, t)
	}
	return reflect.Value{}, fmt.Errorf("cannot use %T as %v", x, t)
}

// sign returns -1, 0 or 1 according to the sign of the
// numeric value v.
func sign(v reflect.Value) int {
	switch {
	case v.CanInt():
		return cmp.Compare(v.Int(), 0)
	case v.CanUint():
		return cmp.Compare(v.Uint(), 0)
	}
	return cmp.Compare(v.Float(), 0)
}

func isNumeric(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// funcName returns the unqualified name of the function held in v.
func funcName(v reflect.Value) string {
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return v.Type().String()
	}
	name := rf.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
