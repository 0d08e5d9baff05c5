// Package curry implements currying of arbitrary callables.
//
// [Curry] wraps a target callable in a [Curried] value. Calling it
// with [Curried.Call] accumulates positional and named arguments
// (see [Kw]) until enough have been gathered to satisfy the target's
// arity, at which point the target is called with all of them and
// its result returned:
//
//	f := curry.MustCurry(curry.MustFunc("f", curry.Signature{
//		curry.Required("a"),
//		curry.Required("b"),
//		curry.Keyword("c"),
//	}, impl))
//	g, _ := f.Call(1)          // partial: a=1
//	h, _ := g.(*curry.Curried).Call(2)
//	r, err := h.(*curry.Curried).Call(curry.Kw("c", 3))
//
// The arity is inferred from the target's [Signature] unless given
// explicitly with [WithArity]. [Curry] counts the positional
// parameters, with or without defaults; [CurryDefault] counts all
// parameters without defaults, positional or keyword-only, so that the target supplies the defaults itself. In both
// modes the target is not called until every keyword-only parameter
// without a default has been named. Beyond that the arity is only a
// count: if the target is called too early, or with arguments it
// cannot accept, its error is returned unchanged.
//
// Accumulated arguments are held in an immutable [Args] value, so
// a partial application may be reused as the starting point for any
// number of independent calls.
//
// Ordinary Go functions are adapted with [Reflect], which can attach
// parameter names, defaults and keyword-only parameters to them.
package curry
