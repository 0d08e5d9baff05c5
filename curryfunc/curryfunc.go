// Package curryfunc provides statically typed currying of ordinary
// Go functions with a fixed number of arguments.
//
// The names of most functions in this package match the following
// regular expression:
//
//	(Curry|Uncurry|Partial)E?_[0-9]+
//
// The E indicates a function with a final error result; the number is
// the number of arguments of the uncurried form. So, for example,
//
//	CurryE_3
//
// converts from
//
//	func(A0, A1, A2) (R, error)
//
// to
//
//	func(A0) func(A1) func(A2) (R, error)
//
// Each returned function captures only the arguments already given
// to it, so a partially applied function can be called any number of
// times without the calls affecting one another.
//
// Functions whose arity or argument names are only known at run time
// are handled by the curry package.
package curryfunc

// Curry_2 converts a two-argument function into a chain of
// one-argument functions.
func Curry_2[A0, A1, R any](f func(A0, A1) R) func(A0) func(A1) R {
	return func(a0 A0) func(A1) R {
		return func(a1 A1) R {
			return f(a0, a1)
		}
	}
}

// Curry_3 converts a three-argument function into a chain of
// one-argument functions.
func Curry_3[A0, A1, A2, R any](f func(A0, A1, A2) R) func(A0) func(A1) func(A2) R {
	return func(a0 A0) func(A1) func(A2) R {
		return Curry_2(func(a1 A1, a2 A2) R {
			return f(a0, a1, a2)
		})
	}
}

// Curry_4 converts a four-argument function into a chain of
// one-argument functions.
func Curry_4[A0, A1, A2, A3, R any](f func(A0, A1, A2, A3) R) func(A0) func(A1) func(A2) func(A3) R {
	return func(a0 A0) func(A1) func(A2) func(A3) R {
		return Curry_3(func(a1 A1, a2 A2, a3 A3) R {
			return f(a0, a1, a2, a3)
		})
	}
}

// CurryE_2 is like Curry_2 for a function that also returns an error.
func CurryE_2[A0, A1, R any](f func(A0, A1) (R, error)) func(A0) func(A1) (R, error) {
	return func(a0 A0) func(A1) (R, error) {
		return func(a1 A1) (R, error) {
			return f(a0, a1)
		}
	}
}

// CurryE_3 is like Curry_3 for a function that also returns an error.
func CurryE_3[A0, A1, A2, R any](f func(A0, A1, A2) (R, error)) func(A0) func(A1) func(A2) (R, error) {
	return func(a0 A0) func(A1) func(A2) (R, error) {
		return CurryE_2(func(a1 A1, a2 A2) (R, error) {
			return f(a0, a1, a2)
		})
	}
}

// Uncurry_2 is the inverse of Curry_2.
func Uncurry_2[A0, A1, R any](f func(A0) func(A1) R) func(A0, A1) R {
	return func(a0 A0, a1 A1) R {
		return f(a0)(a1)
	}
}

// Uncurry_3 is the inverse of Curry_3.
func Uncurry_3[A0, A1, A2, R any](f func(A0) func(A1) func(A2) R) func(A0, A1, A2) R {
	return func(a0 A0, a1 A1, a2 A2) R {
		return f(a0)(a1)(a2)
	}
}

// Partial_2 fixes the first argument of f.
func Partial_2[A0, A1, R any](f func(A0, A1) R, a0 A0) func(A1) R {
	return func(a1 A1) R {
		return f(a0, a1)
	}
}

// Partial_3 fixes the first argument of f.
func Partial_3[A0, A1, A2, R any](f func(A0, A1, A2) R, a0 A0) func(A1, A2) R {
	return func(a1 A1, a2 A2) R {
		return f(a0, a1, a2)
	}
}
