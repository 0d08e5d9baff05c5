package curry

import (
	"errors"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var aritySigs = []struct {
	about        string
	sig          Signature
	strict       int
	defaultAware int
	keywords     []string
}{{
	about: "empty",
}, {
	about:        "positional",
	sig:          Signature{Required("a"), Required("b")},
	strict:       2,
	defaultAware: 2,
}, {
	about:        "positional with default",
	sig:          Signature{Required("a"), Optional("b", 10)},
	strict:       2,
	defaultAware: 1,
}, {
	about:        "keyword only",
	sig:          Signature{Required("a"), Required("b"), Keyword("c"), Keyword("d")},
	strict:       2,
	defaultAware: 4,
	keywords:     []string{"c", "d"},
}, {
	about:        "keyword only with default",
	sig:          Signature{Required("a"), KeywordOptional("c", 1), Keyword("d")},
	strict:       1,
	defaultAware: 2,
	keywords:     []string{"d"},
}, {
	about:        "catch-alls",
	sig:          Signature{VarArgs("args"), VarKwargs("kwargs")},
	strict:       0,
	defaultAware: 0,
}, {
	about:        "everything",
	sig:          Signature{Required("a"), Optional("b", nil), VarArgs("rest"), Keyword("c"), KeywordOptional("d", 0), VarKwargs("kw")},
	strict:       2,
	defaultAware: 2,
	keywords:     []string{"c"},
}, {
	about:        "keyword only with default after positional",
	sig:          Signature{Required("a"), KeywordOptional("c", 5)},
	strict:       1,
	defaultAware: 1,
}}

func TestSignatureArity(t *testing.T) {
	for _, test := range aritySigs {
		t.Run(test.about, func(t *testing.T) {
			qt.Assert(t, qt.IsNil(test.sig.Validate()))
			qt.Assert(t, qt.Equals(test.sig.Arity(Strict), test.strict))
			qt.Assert(t, qt.Equals(test.sig.Arity(DefaultAware), test.defaultAware))
			qt.Assert(t, qt.DeepEquals(test.sig.RequiredKeywords(), test.keywords))
		})
	}
}

var validateTests = []struct {
	about       string
	sig         Signature
	expectError string
}{{
	about:       "no name",
	sig:         Signature{Required("")},
	expectError: `parameter 0 has no name`,
}, {
	about:       "duplicate",
	sig:         Signature{Required("a"), Keyword("a")},
	expectError: `duplicate parameter "a"`,
}, {
	about:       "required after default",
	sig:         Signature{Optional("a", 1), Required("b")},
	expectError: `parameter "b" without default follows parameter with default`,
}, {
	about:       "positional after keyword",
	sig:         Signature{Keyword("a"), Required("b")},
	expectError: `positional parameter "b" out of order`,
}, {
	about:       "two var args",
	sig:         Signature{VarArgs("a"), VarArgs("b")},
	expectError: `catch-all positional parameter "b" out of order`,
}, {
	about:       "keyword after var kwargs",
	sig:         Signature{VarKwargs("kw"), Keyword("a")},
	expectError: `keyword-only parameter "a" out of order`,
}, {
	about:       "bad kind",
	sig:         Signature{{Name: "a", Kind: 99}},
	expectError: `parameter 0 has invalid kind Kind\(99\)`,
}}

func TestSignatureValidate(t *testing.T) {
	for _, test := range validateTests {
		t.Run(test.about, func(t *testing.T) {
			qt.Assert(t, qt.ErrorMatches(test.sig.Validate(), test.expectError))
		})
	}
}

func TestSignatureString(t *testing.T) {
	qt.Assert(t, qt.Equals(aritySigs[3].sig.String(), "(a, b, *, c, d)"))
	qt.Assert(t, qt.Equals(aritySigs[6].sig.String(), "(a, b=<nil>, *rest, c, d=0, **kw)"))
	qt.Assert(t, qt.Equals(Signature{Keyword("x")}.String(), "(*, x)"))
}

var bindSig = Signature{
	Required("a"),
	Optional("b", 10),
	VarArgs("rest"),
	Keyword("c"),
	KeywordOptional("d", 20),
	VarKwargs("kw"),
}

var bindTests = []struct {
	about     string
	sig       Signature
	args      Args
	expect    []any
	expectErr error
	errMatch  string
}{{
	about:  "all defaults",
	sig:    bindSig,
	args:   NewArgs(1, Kw("c", 3)),
	expect: []any{1, 10, []any{}, 3, 20, map[string]any{}},
}, {
	about:  "positional by name",
	sig:    bindSig,
	args:   NewArgs(Kw("a", 1), Kw("b", 2), Kw("c", 3)),
	expect: []any{1, 2, []any{}, 3, 20, map[string]any{}},
}, {
	about:  "surplus goes to catch-alls",
	sig:    bindSig,
	args:   NewArgs(1, 2, 3, 4, Kw("c", 5), Kw("z", 6)),
	expect: []any{1, 2, []any{3, 4}, 5, 20, map[string]any{"z": 6}},
}, {
	about:     "missing",
	sig:       bindSig,
	args:      NewArgs(Kw("b", 1)),
	expectErr: ErrMissingArgument,
	errMatch:  `missing required argument "a, c"`,
}, {
	about:     "duplicate",
	sig:       bindSig,
	args:      NewArgs(1, Kw("a", 2), Kw("c", 3)),
	expectErr: ErrDuplicateArgument,
	errMatch:  `multiple values for argument "a"`,
}, {
	about:     "too many",
	sig:       Signature{Required("a")},
	args:      NewArgs(1, 2),
	expectErr: ErrTooManyArguments,
	errMatch:  `too many positional arguments: takes 1 but 2 were given`,
}, {
	about:     "unexpected keyword",
	sig:       Signature{Required("a")},
	args:      NewArgs(1, Kw("b", 2)),
	expectErr: ErrUnexpectedArgument,
	errMatch:  `unexpected keyword argument "b"`,
}, {
	about:     "var args not bindable by name",
	sig:       Signature{VarArgs("rest")},
	args:      NewArgs(Kw("rest", 1)),
	expectErr: ErrUnexpectedArgument,
	errMatch:  `unexpected keyword argument "rest"`,
}, {
	about:  "var args name goes to var kwargs",
	sig:    Signature{VarArgs("rest"), VarKwargs("kw")},
	args:   NewArgs(Kw("rest", 1)),
	expect: []any{[]any{}, map[string]any{"rest": 1}},
}}

func TestBind(t *testing.T) {
	for _, test := range bindTests {
		t.Run(test.about, func(t *testing.T) {
			b, err := test.sig.Bind(test.args)
			if test.expectErr != nil {
				qt.Assert(t, qt.ErrorIs(err, test.expectErr))
				qt.Assert(t, qt.ErrorMatches(err, test.errMatch))
				var aerr *ArgumentError
				qt.Assert(t, qt.IsTrue(errors.As(err, &aerr)))
				return
			}
			qt.Assert(t, qt.IsNil(err))
			if diff := cmp.Diff(b.Values(), test.expect, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("unexpected bound values (-got +want):\n%s", diff)
			}
		})
	}
}

func TestBindingGet(t *testing.T) {
	b, err := bindSig.Bind(NewArgs(1, Kw("c", 3)))
	qt.Assert(t, qt.IsNil(err))
	v, ok := b.Get("b")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, any(10)))
	_, ok = b.Get("nope")
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.DeepEquals(b.Signature(), bindSig))
}

func TestKindString(t *testing.T) {
	qt.Assert(t, qt.Equals(KeywordDefault.String(), "keyword-only with default"))
	qt.Assert(t, qt.Equals(Kind(-1).String(), "Kind(-1)"))
}
