package curry_test

import (
	"fmt"

	"github.com/GamerX248/curry/curry"
)

func ExampleCurry() {
	volume := curry.MustCurry(func(l, w, h int) int {
		return l * w * h
	}, curry.WithName("volume"))
	base, _ := volume.Call(2, 3)
	fmt.Println(base)
	for _, h := range []int{1, 10} {
		v, _ := base.(*curry.Curried).Call(h)
		fmt.Println(v)
	}
	// Output:
	// volume(2, 3)
	// 6
	// 60
}

func ExampleCurryDefault() {
	f := curry.MustCurryDefault(curry.MustReflect(func(name, greeting string) string {
		return greeting + ", " + name
	}, curry.Required("name"), curry.Optional("greeting", "hello")))
	fmt.Println(f.Call("world"))
	fmt.Println(f.Call("gopher", curry.Kw("greeting", "hi")))
	// Output:
	// hello, world <nil>
	// hi, gopher <nil>
}

func ExampleWithArity() {
	join := curry.MustCurry(fmt.Sprint, curry.WithArity(3), curry.WithName("join"))
	a, _ := join.Call("a")
	fmt.Println(a)
	b, _ := a.(*curry.Curried).Call("b")
	fmt.Println(b.(*curry.Curried).Call("c"))
	// Output:
	// join("a")
	// abc <nil>
}

func ExampleKw() {
	f := curry.MustFunc("f", curry.Signature{
		curry.Required("a"),
		curry.Keyword("scale"),
	}, func(b *curry.Binding) (any, error) {
		v := b.Values()
		return v[0].(int) * v[1].(int), nil
	})
	c := curry.MustCurry(f)
	four, _ := c.Call(4)
	fmt.Println(four)
	fmt.Println(four.(*curry.Curried).Call(curry.Kw("scale", 10)))
	// Output:
	// f(4)
	// 40 <nil>
}
