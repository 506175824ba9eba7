package vector_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/vector"
)

// ExampleDot shows the dot product of two equal-length vectors.
func ExampleDot() {
	a, _ := vector.FromSlice([]float32{1, 2, 3})
	b, _ := vector.FromSlice([]float32{4, 5, 6})

	d, err := vector.Dot(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d)

	// Output:
	// 32
}

// ExampleVector_Apply squares every element with a closure.
func ExampleVector_Apply() {
	v, _ := vector.FromSlice([]float32{1, 2, 3})
	_ = v.Apply(func(x float32) float32 { return x * x })
	fmt.Println(v)

	// Output:
	// [1, 4, 9]
}
