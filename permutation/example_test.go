package permutation_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/permutation"
)

func ExamplePermutation_Cycles() {
	p, _ := permutation.New(1, 4, 3, 2, 0)
	fmt.Println(p.Cycles())
	fmt.Println(p.Parity(), p.Sign())
	// Output:
	// [(0 1 4) (2 3)]
	// odd -1
}
