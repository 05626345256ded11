package exprfn_test

import (
	"fmt"

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/exprfn"
)

// ExampleCompile builds a function from text and hands it straight to a
// solver, which is exactly what the rootfind command does with -f.
func ExampleCompile() {
	f, err := exprfn.Compile("x*x*x - x - 1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bracket.Bisect(f, 1, 2, 1e-6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("root=%.4f\n", res.Root)
	// Output:
	// root=1.3247
}
