package main

import (
	"fmt"

	"github.com/henderiw/pyrange/pkg/iprange"
	"github.com/henderiw/pyrange/pkg/pyrange"
)

func main() {
	fmt.Println("simple usages")

	// 01234
	for i := range pyrange.Upto(5).All() {
		fmt.Print(i)
	}
	fmt.Println()

	// 567
	for i := range pyrange.Between(5, 8).All() {
		fmt.Print(i)
	}
	fmt.Println()

	// 8642
	for i := range pyrange.StepInt(8, 0, -2).All() {
		fmt.Print(i)
	}
	fmt.Println()

	fmt.Println("floats")
	// 1 1.1 1.2 ... 1.9, accumulated so the low digits drift
	for d := range pyrange.Step(1.0, 1.99, 0.1).All() {
		fmt.Print(d, " ")
	}
	fmt.Println()

	fmt.Println("beyond numbers")
	vec := []int{1, 2, 3, 4, 5}
	// 54321
	for it := range pyrange.Over(pyrange.RBegin(vec), pyrange.REnd(vec)).All() {
		fmt.Print(it.Value())
	}
	fmt.Println()

	// 53
	for p := range pyrange.OverStep(pyrange.At(vec, len(vec)-1), pyrange.At(vec, 0), -2).All() {
		fmt.Print(*p.Ptr())
	}
	fmt.Println()

	// manual iteration
	r := pyrange.StepInt(0, 10, 3)
	for it, end := r.Begin(), r.End(); !it.Equal(end); it.Advance() {
		fmt.Print(it.Value(), " ")
	}
	fmt.Println()

	addrs, err := iprange.Parse("10.0.0.254-10.0.1.1", 1)
	if err != nil {
		panic(err)
	}
	for a := range addrs.All() {
		fmt.Println("addr", a.String())
	}
}
