package springs_test

import (
	"fmt"

	"github.com/katalvlaran/aoc23/springs"
)

// ExampleRecord_Arrangements counts the placements for one record line.
func ExampleRecord_Arrangements() {
	r, err := springs.ParseRecord("?###???????? 3,2,1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(r.Arrangements(), r.Unfold(5).Arrangements())
	// Output:
	// 10 506250
}
