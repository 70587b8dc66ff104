// Labeled break and continue replace flag variables in nested loops.
package main

import "fmt"

func main() {
	grid := [][]int{
		{1, 2, 3},
		{4, 0, 6},
		{7, 8, -1},
	}

	// continue with a label skips to the next outer iteration
rows:
	for i, row := range grid {
		for _, cell := range row {
			if cell == 0 {
				fmt.Printf("row %d has a zero, skipping\n", i)
				continue rows
			}
		}
		fmt.Printf("row %d is complete\n", i)
	}

	// break with a label exits both loops at once
	var found bool
search:
	for _, row := range grid {
		for _, cell := range row {
			if cell < 0 {
				found = true
				break search
			}
		}
	}
	fmt.Printf("negative present: %v\n", found)

	// fallthrough is explicit and unconditional
	switch n := 1; n {
	case 1:
		fmt.Println("one")
		fallthrough
	case 2:
		fmt.Println("two (via fallthrough)")
	case 3:
		fmt.Println("three (not reached)")
	}
}
