// The table-driven shape: cases as data, checking logic written once.
package main

import "fmt"

// clamp is the function under test
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func main() {
	// In a real _test.go file this table feeds t.Run subtests;
	// the structure is identical
	tests := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{"inside range", 5, 0, 10, 5},
		{"below low", -3, 0, 10, 0},
		{"above high", 15, 0, 10, 10},
		{"at low edge", 0, 0, 10, 0},
		{"at high edge", 10, 0, 10, 10},
		{"degenerate range", 5, 7, 7, 7},
	}

	passed := 0
	for _, tt := range tests {
		got := clamp(tt.v, tt.lo, tt.hi)
		if got != tt.want {
			// The message format mirrors t.Errorf convention:
			// f(inputs) = got, want X
			fmt.Printf("FAIL %-16s clamp(%d, %d, %d) = %d, want %d\n",
				tt.name, tt.v, tt.lo, tt.hi, got, tt.want)
			continue
		}
		fmt.Printf("pass %-16s\n", tt.name)
		passed++
	}

	fmt.Printf("%d/%d cases passed\n", passed, len(tests))
}
