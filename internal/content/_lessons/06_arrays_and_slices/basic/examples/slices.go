// Arrays copy; slices share. The fundamental split.
package main

import "fmt"

func main() {
	// Arrays are values: assignment copies every element
	a := [3]int{1, 2, 3}
	b := a
	b[0] = 99
	fmt.Printf("array a: %v\n", a) // unchanged
	fmt.Printf("array b: %v\n", b)

	// Slices are views: assignment shares the backing array
	s := []int{1, 2, 3}
	t := s
	t[0] = 99
	fmt.Printf("slice s: %v\n", s) // changed!
	fmt.Printf("slice t: %v\n", t)

	// len counts elements; cap counts room in the backing array
	u := make([]int, 2, 5)
	fmt.Printf("len=%d cap=%d %v\n", len(u), cap(u), u)

	// Slicing is half-open: [1:4] takes indexes 1, 2, 3
	nums := []int{10, 20, 30, 40, 50}
	fmt.Printf("nums[1:4] = %v\n", nums[1:4])
	fmt.Printf("nums[:2]  = %v\n", nums[:2])
	fmt.Printf("nums[3:]  = %v\n", nums[3:])

	// append returns a new header; always assign it back
	var grow []int
	for i := 1; i <= 4; i++ {
		grow = append(grow, i*i)
	}
	fmt.Printf("grown: %v (len=%d cap=%d)\n", grow, len(grow), cap(grow))

	// copy duplicates elements into independent storage
	dst := make([]int, len(nums))
	n := copy(dst, nums)
	dst[0] = -1
	fmt.Printf("copied %d: dst=%v nums[0]=%d\n", n, dst, nums[0])
}
