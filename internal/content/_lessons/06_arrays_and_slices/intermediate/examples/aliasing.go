// When append shares storage and when it detaches.
package main

import "fmt"

func main() {
	// Subslice shares the backing array
	s := []int{1, 2, 3, 4}
	t := s[:2]
	fmt.Printf("s=%v t=%v (t cap=%d)\n", s, t, cap(t))

	// Append within t's capacity overwrites s[2]
	t = append(t, 99)
	fmt.Printf("after append within cap: s=%v t=%v\n", s, t)

	// Append beyond capacity reallocates and detaches
	u := append(s, 5) // cap(s)==4, so this allocates
	u[0] = -1
	fmt.Printf("after detach: s=%v u=%v\n", s, u)

	// The three-index form caps capacity to prevent overwrites
	v := s[:2:2] // len 2, cap 2
	v = append(v, 777)
	fmt.Printf("capped append: s=%v v=%v\n", s, v)

	// Growth pattern: capacity jumps, not increments
	var g []int
	prev := cap(g)
	for i := 0; i < 100; i++ {
		g = append(g, i)
		if cap(g) != prev {
			fmt.Printf("len %3d -> cap %3d\n", len(g), cap(g))
			prev = cap(g)
		}
	}
}
