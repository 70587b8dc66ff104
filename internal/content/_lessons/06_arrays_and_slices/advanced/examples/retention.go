// A small subslice pins its entire backing array.
package main

import "fmt"

// leaky returns a view: the caller keeps all of data alive
func leaky(data []byte) []byte {
	return data[:8]
}

// detached copies out: data can be collected
func detached(data []byte) []byte {
	out := make([]byte, 8)
	copy(out, data)
	return out
}

func main() {
	big := make([]byte, 1<<20) // 1MB buffer
	for i := range big {
		big[i] = byte(i)
	}

	view := leaky(big)
	own := detached(big)

	// Same bytes, very different memory behavior
	fmt.Printf("view: len=%d cap=%d\n", len(view), cap(view))
	fmt.Printf("own:  len=%d cap=%d\n", len(own), cap(own))

	// cap reveals the pinned array; the copy's cap matches its len
	if cap(view) == cap(big) {
		fmt.Println("view still references the 1MB array")
	}
	if cap(own) == len(own) {
		fmt.Println("own references only 8 bytes")
	}

	// Deleting in place: shift the tail down, shrink the header
	s := []int{10, 20, 30, 40, 50}
	i := 2
	s = append(s[:i], s[i+1:]...)
	fmt.Printf("after ordered delete: %v\n", s)

	// O(1) delete when order does not matter
	s[1] = s[len(s)-1]
	s = s[:len(s)-1]
	fmt.Printf("after swap delete:    %v\n", s)
}
