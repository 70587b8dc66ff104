// Map fundamentals: lookup, comma-ok, delete, and counting.
package main

import (
	"fmt"
	"sort"
	"strings"
)

func main() {
	ages := map[string]int{
		"alice": 30,
		"bob":   25,
	}

	// Insert and update share one syntax
	ages["carol"] = 35
	ages["bob"] = 26

	// Missing keys yield the zero value, never an error
	fmt.Printf("alice: %d\n", ages["alice"])
	fmt.Printf("dave:  %d (missing)\n", ages["dave"])

	// Comma-ok distinguishes absent from zero
	if age, ok := ages["dave"]; ok {
		fmt.Printf("dave found: %d\n", age)
	} else {
		fmt.Println("dave not present")
	}

	// delete is safe on missing keys
	delete(ages, "bob")
	delete(ages, "nobody")
	fmt.Printf("entries: %d\n", len(ages))

	// Zero-value reads make counting a one-liner
	text := "the quick fox jumps over the lazy dog the end"
	counts := make(map[string]int)
	for _, w := range strings.Fields(text) {
		counts[w]++
	}

	// Sort keys for stable output; range order is randomized
	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Strings(words)
	for _, w := range words {
		fmt.Printf("%-5s %d\n", w, counts[w])
	}
}
