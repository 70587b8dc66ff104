// Runes vs bytes example
package main

import "fmt"

func main() {
	s := "héllo"

	// len counts bytes, not characters
	fmt.Printf("bytes: %d, runes: %d\n", len(s), len([]rune(s)))

	// Indexing yields bytes
	fmt.Printf("s[0] = %d (%c)\n", s[0], s[0])

	// range decodes UTF-8: byte index + rune
	for i, r := range s {
		fmt.Printf("  %d: %c (U+%04X)\n", i, r, r)
	}

	// Conversions copy
	b := []byte(s)
	b[0] = 'H'
	fmt.Println("mutated copy:", string(b))
	fmt.Println("original:    ", s)
}
