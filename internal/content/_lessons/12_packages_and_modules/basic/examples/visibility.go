// Capitalization is visibility: exported vs unexported names.
package main

import (
	"fmt"
	"strings"
)

// Inventory would be importable from another package
type Inventory struct {
	Name  string // exported field: encoders and importers see it
	count int    // unexported: this package only
}

// Add is part of the public surface
func (inv *Inventory) Add(n int) {
	inv.count += clamp(n)
}

// Count exposes the private field read-only
func (inv *Inventory) Count() int {
	return inv.count
}

// clamp is package-private, like a C static function
func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func main() {
	inv := Inventory{Name: "widgets"}
	inv.Add(5)
	inv.Add(-3) // clamped to 0
	inv.Add(2)

	fmt.Printf("%s: %d\n", inv.Name, inv.Count())

	// Import names come from the package, used as qualifiers
	fmt.Println(strings.ToUpper("qualified call"))

	// Exported identifiers from the standard library follow
	// the same rule: strings.ToUpper yes, strings.toUpper no.
	for _, name := range []string{"Add", "Count", "clamp"} {
		exported := name[0] >= 'A' && name[0] <= 'Z'
		fmt.Printf("%-6s exported: %v\n", name, exported)
	}
}
