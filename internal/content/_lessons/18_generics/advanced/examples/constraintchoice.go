// Generics for data, interfaces for behavior, and the hybrid.
package main

import (
	"fmt"
	"strings"
)

// Behavioral constraint: the concrete type survives the call
type keyed interface {
	Key() string
}

type order struct {
	id    string
	total float64
}

func (o order) Key() string { return o.id }

type event struct {
	name string
}

func (e event) Key() string { return e.name }

// Generic: returns map[string]order or map[string]event, not map[string]keyed
func indexBy[T keyed](items []T) map[string]T {
	out := make(map[string]T, len(items))
	for _, it := range items {
		out[it.Key()] = it
	}
	return out
}

// Interface version: right when only behavior matters and
// nothing typed flows back to the caller
func describeAll(items []keyed) string {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = it.Key()
	}
	return strings.Join(keys, ", ")
}

func main() {
	orders := []order{
		{id: "A100", total: 9.5},
		{id: "A200", total: 41.0},
	}

	// The concrete type survives: byID is map[string]order
	byID := indexBy(orders)
	o := byID["A200"]
	fmt.Printf("A200 total: %.2f\n", o.total) // no assertion needed

	events := []event{{name: "boot"}, {name: "sync"}}
	byName := indexBy(events)
	fmt.Printf("event found: %v\n", byName["sync"].name)

	// Interface version needs boxing into []keyed at the call site
	mixed := []keyed{orders[0], events[0], orders[1]}
	fmt.Printf("described: %s\n", describeAll(mixed))

	// Type set constraint: the algorithm needs operators, not methods
	fmt.Printf("sum ints:   %v\n", sum([]int{1, 2, 3}))
	fmt.Printf("sum floats: %v\n", sum([]float64{0.5, 1.5}))
}

func sum[T ~int | ~float64](vals []T) T {
	var total T
	for _, v := range vals {
		total += v
	}
	return total
}
