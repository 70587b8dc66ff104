// Methods on structs and named types; implicit interface satisfaction.
package main

import (
	"fmt"
	"math"
)

type rect struct {
	w, h float64
}

// Value receiver: reads a copy
func (r rect) Area() float64 {
	return r.w * r.h
}

// Pointer receiver: mutates the original
func (r *rect) Scale(f float64) {
	r.w *= f
	r.h *= f
}

type circle struct {
	r float64
}

func (c circle) Area() float64 {
	return math.Pi * c.r * c.r
}

// Methods attach to any named type, not just structs
type celsius float64

func (c celsius) Freezing() bool {
	return c <= 0
}

// Both rect and circle satisfy shape without declaring it
type shape interface {
	Area() float64
}

func totalArea(shapes []shape) float64 {
	var t float64
	for _, s := range shapes {
		t += s.Area()
	}
	return t
}

func main() {
	r := rect{w: 3, h: 4}
	fmt.Printf("area:  %.1f\n", r.Area())

	// The compiler takes &r for the pointer receiver
	r.Scale(2)
	fmt.Printf("scaled: %.0fx%.0f\n", r.w, r.h)

	shapes := []shape{rect{3, 4}, circle{5}}
	fmt.Printf("total: %.2f\n", totalArea(shapes))

	temps := []celsius{-4, 18}
	for _, t := range temps {
		fmt.Printf("%.0f°C freezing: %v\n", float64(t), t.Freezing())
	}
}
