// Named type identity example
package main

import "fmt"

type Celsius float64
type Fahrenheit float64

func toFahrenheit(c Celsius) Fahrenheit {
	return Fahrenheit(c*9/5 + 32)
}

func main() {
	boiling := Celsius(100)

	// Celsius and Fahrenheit share an underlying type but are
	// distinct: mixing them requires an explicit conversion
	f := toFahrenheit(boiling)

	fmt.Printf("%v C = %v F\n", float64(boiling), float64(f))
	fmt.Printf("types: %T vs %T\n", boiling, f)
}
