// Switch without fallthrough, on any comparable type.
package main

import "fmt"

func grade(score int) string {
	// Expressionless switch replaces an else-if ladder
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	default:
		return "F"
	}
}

func main() {
	// Switch on a string: no integral-type restriction
	day := "sat"
	switch day {
	case "sat", "sun":
		fmt.Println("weekend")
	case "fri":
		fmt.Println("almost there")
	default:
		fmt.Println("weekday")
	}

	// Each case breaks automatically
	for _, s := range []int{95, 83, 71, 40} {
		fmt.Printf("score %d: grade %s\n", s, grade(s))
	}

	// Init statement scopes the value to the switch
	switch x := 7 % 3; x {
	case 0:
		fmt.Println("divisible")
	default:
		fmt.Printf("remainder %d\n", x)
	}
}
