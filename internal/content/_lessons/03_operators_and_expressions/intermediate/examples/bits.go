// Bit manipulation example
package main

import "fmt"

const (
	FlagRead  = 1 << iota // 1
	FlagWrite             // 2
	FlagExec              // 4
)

func main() {
	flags := FlagRead | FlagWrite
	fmt.Printf("flags:       %03b\n", flags)

	// AND NOT clears bits in one operator
	flags = flags &^ FlagWrite
	fmt.Printf("cleared:     %03b\n", flags)

	// & binds tighter than ==, so masking reads naturally
	if flags&FlagRead == FlagRead {
		fmt.Println("read flag set")
	}

	// Shifts: signedness picks arithmetic vs logical
	var s int8 = -8
	var u uint8 = 0x80
	fmt.Printf("int8(-8)>>1  = %d\n", s>>1)
	fmt.Printf("uint8(80h)>>1 = %#x\n", u>>1)

	// Unsigned overflow wraps, defined everywhere
	var x uint8 = 255
	x++
	fmt.Println("255+1 as uint8:", x)
}
