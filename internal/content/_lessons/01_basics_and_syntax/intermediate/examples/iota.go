// Iota and blank identifier example
package main

import "fmt"

type ByteSize float64

const (
	_           = iota // skip zero
	KB ByteSize = 1 << (10 * iota)
	MB
	GB
)

type Flags uint

const (
	FlagRead Flags = 1 << iota
	FlagWrite
	FlagExec
)

func main() {
	fmt.Printf("KB = %.0f\n", float64(KB))
	fmt.Printf("MB = %.0f\n", float64(MB))
	fmt.Printf("GB = %.0f\n", float64(GB))

	perms := FlagRead | FlagWrite
	fmt.Printf("read?  %t\n", perms&FlagRead != 0)
	fmt.Printf("write? %t\n", perms&FlagWrite != 0)
	fmt.Printf("exec?  %t\n", perms&FlagExec != 0)
}
