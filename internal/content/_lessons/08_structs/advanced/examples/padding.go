// Field order controls padding; unsafe.Sizeof proves it.
package main

import (
	"fmt"
	"unsafe"
)

// Alignment holes: bool(1)+pad(7), int64(8), bool(1)+pad(7)
type sloppy struct {
	flag  bool
	count int64
	done  bool
}

// Large-to-small ordering packs tight
type packed struct {
	count int64
	flag  bool
	done  bool
}

func main() {
	fmt.Printf("sloppy: %d bytes\n", unsafe.Sizeof(sloppy{}))
	fmt.Printf("packed: %d bytes\n", unsafe.Sizeof(packed{}))

	// Field offsets show where the padding went
	var s sloppy
	fmt.Printf("sloppy offsets: flag=%d count=%d done=%d\n",
		unsafe.Offsetof(s.flag),
		unsafe.Offsetof(s.count),
		unsafe.Offsetof(s.done))

	var p packed
	fmt.Printf("packed offsets: count=%d flag=%d done=%d\n",
		unsafe.Offsetof(p.count),
		unsafe.Offsetof(p.flag),
		unsafe.Offsetof(p.done))

	// The empty struct is genuinely free
	fmt.Printf("struct{}: %d bytes\n", unsafe.Sizeof(struct{}{}))

	// At a million elements the layout difference is real memory
	const n = 1_000_000
	fmt.Printf("%d sloppy: %d KB\n", n, n*unsafe.Sizeof(sloppy{})/1024)
	fmt.Printf("%d packed: %d KB\n", n, n*unsafe.Sizeof(packed{})/1024)
}
