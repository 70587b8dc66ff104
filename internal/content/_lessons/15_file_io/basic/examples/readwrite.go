// Whole-file helpers, defer Close, and line scanning.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

func main() {
	dir, err := os.MkdirTemp("", "iodemo-")
	if err != nil {
		fmt.Println("tempdir:", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "notes.txt")

	// Write a whole file in one call
	content := []byte("first line\nsecond line\nthird line\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		fmt.Println("write:", err)
		return
	}

	// Read it back
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("read:", err)
		return
	}
	fmt.Printf("read %d bytes\n", len(data))

	// Stat for metadata; missing files via errors.Is
	info, err := os.Stat(path)
	if err == nil {
		fmt.Printf("size=%d dir=%v\n", info.Size(), info.IsDir())
	}
	if _, err := os.Stat(filepath.Join(dir, "absent")); errors.Is(err, fs.ErrNotExist) {
		fmt.Println("absent file correctly reported missing")
	}

	// Line-by-line with Scanner; Err check after the loop
	f, err := os.Open(path)
	if err != nil {
		fmt.Println("open:", err)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fmt.Printf("%d: %s\n", lineNo, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Println("scan:", err)
	}
}
