// Composing readers and writers: copy, tee, hash, and walk.
package main

import (
	"bufio"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	dir, err := os.MkdirTemp("", "streamdemo-")
	if err != nil {
		fmt.Println("tempdir:", err)
		return
	}
	defer os.RemoveAll(dir)

	// MultiWriter: one Copy feeds the file and the hash together
	src := strings.NewReader("streaming data through composed writers\n")
	dst, err := os.Create(filepath.Join(dir, "out.txt"))
	if err != nil {
		fmt.Println("create:", err)
		return
	}

	h := sha256.New()
	w := bufio.NewWriter(dst)
	n, err := io.Copy(io.MultiWriter(w, h), src)
	if err != nil {
		fmt.Println("copy:", err)
		return
	}
	if err := w.Flush(); err != nil {
		fmt.Println("flush:", err)
		return
	}
	if err := dst.Close(); err != nil {
		fmt.Println("close:", err)
		return
	}
	fmt.Printf("copied %d bytes, sha256=%x...\n", n, h.Sum(nil)[:8])

	// LimitReader caps how much a consumer may take
	limited := io.LimitReader(strings.NewReader("abcdefghij"), 4)
	got, _ := io.ReadAll(limited)
	fmt.Printf("limited read: %q\n", got)

	// ReadFull: exactly this many bytes or an error
	header := make([]byte, 4)
	if _, err := io.ReadFull(strings.NewReader("abc"), header); err != nil {
		fmt.Printf("short input: %v\n", err)
	}

	// WalkDir visits the tree with one DirEntry per item
	os.MkdirAll(filepath.Join(dir, "sub"), 0o755)
	os.WriteFile(filepath.Join(dir, "sub", "a.go"), []byte("package a"), 0o644)

	var goFiles []string
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".go") {
			goFiles = append(goFiles, filepath.Base(path))
		}
		return nil
	})
	if err != nil {
		fmt.Println("walk:", err)
		return
	}
	fmt.Printf("go files found: %v\n", goFiles)
}
