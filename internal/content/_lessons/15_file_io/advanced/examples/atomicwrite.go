// Atomic replacement: temp file, sync, rename.
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// replaceFile makes the new contents visible all-or-nothing.
// Readers see the old file or the new one, never a partial write.
func replaceFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op once the rename succeeds

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func main() {
	dir, err := os.MkdirTemp("", "atomic-")
	if err != nil {
		fmt.Println("tempdir:", err)
		return
	}
	defer os.RemoveAll(dir)

	cfg := filepath.Join(dir, "config.json")

	if err := replaceFile(cfg, []byte(`{"version": 1}`)); err != nil {
		fmt.Println("first write:", err)
		return
	}
	v1, _ := os.ReadFile(cfg)
	fmt.Printf("v1: %s\n", v1)

	if err := replaceFile(cfg, []byte(`{"version": 2}`)); err != nil {
		fmt.Println("second write:", err)
		return
	}
	v2, _ := os.ReadFile(cfg)
	fmt.Printf("v2: %s\n", v2)

	// No temp files left behind
	entries, _ := os.ReadDir(dir)
	fmt.Printf("files in dir: %d\n", len(entries))

	// ReadAt serves concurrent readers from one handle
	f, err := os.Open(cfg)
	if err != nil {
		fmt.Println("open:", err)
		return
	}
	defer f.Close()
	buf := make([]byte, 9)
	if _, err := f.ReadAt(buf, 1); err == nil {
		fmt.Printf("ReadAt offset 1: %s\n", buf)
	}
}
