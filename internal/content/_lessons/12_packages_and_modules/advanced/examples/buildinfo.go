// Module metadata is embedded in every binary at link time.
package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

func main() {
	fmt.Printf("go runtime: %s on %s/%s\n",
		runtime.Version(), runtime.GOOS, runtime.GOARCH)

	info, ok := debug.ReadBuildInfo()
	if !ok {
		fmt.Println("no build info (not built from a module)")
		return
	}

	fmt.Printf("main module: %s %s\n", info.Main.Path, info.Main.Version)
	fmt.Printf("built with:  %s\n", info.GoVersion)

	// Dependency list with pinned versions, straight from go.mod
	if len(info.Deps) == 0 {
		fmt.Println("no module dependencies")
	}
	for _, dep := range info.Deps {
		line := fmt.Sprintf("  %s %s", dep.Path, dep.Version)
		if dep.Replace != nil {
			line += fmt.Sprintf(" => %s %s", dep.Replace.Path, dep.Replace.Version)
		}
		fmt.Println(line)
	}

	// VCS stamps recorded by the linker when built from git
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision", "vcs.time", "vcs.modified":
			fmt.Printf("  %s = %s\n", s.Key, s.Value)
		}
	}
}
