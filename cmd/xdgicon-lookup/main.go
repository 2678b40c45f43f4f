// Command xdgicon-lookup is a minimal demonstration binary, not a full
// CLI. It prints the resolved path for one icon name.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ferrocactus/xdgicons"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, "usage: xdgicon-lookup <name> <size> <scale> [theme]")
		os.Exit(2)
	}

	size, err := strconv.ParseUint(os.Args[2], 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid size: %v\n", err)
		os.Exit(2)
	}

	scale, err := strconv.ParseUint(os.Args[3], 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid scale: %v\n", err)
		os.Exit(2)
	}

	theme := xdgicons.HicolorThemeName
	if len(os.Args) > 4 {
		theme = os.Args[4]
	}

	icons := xdgicons.New()
	icon, ok := icons.FindIcon(os.Args[1], uint32(size), uint32(scale), theme)
	if !ok {
		fmt.Fprintf(os.Stderr, "icon %q not found\n", os.Args[1])
		os.Exit(1)
	}

	fmt.Println(icon.Path)
}
