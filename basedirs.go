package xdgicons

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultBaseDirs returns the XDG-specified default search order:
// $HOME/.icons, each $XDG_DATA_DIRS entry's icons subfolder in order,
// then /usr/share/pixmaps. This is a thin
// environment-reading convenience, not part of the lookup engine itself
// — SearchDirectories takes the resulting list as plain input and never
// reads the environment on its own.
func DefaultBaseDirs() []string {
	var dirs []string

	if home := os.Getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".icons"))
	}

	if dataDirs := os.Getenv("XDG_DATA_DIRS"); dataDirs != "" {
		for _, dir := range strings.Split(dataDirs, ":") {
			if dir != "" {
				dirs = append(dirs, filepath.Join(dir, "icons"))
			}
		}
	}

	dirs = append(dirs, "/usr/share/pixmaps")
	return dirs
}
