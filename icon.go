package xdgicons

import (
	"path/filepath"
	"strings"
)

// FileType is the recognized image format of an IconFile, derived from its
// file extension.
type FileType uint8

const (
	// Png is a raster icon stored as .png.
	Png FileType = iota
	// Xpm is a legacy X11 pixmap icon stored as .xpm.
	Xpm
	// Svg is a scalable vector icon stored as .svg.
	Svg
)

// String returns the canonical lowercase extension for the file type.
func (t FileType) String() string {
	switch t {
	case Png:
		return "png"
	case Xpm:
		return "xpm"
	case Svg:
		return "svg"
	default:
		return "unknown"
	}
}

func fileTypeFromExt(ext string) (FileType, bool) {
	switch strings.ToLower(ext) {
	case "png":
		return Png, true
	case "xpm":
		return Xpm, true
	case "svg":
		return Svg, true
	default:
		return 0, false
	}
}

// IconFile is a single resolved icon on disk: its path, its file stem (used
// for name-based lookups such as standalone icon matching), and its type.
//
// IconFile is a plain value, immutable once constructed.
type IconFile struct {
	Path     string
	Stem     string
	FileType FileType
}

// newIconFile builds an IconFile from a path whose extension is one of the
// recognized types (png, xpm, svg, case-insensitive). It does not touch the
// filesystem; callers are expected to have already confirmed the path
// exists.
func newIconFile(path string) (IconFile, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return IconFile{}, false
	}

	ft, ok := fileTypeFromExt(ext)
	if !ok {
		return IconFile{}, false
	}

	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return IconFile{Path: path, Stem: stem, FileType: ft}, true
}
