package xdgicons

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/ini.v1"
)

// DirectoryType controls which fields of a DirectoryIndex are relevant
// when matching a requested icon size.
type DirectoryType uint8

const (
	// Threshold is the default type: a directory matches any size within
	// Threshold pixels of Size.
	Threshold DirectoryType = iota
	// Fixed matches only the exact Size.
	Fixed
	// Scalable matches any size in [MinSize, MaxSize].
	Scalable
)

var directoryTypeTitle = cases.Title(language.Und)

func parseDirectoryType(raw string) (DirectoryType, error) {
	// Tolerate differently-cased Type values (Type=fixed, Type=FIXED, ...)
	// seen in real-world theme packages; genuinely unknown values still
	// fail.
	switch directoryTypeTitle.String(strings.ToLower(raw)) {
	case "Fixed":
		return Fixed, nil
	case "Scalable":
		return Scalable, nil
	case "Threshold":
		return Threshold, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirectoryType, raw)
	}
}

// DirectoryIndex describes one subdirectory of a theme: where it lives
// relative to the theme root, and the size-matching parameters that decide
// whether it's a candidate for a requested (size, scale).
type DirectoryIndex struct {
	DirectoryName string
	Size          uint32
	Scale         uint32
	DirectoryType DirectoryType
	MinSize       uint32
	MaxSize       uint32
	Threshold     uint32
	Context       string
	IsScaledDir   bool
}

// matchesSize reports whether this directory is an exact candidate for an
// icon requested at the given unscaled size and display scale.
func (d DirectoryIndex) matchesSize(size, scale uint32) bool {
	if d.Scale != scale {
		return false
	}

	switch d.DirectoryType {
	case Fixed:
		return d.Size == size
	case Scalable:
		return d.MinSize <= size && size <= d.MaxSize
	case Threshold:
		return absDiffU32(d.Size, size) <= d.Threshold
	default:
		return false
	}
}

// sizeDistance scores how far this directory is from an exact match
// (smaller is better; a Threshold directory that satisfies matchesSize
// scores zero). Used by the nearest-match fallback once the exact-match
// pass has found no file.
func (d DirectoryIndex) sizeDistance(size, scale uint32) uint32 {
	effective := size * scale

	switch d.DirectoryType {
	case Fixed, Scalable:
		return absDiffU32(d.Size*d.Scale, effective)
	case Threshold:
		lo := satSubU32(d.Size, d.Threshold) * d.Scale
		hi := (d.Size + d.Threshold) * d.Scale

		switch {
		case effective < lo:
			return absDiffU32(effective, d.MinSize*d.Scale)
		case effective > hi:
			return absDiffU32(effective, d.MaxSize*d.Scale)
		default:
			return 0
		}
	default:
		return ^uint32(0)
	}
}

func absDiffU32(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

// satSubU32 subtracts b from a, clamping to zero instead of wrapping when
// b > a (Size can be smaller than Threshold in poorly-tuned themes).
func satSubU32(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}

// ThemeIndex is the parsed content of one theme's index.theme file.
type ThemeIndex struct {
	Name        string
	Comment     string
	Inherits    []string
	Directories []DirectoryIndex
	Hidden      bool
	Example     string
}

// parseThemeIndex parses the raw bytes of an index.theme file. The first
// section must be titled "Icon Theme"; a first section with another title,
// or a failure from the ini tokenizer, is reported as ErrNotAnIconTheme.
// Missing attributes and unparseable values are reported with the other
// sentinels in errors.go.
func parseThemeIndex(raw []byte) (ThemeIndex, error) {
	file, err := ini.Load(raw)
	if err != nil {
		return ThemeIndex{}, fmt.Errorf("%w: %v", ErrNotAnIconTheme, err)
	}

	// ini.v1 lists its implicit DEFAULT section first; the first real
	// section follows it.
	var section *ini.Section
	for _, s := range file.Sections() {
		if s.Name() != "DEFAULT" {
			section = s
			break
		}
	}
	if section == nil || section.Name() != "Icon Theme" {
		return ThemeIndex{}, fmt.Errorf("%w: first section is not [Icon Theme]", ErrNotAnIconTheme)
	}

	nameKey, err := section.GetKey("Name")
	if err != nil {
		return ThemeIndex{}, fmt.Errorf("%w: Name", ErrMissingAttribute)
	}

	directoriesKey, err := section.GetKey("Directories")
	if err != nil {
		return ThemeIndex{}, fmt.Errorf("%w: Directories", ErrMissingAttribute)
	}
	directoryNames := splitCommaList(directoriesKey.String())

	// Comment is required by the XDG icon theme format, but most packaged
	// themes omit it. Tolerated here with an empty-string default so
	// real-world themes still parse.
	comment := ""
	if key, err := section.GetKey("Comment"); err == nil {
		comment = key.String()
	}

	var inherits []string
	if key, err := section.GetKey("Inherits"); err == nil {
		inherits = splitCommaList(key.String())
	}

	var scaledDirNames []string
	if key, err := section.GetKey("ScaledDirectories"); err == nil {
		scaledDirNames = splitCommaList(key.String())
	}

	hidden := false
	if key, err := section.GetKey("Hidden"); err == nil && key.String() != "" {
		b, err := key.Bool()
		if err != nil {
			return ThemeIndex{}, fmt.Errorf("%w: Hidden: %v", ErrParseBool, err)
		}
		hidden = b
	}

	example := ""
	if key, err := section.GetKey("Example"); err == nil {
		example = key.String()
	}

	isScaled := make(map[string]bool, len(scaledDirNames))
	for _, name := range scaledDirNames {
		isScaled[name] = true
	}

	wanted := make(map[string]bool, len(directoryNames)+len(scaledDirNames))
	for _, name := range directoryNames {
		wanted[name] = true
	}
	for _, name := range scaledDirNames {
		wanted[name] = true
	}

	var directories []DirectoryIndex
	for _, dirSection := range file.Sections() {
		title := dirSection.Name()
		if title == "DEFAULT" || title == "Icon Theme" || !wanted[title] {
			continue
		}

		dir, err := parseDirectoryIndex(dirSection, isScaled[title])
		if err != nil {
			return ThemeIndex{}, err
		}
		directories = append(directories, dir)
	}

	return ThemeIndex{
		Name:        nameKey.String(),
		Comment:     comment,
		Inherits:    inherits,
		Directories: directories,
		Hidden:      hidden,
		Example:     example,
	}, nil
}

func parseDirectoryIndex(section *ini.Section, isScaledDir bool) (DirectoryIndex, error) {
	sizeKey, err := section.GetKey("Size")
	if err != nil {
		return DirectoryIndex{}, fmt.Errorf("%w: Size (%s)", ErrMissingAttribute, section.Name())
	}
	size, err := sizeKey.Uint()
	if err != nil {
		return DirectoryIndex{}, fmt.Errorf("%w: Size: %v", ErrParseNum, err)
	}

	scale := uint32(1)
	if key, err := section.GetKey("Scale"); err == nil && key.String() != "" {
		v, err := key.Uint()
		if err != nil {
			return DirectoryIndex{}, fmt.Errorf("%w: Scale: %v", ErrParseNum, err)
		}
		scale = uint32(v)
	}

	dirType := Threshold
	if key, err := section.GetKey("Type"); err == nil && key.String() != "" {
		dirType, err = parseDirectoryType(key.String())
		if err != nil {
			return DirectoryIndex{}, err
		}
	}

	maxSize := uint32(size)
	if key, err := section.GetKey("MaxSize"); err == nil && key.String() != "" {
		v, err := key.Uint()
		if err != nil {
			return DirectoryIndex{}, fmt.Errorf("%w: MaxSize: %v", ErrParseNum, err)
		}
		maxSize = uint32(v)
	}

	minSize := uint32(size)
	if key, err := section.GetKey("MinSize"); err == nil && key.String() != "" {
		v, err := key.Uint()
		if err != nil {
			return DirectoryIndex{}, fmt.Errorf("%w: MinSize: %v", ErrParseNum, err)
		}
		minSize = uint32(v)
	}

	threshold := uint32(2)
	if key, err := section.GetKey("Threshold"); err == nil && key.String() != "" {
		v, err := key.Uint()
		if err != nil {
			return DirectoryIndex{}, fmt.Errorf("%w: Threshold: %v", ErrParseNum, err)
		}
		threshold = uint32(v)
	}

	context := ""
	if key, err := section.GetKey("Context"); err == nil {
		context = key.String()
	}

	return DirectoryIndex{
		DirectoryName: section.Name(),
		Size:          uint32(size),
		Scale:         scale,
		DirectoryType: dirType,
		MinSize:       minSize,
		MaxSize:       maxSize,
		Threshold:     threshold,
		Context:       context,
		// A directory listed in ScaledDirectories is flagged as scaled
		// even if Scale=1: informational only, the matching algorithm
		// keys on the numeric Scale field regardless.
		IsScaledDir: isScaledDir || scale != 1,
	}, nil
}

func splitCommaList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
