package xdgicons

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Config configures Icons discovery. Every field is optional; a zero
// Config reproduces the XDG-specified default search behavior.
type Config struct {
	// Fs is the filesystem to search. Defaults to afero.NewOsFs().
	Fs afero.Fs

	// BaseDirs overrides the ordered list of base directories to search.
	// Defaults to DefaultBaseDirs().
	BaseDirs []string

	// Logger receives debug-level notices about recovered per-theme
	// parse errors. A nil logger is a silent no-op.
	Logger *zerolog.Logger
}

// Icons is the top-level, read-only facade produced by a discovery pass:
// every standalone icon found outside a theme, and every theme reachable
// from the discovered folder groups, each with its inheritance chain
// already resolved.
type Icons struct {
	standaloneIcons []IconFile
	themes          map[string]*Theme
}

// New performs synchronous discovery using the XDG-specified default
// search directories and returns the resulting facade.
func New() *Icons {
	return NewWithConfig(Config{})
}

// NewWithConfig performs synchronous discovery per cfg.
func NewWithConfig(cfg Config) *Icons {
	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	baseDirs := cfg.BaseDirs
	if baseDirs == nil {
		baseDirs = DefaultBaseDirs()
	}

	search := NewSearchDirectories(fs, baseDirs, cfg.Logger)
	locations := search.FindIconLocations()

	graph := NewThemeGraph(search)
	themeNames := make([]string, 0, len(locations.ThemesDirectories))
	for name := range locations.ThemesDirectories {
		themeNames = append(themeNames, name)
	}

	return &Icons{
		standaloneIcons: locations.StandaloneIcons,
		themes:          graph.Resolve(locations, themeNames),
	}
}

// Theme returns the resolved Theme with the given internal name, if any
// theme by that name was discovered on disk.
func (ic *Icons) Theme(name string) (*Theme, bool) {
	t, ok := ic.themes[name]
	return t, ok
}

// FindDefaultIcon is FindIcon with themeName fixed to "hicolor".
func (ic *Icons) FindDefaultIcon(iconName string, size, scale uint32) (IconFile, bool) {
	return ic.FindIcon(iconName, size, scale, HicolorThemeName)
}

// FindIcon resolves iconName at (size, scale) within themeName's
// inheritance chain: an unknown theme name falls back to hicolor. If
// hicolor is unknown too, FindIcon returns no icon — it never falls
// through to the standalone icons in that case. Only once a theme
// (requested or hicolor) was actually found and its own FindIcon missed
// does the standalone search (icons outside any theme, matched by file
// stem) run.
func (ic *Icons) FindIcon(iconName string, size, scale uint32, themeName string) (IconFile, bool) {
	theme, ok := ic.themes[themeName]
	if !ok {
		theme, ok = ic.themes[HicolorThemeName]
	}
	if !ok {
		return IconFile{}, false
	}

	if icon, ok := theme.FindIcon(iconName, size, scale); ok {
		return icon, true
	}

	return ic.findStandaloneIcon(iconName)
}

// FindBestIcon tries each name in iconNames, in order, against themeName's
// chain before moving on to the next, then falls back to standalone
// icons using the same name order. Useful for XDG desktop entries that
// list a preferred icon name followed by a generic one. As with
// FindIcon, if neither themeName nor hicolor resolves to a theme, it
// returns no icon without touching the standalone fallback.
func (ic *Icons) FindBestIcon(iconNames []string, size, scale uint32, themeName string) (IconFile, bool) {
	theme, ok := ic.themes[themeName]
	if !ok {
		theme, ok = ic.themes[HicolorThemeName]
	}
	if !ok {
		return IconFile{}, false
	}

	for _, name := range iconNames {
		if icon, found := theme.FindIcon(name, size, scale); found {
			return icon, true
		}
	}

	for _, name := range iconNames {
		if icon, found := ic.findStandaloneIcon(name); found {
			return icon, true
		}
	}

	return IconFile{}, false
}

func (ic *Icons) findStandaloneIcon(iconName string) (IconFile, bool) {
	for _, icon := range ic.standaloneIcons {
		if icon.Stem == iconName {
			return icon, true
		}
	}
	return IconFile{}, false
}
