package xdgicons

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// extensions is the fixed candidate order used by every lookup pass:
// png wins over xpm, which wins over svg.
var extensions = [...]FileType{Png, Xpm, Svg}

// symbolicContexts are the directory names searched as a last resort for
// icons whose name ends in "-symbolic", when no themed directory produced
// a hit. Real themes (Adwaita-derived ones especially) depend on this
// fallback even though it has no declared index.theme directory entry.
var symbolicContexts = [...]string{
	"symbolic",
	"symbolic/actions",
	"symbolic/apps",
	"symbolic/devices",
	"symbolic/status",
	"symbolic/categories",
	"symbolic/emblems",
	"symbolic/mimetypes",
}

// ThemeDescriptor is a theme's identity and parsed index, prior to having
// its inheritance chain resolved into a Theme.
type ThemeDescriptor struct {
	InternalName  string
	BaseDirs      []string
	IndexLocation string
	Index         ThemeIndex

	fs afero.Fs

	dirCacheMu sync.Mutex
	dirCache   map[string]map[string]bool
}

func candidateFileName(iconName string, ext FileType) string {
	return iconName + "." + ext.String()
}

// exists reports whether path is present, backed by a per-directory
// listing cache built once per directory on first probe: a lookup pass
// tries several candidate extensions against the same directory, and
// without this a three-extension probe costs three stats instead of one
// ReadDir. The cache is never invalidated against mtimes — a
// ThemeDescriptor reflects the filesystem as it was at discovery time for
// its whole lifetime, consistent with entities being built once by a
// discovery pass and queried read-only thereafter.
func (d *ThemeDescriptor) exists(path string) bool {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	d.dirCacheMu.Lock()
	defer d.dirCacheMu.Unlock()

	if d.dirCache == nil {
		d.dirCache = make(map[string]map[string]bool)
	}

	entries, ok := d.dirCache[dir]
	if !ok {
		entries = make(map[string]bool)
		if infos, err := afero.ReadDir(d.fs, dir); err == nil {
			for _, info := range infos {
				entries[info.Name()] = true
			}
		}
		d.dirCache[dir] = entries
	}

	return entries[base]
}

// Theme is a theme ready to be queried: its own descriptor plus the
// already-built parent chain computed by ThemeGraph.Resolve.
type Theme struct {
	Descriptor *ThemeDescriptor
	Parents    []*Theme
}

// FindIcon looks up iconName at (size, scale) in this theme; if absent,
// tries each entry of Parents in order and returns the first hit. Because
// Parents is a deduplicated chain (ThemeGraph.Resolve's job), no ancestor
// is ever visited twice.
func (t *Theme) FindIcon(iconName string, size, scale uint32) (IconFile, bool) {
	if icon, ok := t.findIconHere(iconName, size, scale); ok {
		return icon, true
	}

	for _, parent := range t.Parents {
		if icon, ok := parent.findIconHere(iconName, size, scale); ok {
			return icon, true
		}
	}

	return IconFile{}, false
}

// findIconHere runs the two-pass, single-theme lookup algorithm: an
// exact-size-match pass across every base directory and matching
// subdirectory, then (only if that fails) a nearest-size fallback. A
// trailing symbolic-icon pass covers -symbolic names that neither pass
// resolved.
func (t *Theme) findIconHere(iconName string, size, scale uint32) (IconFile, bool) {
	d := t.Descriptor

	// Pass 1: exact match.
	for _, base := range d.BaseDirs {
		for _, dir := range d.Index.Directories {
			if !dir.matchesSize(size, scale) {
				continue
			}
			for _, ext := range extensions {
				path := filepath.Join(base, dir.DirectoryName, candidateFileName(iconName, ext))
				if d.exists(path) {
					if icon, ok := newIconFile(path); ok {
						return icon, true
					}
				}
			}
		}
	}

	// Pass 2: nearest match.
	minDist := ^uint32(0)
	var best IconFile
	found := false

	for _, base := range d.BaseDirs {
		for _, dir := range d.Index.Directories {
			distance := dir.sizeDistance(size, scale)
			if distance >= minDist {
				continue
			}
			for _, ext := range extensions {
				path := filepath.Join(base, dir.DirectoryName, candidateFileName(iconName, ext))
				if d.exists(path) {
					if icon, ok := newIconFile(path); ok {
						minDist = distance
						best = icon
						found = true
						break
					}
				}
			}
		}
	}

	if found {
		return best, true
	}

	if strings.HasSuffix(iconName, "-symbolic") {
		if icon, ok := t.findSymbolicIcon(iconName); ok {
			return icon, true
		}
	}

	return IconFile{}, false
}

// findSymbolicIcon is the last-resort pass: it checks symbolic/<context>
// directories that exist on disk (whether or not index.theme declares
// them) and a <name>.symbolic.png convention inside the theme's declared
// directories.
func (t *Theme) findSymbolicIcon(iconName string) (IconFile, bool) {
	d := t.Descriptor

	for _, base := range d.BaseDirs {
		for _, ctx := range symbolicContexts {
			for _, ext := range extensions {
				path := filepath.Join(base, ctx, candidateFileName(iconName, ext))
				if d.exists(path) {
					if icon, ok := newIconFile(path); ok {
						return icon, true
					}
				}
			}
		}

		for _, dir := range d.Index.Directories {
			path := filepath.Join(base, dir.DirectoryName, iconName+".symbolic.png")
			if d.exists(path) {
				if icon, ok := newIconFile(path); ok {
					return icon, true
				}
			}
		}
	}

	return IconFile{}, false
}
