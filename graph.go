package xdgicons

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HicolorThemeName is the internal name of the universally-required
// default theme, always added to the gathered theme set and appended to
// every other theme's inheritance chain when present on disk.
const HicolorThemeName = "hicolor"

var themeNameTitle = cases.Title(language.Und)

// ThemeGraph discovers theme descriptors (by name, recursing through
// Inherits) and resolves them into a table of ready-to-query Theme
// values, each holding its own deduplicated, BFS-ordered ancestor chain.
//
// Resolution gathers descriptors for every requested name (and hicolor),
// drops names that never produced a descriptor, computes one BFS chain
// per surviving theme, then builds Theme values recursively, parents
// first, so every parent exists before its child.
type ThemeGraph struct {
	search *SearchDirectories
}

// NewThemeGraph builds a ThemeGraph that discovers theme folder groups
// through search.
func NewThemeGraph(search *SearchDirectories) *ThemeGraph {
	return &ThemeGraph{search: search}
}

// Resolve gathers descriptors for every name in names (always including
// hicolor), drops names that never produced a descriptor, computes each
// surviving theme's inheritance chain, and returns a name -> *Theme
// table. A name with no on-disk descriptor (itself, or because its
// index.theme failed to parse) is silently absent from the result rather
// than causing an error.
func (g *ThemeGraph) Resolve(locations IconLocations, names []string) map[string]*Theme {
	gathered := make(map[string]*ThemeDescriptor)
	g.gather(locations, names, gathered)
	g.gather(locations, []string{HicolorThemeName}, gathered)

	// Drop names that gather couldn't resolve to a descriptor before the
	// surviving set is indexed, so an unresolved Inherits entry fails
	// resolveParentIndex's lookup outright instead of being admitted into
	// the chain and filtered out later.
	descriptors := make(map[string]*ThemeDescriptor, len(gathered))
	for name, descriptor := range gathered {
		if descriptor != nil {
			descriptors[name] = descriptor
		}
	}

	order := make([]string, 0, len(descriptors))
	index := make(map[string]int, len(descriptors))
	for name := range descriptors {
		index[name] = len(order)
		order = append(order, name)
	}

	chains := make([][]int, len(order))
	for i := range order {
		chains[i] = g.buildChain(i, order, index, descriptors)
	}

	built := make([]*Theme, len(order))
	for i := range order {
		g.buildTheme(i, chains, order, descriptors, built)
	}

	themes := make(map[string]*Theme, len(order))
	for i, name := range order {
		themes[name] = built[i]
	}
	return themes
}

// gather recursively resolves theme names into descriptors, memoizing in
// seen to avoid re-parsing the same index.theme twice. A name with no
// exact folder group is retried case-insensitively against the on-disk
// folder names and gathered under the folder's own name. A name that fails
// to resolve (no folder group, or no parseable index.theme) is recorded in
// seen with a nil descriptor rather than erroring.
func (g *ThemeGraph) gather(locations IconLocations, names []string, seen map[string]*ThemeDescriptor) {
	for _, name := range names {
		if _, ok := locations.ThemesDirectories[name]; !ok {
			for candidate := range locations.ThemesDirectories {
				if themeNameTitle.String(candidate) == themeNameTitle.String(name) {
					name = candidate
					break
				}
			}
		}

		if _, ok := seen[name]; ok {
			continue
		}

		folders, ok := locations.ThemesDirectories[name]
		if !ok {
			seen[name] = nil
			continue
		}

		descriptor, err := g.search.resolveThemeDescriptor(name, folders)
		if err != nil {
			seen[name] = nil
			continue
		}
		seen[name] = descriptor

		g.gather(locations, descriptor.Index.Inherits, seen)
	}
}

// resolveParentIndex maps a name from an Inherits list to its position in
// the surviving theme set. An exact match is tried first; failing that, a
// case-insensitive retry (grounded on MiracleOS-Team/libxdg-go's manual
// ToLower/ToUpper/Title fallback) tolerates packaging inconsistencies like
// Inherits=GNOME resolving against an on-disk gnome/ folder. Names that
// resolve neither way are skipped.
func resolveParentIndex(name string, index map[string]int) (int, bool) {
	if i, ok := index[name]; ok {
		return i, true
	}

	for candidate, i := range index {
		if candidate == name {
			continue
		}
		if themeNameTitle.String(candidate) == themeNameTitle.String(name) {
			return i, true
		}
	}

	return 0, false
}

// buildChain computes the deduplicated BFS ancestor chain for the theme at
// order[root]: start with [root], and for each visited node in turn
// append its Inherits entries that aren't already present, using a
// growing-cursor over the chain slice itself rather than a separate queue.
// hicolor, if present and not already reached, is appended last.
func (g *ThemeGraph) buildChain(root int, order []string, index map[string]int, descriptors map[string]*ThemeDescriptor) []int {
	chain := []int{root}
	inChain := map[int]bool{root: true}

	for cursor := 0; cursor < len(chain); cursor++ {
		descriptor := descriptors[order[chain[cursor]]]
		if descriptor == nil {
			continue
		}

		for _, parentName := range descriptor.Index.Inherits {
			parentIdx, ok := resolveParentIndex(parentName, index)
			if !ok || inChain[parentIdx] {
				continue
			}
			chain = append(chain, parentIdx)
			inChain[parentIdx] = true
		}
	}

	if hicolorIdx, ok := index[HicolorThemeName]; ok && !inChain[hicolorIdx] {
		chain = append(chain, hicolorIdx)
	}

	return chain
}

// buildTheme constructs the Theme at position i, recursively building any
// not-yet-built parents first. A sentinel (nil) slot in built guarantees
// each theme is constructed exactly once even when reached through
// multiple children's chains.
func (g *ThemeGraph) buildTheme(i int, chains [][]int, order []string, descriptors map[string]*ThemeDescriptor, built []*Theme) *Theme {
	if built[i] != nil {
		return built[i]
	}

	descriptor := descriptors[order[i]]
	if descriptor == nil {
		return nil
	}

	chain := chains[i]
	parents := make([]*Theme, 0, len(chain)-1)
	for _, parentIdx := range chain[1:] {
		if parent := g.buildTheme(parentIdx, chains, order, descriptors, built); parent != nil {
			parents = append(parents, parent)
		}
	}

	theme := &Theme{Descriptor: descriptor, Parents: parents}
	built[i] = theme
	return theme
}
