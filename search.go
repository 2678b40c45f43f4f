package xdgicons

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// IconLocations is the result of one filesystem sweep of a set of base
// directories: the standalone icons living directly in a base directory,
// and a map from theme internal name to every base-directory folder that
// contains a subfolder with that name.
type IconLocations struct {
	StandaloneIcons   []IconFile
	ThemesDirectories map[string][]string
}

// SearchDirectories enumerates a fixed, ordered list of base directories
// and partitions their immediate contents into standalone icon files and
// per-theme-name folder groups. FindIconLocations never inspects a theme's
// own index.theme; resolveThemeDescriptor reads it once ThemeGraph asks
// for a folder group.
type SearchDirectories struct {
	fs       afero.Fs
	baseDirs []string
	log      *zerolog.Logger
}

// NewSearchDirectories builds a SearchDirectories over fs, searching
// baseDirs in the given order.
func NewSearchDirectories(fs afero.Fs, baseDirs []string, log *zerolog.Logger) *SearchDirectories {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &SearchDirectories{fs: fs, baseDirs: baseDirs, log: log}
}

func (s *SearchDirectories) logf() *zerolog.Logger {
	if s.log != nil {
		return s.log
	}
	nop := zerolog.Nop()
	return &nop
}

// FindIconLocations walks every base directory exactly once, in order,
// splitting each directory's immediate children into standalone icon
// files (recognized extension, not a folder) and theme folder groups (any
// subdirectory, regardless of whether it turns out to hold an
// index.theme — that determination happens later, in ThemeGraph).
func (s *SearchDirectories) FindIconLocations() IconLocations {
	locations := IconLocations{
		ThemesDirectories: make(map[string][]string),
	}

	for _, base := range s.baseDirs {
		entries, err := afero.ReadDir(s.fs, base)
		if err != nil {
			s.logf().Debug().Str("dir", base).Err(err).Msg("skipping unreadable base directory")
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			full := filepath.Join(base, name)

			if entry.IsDir() {
				locations.ThemesDirectories[name] = append(locations.ThemesDirectories[name], full)
				continue
			}

			if icon, ok := newIconFile(full); ok {
				locations.StandaloneIcons = append(locations.StandaloneIcons, icon)
			}
		}
	}

	return locations
}

// resolveThemeDescriptor loads and parses a single theme's index.theme,
// given the ordered list of base-directory folders that claim its
// internal name. The first folder with a readable index.theme wins (if
// that file fails to parse, its error is returned and later folders are
// not tried); all
// folders are retained in the resulting ThemeDescriptor for the later
// icon-file scan.
func (s *SearchDirectories) resolveThemeDescriptor(internalName string, folders []string) (*ThemeDescriptor, error) {
	for _, folder := range folders {
		indexPath := filepath.Join(folder, "index.theme")

		raw, err := afero.ReadFile(s.fs, indexPath)
		if err != nil {
			continue
		}

		index, err := parseThemeIndex(raw)
		if err != nil {
			s.logf().Debug().Str("theme", internalName).Str("index", indexPath).Err(err).
				Msg("failed to parse index.theme, theme dropped")
			return nil, err
		}

		return &ThemeDescriptor{
			InternalName:  internalName,
			BaseDirs:      folders,
			IndexLocation: indexPath,
			Index:         index,
			fs:            s.fs,
		}, nil
	}

	return nil, ErrNotAnIconTheme
}
