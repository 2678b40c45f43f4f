package xdgicons

import "errors"

// Error kinds surfaced by explicit theme-description calls. Errors
// encountered while discovering a single theme candidate (see ThemeGraph)
// are recovered locally and never reach the caller; a missing icon from
// a lookup is reported as "not found," never as one of these.
var (
	// ErrNotAnIconTheme is returned when no index.theme was found among a
	// theme's candidate folders, or its first section isn't [Icon Theme].
	ErrNotAnIconTheme = errors.New("xdgicons: not an icon theme")

	// ErrMissingAttribute is returned when a required key (Name,
	// Directories, or a directory section's Size) is absent.
	ErrMissingAttribute = errors.New("xdgicons: missing required attribute")

	// ErrInvalidDirectoryType is returned when a directory section's Type
	// is present but not one of Fixed, Scalable, or Threshold.
	ErrInvalidDirectoryType = errors.New("xdgicons: invalid directory type")

	// ErrParseNum is returned when a numeric attribute fails to parse.
	ErrParseNum = errors.New("xdgicons: failed to parse numeric attribute")

	// ErrParseBool is returned when a boolean attribute fails to parse.
	ErrParseBool = errors.New("xdgicons: failed to parse boolean attribute")
)
