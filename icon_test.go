package xdgicons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIconFileRecognizedExtensions(t *testing.T) {
	tests := []struct {
		path     string
		wantType FileType
		wantStem string
	}{
		{"/usr/share/icons/hicolor/48x48/apps/firefox.png", Png, "firefox"},
		{"/usr/share/icons/hicolor/scalable/apps/firefox.SVG", Svg, "firefox"},
		{"/usr/share/pixmaps/legacy.xpm", Xpm, "legacy"},
	}

	for _, tt := range tests {
		icon, ok := newIconFile(tt.path)
		assert.True(t, ok, tt.path)
		assert.Equal(t, tt.wantType, icon.FileType)
		assert.Equal(t, tt.wantStem, icon.Stem)
		assert.Equal(t, tt.path, icon.Path)
	}
}

func TestNewIconFileRejectsUnknownExtensions(t *testing.T) {
	for _, path := range []string{"/usr/share/icons/hicolor/index.theme", "/usr/share/pixmaps/readme", "/usr/share/pixmaps/icon.gif"} {
		_, ok := newIconFile(path)
		assert.False(t, ok, path)
	}
}

func TestFileTypeString(t *testing.T) {
	assert.Equal(t, "png", Png.String())
	assert.Equal(t, "xpm", Xpm.String())
	assert.Equal(t, "svg", Svg.String())
}
