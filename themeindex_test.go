package xdgicons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const birchTheme = `[Icon Theme]
Name=Birch
Comment=Icon theme with a wooden look
Inherits=wood,default
Directories=scalable/apps,16x16/apps,22x22/apps,32x32/apps,48x48/apps,scalable/actions,symbolic/actions

[scalable/apps]
Size=48
Type=Scalable
MinSize=1
MaxSize=256
Context=Applications

[16x16/apps]
Size=16
Context=Applications

[22x22/apps]
Size=22
Context=Applications

[32x32/apps]
Size=32
Context=Applications

[48x48/apps]
Size=48
Context=Applications

[scalable/actions]
Size=48
Type=Scalable
MinSize=1
MaxSize=512
Context=Actions

[symbolic/actions]
Size=16
Context=Actions
`

func TestParseThemeIndexKnownFile(t *testing.T) {
	index, err := parseThemeIndex([]byte(birchTheme))
	require.NoError(t, err)

	assert.Equal(t, "Birch", index.Name)
	assert.Equal(t, "Icon theme with a wooden look", index.Comment)
	assert.Equal(t, []string{"wood", "default"}, index.Inherits)
	require.Len(t, index.Directories, 7)
	assert.False(t, index.Hidden)
	assert.Equal(t, "", index.Example)

	first := index.Directories[0]
	assert.Equal(t, "scalable/apps", first.DirectoryName)
	assert.False(t, first.IsScaledDir)
	assert.Equal(t, uint32(48), first.Size)
	assert.Equal(t, uint32(1), first.Scale)
	assert.Equal(t, "Applications", first.Context)
	assert.Equal(t, Scalable, first.DirectoryType)
	assert.Equal(t, uint32(256), first.MaxSize)
	assert.Equal(t, uint32(1), first.MinSize)
	assert.Equal(t, uint32(2), first.Threshold)
}

func TestParseThemeIndexToleratesMissingComment(t *testing.T) {
	withoutComment := `[Icon Theme]
Name=Birch
Inherits=wood,default
Directories=scalable/apps

[scalable/apps]
Size=48
Type=Scalable
`
	index, err := parseThemeIndex([]byte(withoutComment))
	require.NoError(t, err)
	assert.Equal(t, "", index.Comment)
}

func TestParseThemeIndexMissingName(t *testing.T) {
	noName := `[Icon Theme]
Comment=no name here
Directories=foo

[foo]
Size=16
`
	_, err := parseThemeIndex([]byte(noName))
	assert.ErrorIs(t, err, ErrMissingAttribute)
}

func TestParseThemeIndexMissingDirectories(t *testing.T) {
	noDirectories := `[Icon Theme]
Name=Incomplete
`
	_, err := parseThemeIndex([]byte(noDirectories))
	assert.ErrorIs(t, err, ErrMissingAttribute)
}

func TestParseThemeIndexUnknownDirectoryType(t *testing.T) {
	bogusType := `[Icon Theme]
Name=Bogus
Directories=foo

[foo]
Size=16
Type=Bogus
`
	_, err := parseThemeIndex([]byte(bogusType))
	assert.ErrorIs(t, err, ErrInvalidDirectoryType)
}

func TestParseThemeIndexTolerantDirectoryTypeCasing(t *testing.T) {
	lowercaseType := `[Icon Theme]
Name=Casing
Directories=foo

[foo]
Size=16
Type=fixed
`
	index, err := parseThemeIndex([]byte(lowercaseType))
	require.NoError(t, err)
	require.Len(t, index.Directories, 1)
	assert.Equal(t, Fixed, index.Directories[0].DirectoryType)
}

func TestParseThemeIndexUnknownSectionsDropped(t *testing.T) {
	withExtra := `[Icon Theme]
Name=Minimal
Directories=foo

[foo]
Size=16

[bar]
Size=32
`
	index, err := parseThemeIndex([]byte(withExtra))
	require.NoError(t, err)
	require.Len(t, index.Directories, 1)
	assert.Equal(t, "foo", index.Directories[0].DirectoryName)
}

func TestParseThemeIndexScaledDirectoriesMarkedEvenAtScaleOne(t *testing.T) {
	scaled := `[Icon Theme]
Name=Scaled
Directories=foo
ScaledDirectories=foo

[foo]
Size=16
Scale=1
`
	index, err := parseThemeIndex([]byte(scaled))
	require.NoError(t, err)
	require.Len(t, index.Directories, 1)
	assert.True(t, index.Directories[0].IsScaledDir)
	assert.Equal(t, uint32(1), index.Directories[0].Scale)
}

func TestDirectoryIndexMatchesSize(t *testing.T) {
	fixed := DirectoryIndex{DirectoryType: Fixed, Size: 48, Scale: 1}
	assert.True(t, fixed.matchesSize(48, 1))
	assert.False(t, fixed.matchesSize(47, 1))
	assert.False(t, fixed.matchesSize(48, 2))

	scalable := DirectoryIndex{DirectoryType: Scalable, MinSize: 16, MaxSize: 256, Scale: 1}
	assert.True(t, scalable.matchesSize(16, 1))
	assert.True(t, scalable.matchesSize(256, 1))
	assert.False(t, scalable.matchesSize(15, 1))
	assert.False(t, scalable.matchesSize(257, 1))

	threshold := DirectoryIndex{DirectoryType: Threshold, Size: 32, Threshold: 4, Scale: 1}
	assert.True(t, threshold.matchesSize(28, 1))
	assert.True(t, threshold.matchesSize(36, 1))
	assert.False(t, threshold.matchesSize(27, 1))
	assert.False(t, threshold.matchesSize(37, 1))
}

func TestDirectoryIndexSizeDistanceZeroWhenMatches(t *testing.T) {
	threshold := DirectoryIndex{DirectoryType: Threshold, Size: 32, Threshold: 4, MinSize: 32, MaxSize: 32, Scale: 1}
	for _, size := range []uint32{28, 30, 32, 34, 36} {
		require.True(t, threshold.matchesSize(size, 1))
		assert.Equal(t, uint32(0), threshold.sizeDistance(size, 1))
	}
}

func TestDirectoryIndexSizeDistanceDoesNotUnderflow(t *testing.T) {
	// Size smaller than Threshold: the lower bound would be negative in
	// unsigned arithmetic without saturation.
	threshold := DirectoryIndex{DirectoryType: Threshold, Size: 2, Threshold: 8, MinSize: 2, MaxSize: 2, Scale: 1}
	assert.NotPanics(t, func() {
		threshold.sizeDistance(64, 1)
	})
}

func TestFixedSizeDistance(t *testing.T) {
	fixed := DirectoryIndex{DirectoryType: Fixed, Size: 32, Scale: 1}
	assert.Equal(t, uint32(16), fixed.sizeDistance(48, 1))
	assert.Equal(t, uint32(0), fixed.sizeDistance(32, 1))
}
