package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPath_CollapsesSeparators(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitPath("a/b"))
	assert.Equal(t, []string{"a", "b"}, SplitPath("//a//b/"))
	assert.Equal(t, []string{"a", "b"}, SplitPath("/a/b"))
	assert.Empty(t, SplitPath(""))
	assert.Empty(t, SplitPath("/"))
	assert.Empty(t, SplitPath("///"))
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		valid bool
	}{
		{"simple", "family", true},
		{"nested", "fruits/citrus/lemon", true},
		{"trailing separator", "fruits/citrus/", true},
		{"spaces allowed", "my docs", true},
		{"empty", "", false},
		{"colon", "a:b", false},
		{"asterisk", "a/b*c", false},
		{"question mark", "wh?t", false},
		{"quote", `say"so`, false},
		{"angle brackets", "a<b>c", false},
		{"pipe", "a|b", false},
		{"backslash", `a\b`, false},
		// pure-separator paths carry no segments and pass; callers
		// handle the root form specially
		{"bare root", "/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidatePath(tt.path), "path %q", tt.path)
		})
	}
}

func TestIsSubpath(t *testing.T) {
	assert.True(t, IsSubpath("a", "a/b"))
	assert.True(t, IsSubpath("a/b", "a/b/c/d"))
	assert.True(t, IsSubpath("a", "a//b/"), "separator noise must not matter")

	// equal paths are not strict subpaths
	assert.False(t, IsSubpath("a/b", "a/b"))
	assert.False(t, IsSubpath("a", "a/"))

	assert.False(t, IsSubpath("a/b", "a"))
	assert.False(t, IsSubpath("a/b", "a/c/b"))
	assert.False(t, IsSubpath("x", "a/b"))

	// a shared name prefix is not a segment prefix
	assert.False(t, IsSubpath("ab", "abc/d"))
}

func TestSamePath(t *testing.T) {
	assert.True(t, SamePath("a/b", "a//b/"))
	assert.True(t, SamePath("", "/"))
	assert.False(t, SamePath("a", "a/b"))
	assert.False(t, SamePath("a", "b"))
}

func TestExpandPathList_NoComma(t *testing.T) {
	assert.Equal(t, []string{"fruits/citrus"}, ExpandPathList("fruits/citrus"))
	assert.Equal(t, []string{""}, ExpandPathList(""))
}

func TestExpandPathList_RootLevel(t *testing.T) {
	// comma before any separator splits into independent paths
	assert.Equal(t, []string{"fruits", "family"}, ExpandPathList("fruits,family"))
	assert.Equal(t, []string{"x", "y/z"}, ExpandPathList("x,y/z"))
	assert.Equal(t, []string{"a", "b", "c"}, ExpandPathList("a, b ,c"))
}

func TestExpandPathList_SharedBase(t *testing.T) {
	// comma after a separator names siblings under one parent
	assert.Equal(t,
		[]string{"fruits/citrus/lemon", "fruits/citrus/lime"},
		ExpandPathList("fruits/citrus/lemon,lime"))
	assert.Equal(t,
		[]string{"a/b/x", "a/b/y", "a/b/z"},
		ExpandPathList("a/b/x, y ,z"))
}

func TestExpandPathList_DropsEmptyEntries(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ExpandPathList("a,,b,"))
	assert.Equal(t, []string{"a/b/c"}, ExpandPathList("a/b/c,, "))
}
