package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AntoineGaton/dirman/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Tree_Glyphs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	// a
	// ├── x
	// │   └── deep
	// └── y
	// b
	p.Tree([]core.ListEntry{
		{Depth: 0, Name: "a", IsLast: false},
		{Depth: 1, Name: "x", IsLast: false},
		{Depth: 2, Name: "deep", IsLast: true},
		{Depth: 1, Name: "y", IsLast: true},
		{Depth: 0, Name: "b", IsLast: true},
	})

	expected := strings.Join([]string{
		"List",
		"├── a",
		"│   ├── x",
		"│   │   └── deep",
		"│   └── y",
		"└── b",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestPrinter_Tree_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Tree(nil)

	assert.Equal(t, "List\n", buf.String(), "empty tree renders only the header")
}

func TestPrinter_Tree_ClosedBranchIndent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	// a last sibling's descendants get blank rail, not a continued one
	p.Tree([]core.ListEntry{
		{Depth: 0, Name: "only", IsLast: true},
		{Depth: 1, Name: "child", IsLast: true},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "└── only", lines[1])
	assert.Equal(t, "    └── child", lines[2])
}

func TestPrinter_ColorToggle(t *testing.T) {
	var plain, colored bytes.Buffer

	NewPrinter(&plain, false).Success("done")
	NewPrinter(&colored, true).Success("done")

	assert.Equal(t, "done\n", plain.String())
	assert.Equal(t, "\033[32mdone\033[0m\n", colored.String())
	assert.NotContains(t, plain.String(), "\033[")
}

func TestPrinter_Rule(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Rule()

	assert.Equal(t, strings.Repeat("=", 80)+"\n", buf.String())
}
