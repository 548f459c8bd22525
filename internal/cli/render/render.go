// Package render turns engine results into terminal output: colorized
// status lines and the branch-glyph tree view.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntoineGaton/dirman/internal/core"
)

// ANSI escape codes for terminal colors.
const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// Branch glyphs for tree rendering. A last sibling closes its branch; an
// earlier one continues the rail down to the next entry.
const (
	glyphBranch = "├── "
	glyphLast   = "└── "
	railCont    = "│   "
	railBlank   = "    "
)

// ruleWidth is the width of the section separator rule.
const ruleWidth = 80

// Printer writes rendered engine output to a writer, optionally colorized.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{out: out, color: color}
}

func (p *Printer) paint(text, color string) string {
	if !p.color {
		return text
	}
	return color + text + ansiReset
}

func (p *Printer) line(color, format string, args ...any) {
	fmt.Fprintln(p.out, p.paint(fmt.Sprintf(format, args...), color))
}

// Success prints a green status line.
func (p *Printer) Success(format string, args ...any) {
	p.line(ansiGreen, format, args...)
}

// Error prints a red status line.
func (p *Printer) Error(format string, args ...any) {
	p.line(ansiRed, format, args...)
}

// Warn prints a yellow status line.
func (p *Printer) Warn(format string, args ...any) {
	p.line(ansiYellow, format, args...)
}

// Plain prints an uncolored line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Rule prints the section separator.
func (p *Printer) Rule() {
	fmt.Fprintln(p.out, strings.Repeat("=", ruleWidth))
}

// Tree renders listing rows as an indented branch diagram. Rows arrive in
// depth-first pre-order with sibling flags; depth never jumps by more than
// one, so a stack of "ancestor was last" markers yields each row's rail.
func (p *Printer) Tree(entries []core.ListEntry) {
	p.line(ansiCyan, "List")

	rails := make([]bool, 0, 8)
	for _, e := range entries {
		rails = rails[:e.Depth]

		var prefix strings.Builder
		for _, last := range rails {
			if last {
				prefix.WriteString(railBlank)
			} else {
				prefix.WriteString(railCont)
			}
		}

		glyph := glyphBranch
		if e.IsLast {
			glyph = glyphLast
		}
		fmt.Fprintln(p.out, prefix.String()+p.paint(glyph+e.Name, ansiCyan))

		rails = append(rails, e.IsLast)
	}
}

const banner = `
     _ _
  __| (_)_ __ _ __ ___   __ _ _ __
 / _` + "`" + ` | | '__| '_ ` + "`" + ` _ \ / _` + "`" + ` | '_ \
| (_| | | |  | | | | | | (_| | | | |
 \__,_|_|_|  |_| |_| |_|\__,_|_| |_|
`

// Banner prints the startup banner and welcome header.
func (p *Printer) Banner() {
	fmt.Fprint(p.out, p.paint(banner, ansiCyan))
	p.Rule()
	p.Plain("\t\t\tWelcome to the Directory Manager")
	p.Rule()
}

// Menu prints the numbered command menu.
func (p *Printer) Menu() {
	p.Plain("1. %s", p.paint("Create Directory", ansiGreen))
	p.Plain("2. %s", p.paint("Delete Directory", ansiRed))
	p.Plain("3. %s", p.paint("Move Directory", ansiYellow))
	p.Plain("4. %s", p.paint("List Directories", ansiCyan))
	p.Plain("5. %s", p.paint("Help", ansiCyan))
	p.Plain("6. %s", p.paint("Exit", ansiRed))
	p.Rule()
}

// Help prints usage details for every command.
func (p *Printer) Help() {
	p.Rule()
	p.Plain("\t\t\t\tHelp Menu")
	p.Rule()
	p.Success("Create (c) - Create a new directory")
	p.Plain("  Usage: 'c family' or 'c' then enter path")
	p.Plain("  Multiple directories:")
	p.Plain("    - Root level: 'c fruits,family,number'")
	p.Plain("    - Nested level: 'c fruits/citrus/lemon,lime,orange'")
	p.Plain("")
	p.Error("Delete (d) - Remove a directory")
	p.Plain("  Usage: 'd family' or 'd' then enter path")
	p.Plain("")
	p.Warn("Move (m) - Move a directory to a new location")
	p.Plain("  Usage: 'm source destination' or 'm source' then enter destination")
	p.Plain("")
	p.line(ansiCyan, "List (l) - Show all directories")
	p.Plain("")
	p.line(ansiCyan, "Help (h) - Show this help message")
	p.Plain("")
	p.Error("Exit (e) - Exit the program")
	p.Rule()
}
