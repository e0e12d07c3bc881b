package output

import "github.com/temirov/lstree/internal/types"

// GlyphSet holds the four fixed-width fragments used to draw a tree.
type GlyphSet struct {
	Continuing string
	Last       string
	Vertical   string
	Blank      string
}

var (
	// UnicodeGlyphs draws the tree with box-drawing characters.
	UnicodeGlyphs = GlyphSet{
		Continuing: "├───",
		Last:       "└───",
		Vertical:   "│   ",
		Blank:      "    ",
	}
	// ASCIIGlyphs draws the tree with plain ASCII.
	ASCIIGlyphs = GlyphSet{
		Continuing: "|---",
		Last:       "\\---",
		Vertical:   "|   ",
		Blank:      "    ",
	}
)

// SelectGlyphs returns the glyph set requested by configuration.
func SelectGlyphs(configuration types.RenderConfiguration) GlyphSet {
	if configuration.UseASCIIGlyphs {
		return ASCIIGlyphs
	}
	return UnicodeGlyphs
}

func (glyphs GlyphSet) connector(isLast bool) string {
	if isLast {
		return glyphs.Last
	}
	return glyphs.Continuing
}

func (glyphs GlyphSet) padding(marker paddingMarker) string {
	if marker == paddingBar {
		return glyphs.Vertical
	}
	return glyphs.Blank
}
