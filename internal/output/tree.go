// Package output renders materialized directory trees as connector-annotated text.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/temirov/lstree/internal/types"
)

const lineTerminator = "\n"

// paddingMarker records what to draw beneath an ancestor level.
type paddingMarker int

const (
	// paddingBlank marks an ancestor that was the last child at its level.
	paddingBlank paddingMarker = iota
	// paddingBar marks an ancestor that still has siblings after it.
	paddingBar
)

// TreeRenderer draws a tree depth-first, one line per node.
type TreeRenderer struct {
	Glyphs GlyphSet
}

// NewTreeRenderer returns a renderer using the glyph set chosen by configuration.
func NewTreeRenderer(configuration types.RenderConfiguration) *TreeRenderer {
	return &TreeRenderer{Glyphs: SelectGlyphs(configuration)}
}

// WriteTree writes every line of the rendered tree to writer, each terminated by a newline.
// The only errors returned come from writer.
func (renderer *TreeRenderer) WriteTree(writer io.Writer, rootNode *types.TreeNode) error {
	bufferedWriter := bufio.NewWriter(writer)
	var writeError error
	renderer.walk(rootNode, func(line string) {
		if writeError != nil {
			return
		}
		if _, writeError = bufferedWriter.WriteString(line); writeError != nil {
			return
		}
		_, writeError = bufferedWriter.WriteString(lineTerminator)
	})
	if writeError != nil {
		return writeError
	}
	return bufferedWriter.Flush()
}

// RenderLines returns the rendered lines without terminators.
func (renderer *TreeRenderer) RenderLines(rootNode *types.TreeNode) []string {
	lines := make([]string, 0, rootNode.CountNodes())
	renderer.walk(rootNode, func(line string) {
		lines = append(lines, line)
	})
	return lines
}

// RenderString returns the rendered tree as newline-terminated text.
func (renderer *TreeRenderer) RenderString(rootNode *types.TreeNode) string {
	var builder strings.Builder
	_ = renderer.WriteTree(&builder, rootNode)
	return builder.String()
}

// walk emits the root line and then every descendant in pre-order.
func (renderer *TreeRenderer) walk(rootNode *types.TreeNode, emit func(line string)) {
	if rootNode == nil {
		return
	}
	emit(rootNode.Name)
	paddingStack := make([]paddingMarker, 0, 16)
	renderer.walkChildren(rootNode, &paddingStack, emit)
}

// walkChildren emits the children of directoryNode. paddingStack holds one
// marker per non-root ancestor of those children.
func (renderer *TreeRenderer) walkChildren(directoryNode *types.TreeNode, paddingStack *[]paddingMarker, emit func(line string)) {
	childCount := len(directoryNode.Children)
	for childIndex, childNode := range directoryNode.Children {
		isLastChild := childIndex == childCount-1

		var lineBuilder strings.Builder
		for _, marker := range *paddingStack {
			lineBuilder.WriteString(renderer.Glyphs.padding(marker))
		}
		lineBuilder.WriteString(renderer.Glyphs.connector(isLastChild))
		lineBuilder.WriteString(childNode.Name)
		emit(lineBuilder.String())

		if !childNode.IsDirectory() || len(childNode.Children) == 0 {
			continue
		}

		marker := paddingBar
		if isLastChild {
			marker = paddingBlank
		}
		*paddingStack = append(*paddingStack, marker)
		renderer.walkChildren(childNode, paddingStack, emit)
		*paddingStack = (*paddingStack)[:len(*paddingStack)-1]
	}
}
