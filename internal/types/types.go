// Package types defines every cross‑package data structure used by the lstree CLI.
package types

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	// UnlimitedDepth disables the traversal depth limit.
	UnlimitedDepth = -1
)

// TreeNode is one node of a materialized directory tree. Files are leaves;
// directories own their children in the order the builder attached them.
type TreeNode struct {
	Name     string
	Type     string
	Children []*TreeNode
}

// NewFileNode returns a leaf node.
func NewFileNode(name string) *TreeNode {
	return &TreeNode{Name: name, Type: NodeTypeFile}
}

// NewDirectoryNode returns a directory node owning the provided children.
// A nil children slice is stored as an empty one.
func NewDirectoryNode(name string, children []*TreeNode) *TreeNode {
	if children == nil {
		children = []*TreeNode{}
	}
	return &TreeNode{Name: name, Type: NodeTypeDirectory, Children: children}
}

// IsDirectory reports whether the node is a directory.
func (node *TreeNode) IsDirectory() bool {
	return node != nil && node.Type == NodeTypeDirectory
}

// CountNodes returns the number of nodes in the subtree rooted at node, node included.
func (node *TreeNode) CountNodes() int {
	if node == nil {
		return 0
	}
	total := 1
	for _, child := range node.Children {
		total += child.CountNodes()
	}
	return total
}

// ChildNames lists the names of the direct children in order.
func (node *TreeNode) ChildNames() []string {
	if node == nil {
		return nil
	}
	names := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		names = append(names, child.Name)
	}
	return names
}

// FilterConfiguration is the resolved traversal policy for the tree builder.
type FilterConfiguration struct {
	IncludeHidden bool
	// MaxDepth is UnlimitedDepth or a non-negative level. Zero keeps the root unexpanded.
	MaxDepth    int
	SortEntries bool
}

// DefaultFilterConfiguration returns the policy used when nothing is configured.
func DefaultFilterConfiguration() FilterConfiguration {
	return FilterConfiguration{MaxDepth: UnlimitedDepth}
}

// AllowsDepth reports whether entries at the given depth may be listed.
func (configuration FilterConfiguration) AllowsDepth(depth int) bool {
	return configuration.MaxDepth < 0 || depth <= configuration.MaxDepth
}

// RenderConfiguration selects the connector glyph set.
type RenderConfiguration struct {
	UseASCIIGlyphs bool
}
