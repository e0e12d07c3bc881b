package types_test

import (
	"reflect"
	"testing"

	"github.com/temirov/lstree/internal/types"
)

func TestTreeNodeQueries(t *testing.T) {
	rootNode := types.NewDirectoryNode(".", []*types.TreeNode{
		types.NewFileNode("a"),
		types.NewDirectoryNode("b", []*types.TreeNode{types.NewFileNode("c")}),
		types.NewDirectoryNode("d", nil),
	})

	if rootNode.CountNodes() != 5 {
		t.Fatalf("expected 5 nodes, got %d", rootNode.CountNodes())
	}
	if names := rootNode.ChildNames(); !reflect.DeepEqual(names, []string{"a", "b", "d"}) {
		t.Fatalf("unexpected child names %v", names)
	}
	if rootNode.Children[0].IsDirectory() || !rootNode.Children[2].IsDirectory() {
		t.Fatalf("unexpected node kinds")
	}
	if rootNode.Children[2].Children == nil {
		t.Fatalf("expected empty, non-nil children for directory")
	}

	var missing *types.TreeNode
	if missing.CountNodes() != 0 || missing.IsDirectory() || missing.ChildNames() != nil {
		t.Fatalf("expected nil node to be empty")
	}
}

func TestFilterConfigurationAllowsDepth(t *testing.T) {
	testCases := []struct {
		name     string
		maxDepth int
		depth    int
		expected bool
	}{
		{name: "unlimited", maxDepth: types.UnlimitedDepth, depth: 100, expected: true},
		{name: "zero_blocks_first_level", maxDepth: 0, depth: 1, expected: false},
		{name: "within_limit", maxDepth: 2, depth: 2, expected: true},
		{name: "beyond_limit", maxDepth: 2, depth: 3, expected: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			filter := types.FilterConfiguration{MaxDepth: testCase.maxDepth}
			if allowed := filter.AllowsDepth(testCase.depth); allowed != testCase.expected {
				t.Fatalf("AllowsDepth(%d) with max %d: expected %t, got %t", testCase.depth, testCase.maxDepth, testCase.expected, allowed)
			}
		})
	}
	if types.DefaultFilterConfiguration().MaxDepth != types.UnlimitedDepth {
		t.Fatalf("expected unlimited default depth")
	}
}
