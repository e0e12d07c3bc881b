// Package commands contains the tree builder that materializes a directory subtree.
package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/lstree/internal/types"
	"github.com/temirov/lstree/internal/utils"
)

const (
	// firstChildDepth is the depth of the root's immediate children.
	firstChildDepth = 1
	// readAllEntries asks Readdirnames for every entry in one call.
	readAllEntries = -1

	debugSkipHiddenMessage     = "skipping hidden entry"
	debugDepthCappedMessage    = "depth limit reached, directory not expanded"
	debugRootUnexpandedMessage = "depth limit is zero, root not expanded"
	pathFieldName              = "path"
	depthFieldName             = "depth"
)

// BuildTree walks rootDirectoryPath and returns the fully materialized tree.
// The root node is named by rootDirectoryPath as given. Any filesystem failure
// aborts the build with an *IOError and no partial tree.
func (treeBuilder *TreeBuilder) BuildTree(rootDirectoryPath string) (*types.TreeNode, error) {
	rootInfo, rootStatError := treeBuilder.FileSystem.Stat(rootDirectoryPath)
	if rootStatError != nil {
		return nil, &IOError{Path: rootDirectoryPath, Err: unwrapPathError(rootStatError)}
	}
	if !rootInfo.IsDir() {
		return nil, &IOError{Path: rootDirectoryPath, Err: ErrNotDirectory}
	}

	if !treeBuilder.Filter.AllowsDepth(firstChildDepth) {
		treeBuilder.Logger.Debug(debugRootUnexpandedMessage, zap.String(pathFieldName, rootDirectoryPath))
		return types.NewDirectoryNode(rootDirectoryPath, nil), nil
	}

	children, buildError := treeBuilder.buildTreeNodes(rootDirectoryPath, firstChildDepth)
	if buildError != nil {
		return nil, buildError
	}
	return types.NewDirectoryNode(rootDirectoryPath, children), nil
}

// buildTreeNodes lists currentDirectoryPath, whose entries sit at depth, and
// builds their nodes bottom-up.
func (treeBuilder *TreeBuilder) buildTreeNodes(currentDirectoryPath string, depth int) ([]*types.TreeNode, error) {
	entryNames, listError := treeBuilder.listDirectory(currentDirectoryPath)
	if listError != nil {
		return nil, listError
	}

	nodes := make([]*types.TreeNode, 0, len(entryNames))
	for _, entryName := range entryNames {
		childPath := filepath.Join(currentDirectoryPath, entryName)

		if !treeBuilder.Filter.IncludeHidden && utils.IsHiddenName(entryName) {
			treeBuilder.Logger.Debug(debugSkipHiddenMessage, zap.String(pathFieldName, childPath))
			continue
		}

		entryInfo, lstatError := treeBuilder.lstat(childPath)
		if lstatError != nil {
			return nil, &IOError{Path: childPath, Err: unwrapPathError(lstatError)}
		}
		if !entryInfo.IsDir() {
			nodes = append(nodes, types.NewFileNode(entryName))
			continue
		}

		nextDepth := depth + 1
		if !treeBuilder.Filter.AllowsDepth(nextDepth) {
			treeBuilder.Logger.Debug(debugDepthCappedMessage, zap.String(pathFieldName, childPath), zap.Int(depthFieldName, depth))
			nodes = append(nodes, types.NewDirectoryNode(entryName, nil))
			continue
		}

		childNodes, buildError := treeBuilder.buildTreeNodes(childPath, nextDepth)
		if buildError != nil {
			return nil, buildError
		}
		nodes = append(nodes, types.NewDirectoryNode(entryName, childNodes))
	}

	return nodes, nil
}

// listDirectory returns the entry names of directoryPath in platform order, or
// by name when sorting is enabled. The handle is closed before returning.
func (treeBuilder *TreeBuilder) listDirectory(directoryPath string) (entryNames []string, err error) {
	directoryHandle, openError := treeBuilder.FileSystem.Open(directoryPath)
	if openError != nil {
		return nil, &IOError{Path: directoryPath, Err: unwrapPathError(openError)}
	}
	defer func() {
		if closeError := directoryHandle.Close(); closeError != nil && err == nil {
			entryNames = nil
			err = &IOError{Path: directoryPath, Err: unwrapPathError(closeError)}
		}
	}()

	entryNames, readDirectoryError := directoryHandle.Readdirnames(readAllEntries)
	if readDirectoryError != nil {
		return nil, &IOError{Path: directoryPath, Err: unwrapPathError(readDirectoryError)}
	}
	if treeBuilder.Filter.SortEntries {
		utils.SortEntryNames(entryNames)
	}
	return entryNames, nil
}

// lstat describes entryPath without following a final symlink when the file
// system supports it. An entry that vanished after listing is an error.
func (treeBuilder *TreeBuilder) lstat(entryPath string) (os.FileInfo, error) {
	if lstater, supportsLstat := treeBuilder.FileSystem.(afero.Lstater); supportsLstat {
		entryInfo, _, lstatError := lstater.LstatIfPossible(entryPath)
		return entryInfo, lstatError
	}
	return treeBuilder.FileSystem.Stat(entryPath)
}

// unwrapPathError strips an *os.PathError so the path is not reported twice.
func unwrapPathError(err error) error {
	if pathError, isPathError := err.(*os.PathError); isPathError {
		return pathError.Err
	}
	return err
}
