package commands

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/lstree/internal/types"
)

// TreeBuilder builds directory tree nodes using configured options.
type TreeBuilder struct {
	FileSystem afero.Fs
	Filter     types.FilterConfiguration
	Logger     *zap.Logger
}

// NewTreeBuilder returns a builder reading from fileSystem. A nil file system
// falls back to the host filesystem and a nil logger discards messages.
func NewTreeBuilder(fileSystem afero.Fs, filter types.FilterConfiguration, logger *zap.Logger) *TreeBuilder {
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TreeBuilder{
		FileSystem: fileSystem,
		Filter:     filter,
		Logger:     logger,
	}
}
