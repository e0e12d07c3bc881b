// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/lstree/internal/commands"
	"github.com/temirov/lstree/internal/config"
	"github.com/temirov/lstree/internal/output"
	"github.com/temirov/lstree/internal/services/clipboard"
	"github.com/temirov/lstree/internal/utils"
)

const (
	allFlagName          = "all"
	allFlagShorthand     = "a"
	levelFlagName        = "level"
	levelFlagShorthand   = "L"
	asciiFlagName        = "ascii"
	sortFlagName         = "sort"
	copyFlagName         = "copy"
	configFlagName       = "config"
	verboseFlagName      = "verbose"
	versionFlagName      = "version"
	noShorthand          = ""
	versionTemplate      = utils.ApplicationName + " version: %s\n"
	rootUse              = utils.ApplicationName + " [path]"
	rootShortDescription = "display a directory tree"
	rootLongDescription  = `lstree prints the directory tree rooted at path (default ".").
Hidden entries are skipped unless --all is given. --level limits how deep the
traversal goes; directories at the limit are listed but not expanded.
Entries appear in the order the filesystem returns them unless --sort is given.`
	rootUsageExample = `  # Tree of the current directory
  lstree

  # Two levels of ./cmd including hidden entries, drawn with ASCII
  lstree ./cmd -a -L 2 --ascii

  # Copy the tree to the clipboard as well
  lstree --copy`

	allFlagDescription     = "include hidden entries"
	levelFlagDescription   = "maximum traversal depth; 0 lists only the root (default unbounded)"
	asciiFlagDescription   = "draw connectors with ASCII characters"
	sortFlagDescription    = "sort entries by name instead of filesystem order"
	copyFlagDescription    = "copy the rendered tree to the system clipboard"
	configFlagDescription  = "configuration file (default ./" + utils.ConfigFileName + ")"
	verboseFlagDescription = "log traversal details"
	versionFlagDescription = "display application version"

	debugTreeBuiltMessage = "tree built"
	rootFieldName         = "root"
	nodesFieldName        = "nodes"

	// errorNegativeLevelFormat reports an invalid --level value.
	errorNegativeLevelFormat = "--%s must be non-negative, got %d"
	// errorLoadConfigurationFormat reports a configuration loading failure.
	errorLoadConfigurationFormat = "load configuration: %w"
	// errorWriteOutputFormat reports a failure writing the rendered tree.
	errorWriteOutputFormat = "write output: %w"
	// errorCopyOutputFormat reports a clipboard failure.
	errorCopyOutputFormat = "copy output to clipboard: %w"
	// errorWriteVersionFormat reports a failure writing the version line.
	errorWriteVersionFormat = "write version: %w"
)

// applicationDependencies are the collaborators the commands run against.
type applicationDependencies struct {
	logger           *zap.Logger
	logLevel         zap.AtomicLevel
	fileSystem       afero.Fs
	copier           clipboard.Copier
	workingDirectory string
	// resolveVersion is consulted only when --version is given.
	resolveVersion func() string
}

// Execute runs the lstree application.
func Execute(logger *zap.Logger, logLevel zap.AtomicLevel) error {
	dependencies := applicationDependencies{
		logger:         logger,
		logLevel:       logLevel,
		fileSystem:     afero.NewOsFs(),
		copier:         clipboard.NewService(),
		resolveVersion: utils.GetApplicationVersion,
	}
	return createRootCommand(dependencies).Execute()
}

// treeOptions stores the values of the tree flags.
type treeOptions struct {
	includeHidden bool
	level         int
	ascii         bool
	sortEntries   bool
	copyOutput    bool
	configPath    string
}

// createRootCommand builds the root Cobra command, which renders the tree.
func createRootCommand(dependencies applicationDependencies) *cobra.Command {
	if dependencies.logger == nil {
		dependencies.logger = zap.NewNop()
		dependencies.logLevel = zap.NewAtomicLevel()
	}
	if dependencies.resolveVersion == nil {
		dependencies.resolveVersion = utils.GetApplicationVersion
	}
	var options treeOptions
	var verbose bool
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if verbose {
				dependencies.logLevel.SetLevel(zap.DebugLevel)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				if _, writeError := fmt.Fprintf(command.OutOrStdout(), versionTemplate, dependencies.resolveVersion()); writeError != nil {
					return fmt.Errorf(errorWriteVersionFormat, writeError)
				}
				return nil
			}
			rootPath := utils.CurrentDirectoryPath
			if len(arguments) == 1 {
				rootPath = arguments[0]
			}
			return runTree(command, rootPath, options, dependencies)
		},
	}
	rootCommand.PersistentFlags().StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	registerBooleanFlag(rootCommand.PersistentFlags(), &verbose, verboseFlagName, noShorthand, false, verboseFlagDescription)
	addTreeFlags(rootCommand.Flags(), &options)
	registerBooleanFlag(rootCommand.Flags(), &showVersion, versionFlagName, noShorthand, false, versionFlagDescription)

	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// addTreeFlags registers the traversal and rendering flags.
func addTreeFlags(flagSet *pflag.FlagSet, options *treeOptions) {
	registerBooleanFlag(flagSet, &options.includeHidden, allFlagName, allFlagShorthand, false, allFlagDescription)
	flagSet.IntVarP(&options.level, levelFlagName, levelFlagShorthand, 0, levelFlagDescription)
	registerBooleanFlag(flagSet, &options.ascii, asciiFlagName, noShorthand, false, asciiFlagDescription)
	registerBooleanFlag(flagSet, &options.sortEntries, sortFlagName, noShorthand, false, sortFlagDescription)
	registerBooleanFlag(flagSet, &options.copyOutput, copyFlagName, noShorthand, false, copyFlagDescription)
	if lookup := flagSet.Lookup(levelFlagName); lookup != nil {
		lookup.DefValue = ""
	}
}

// overrides converts explicitly set flags into a configuration layer.
// Flags left at their defaults do not override configuration files.
func (options treeOptions) overrides(flagSet *pflag.FlagSet) (config.ApplicationConfiguration, error) {
	var layer config.ApplicationConfiguration
	if flagSet.Changed(allFlagName) {
		layer.Tree.IncludeHidden = &options.includeHidden
	}
	if flagSet.Changed(levelFlagName) {
		if options.level < 0 {
			return config.ApplicationConfiguration{}, fmt.Errorf(errorNegativeLevelFormat, levelFlagName, options.level)
		}
		layer.Tree.Depth = &options.level
	}
	if flagSet.Changed(asciiFlagName) {
		layer.Tree.ASCII = &options.ascii
	}
	if flagSet.Changed(sortFlagName) {
		layer.Tree.Sort = &options.sortEntries
	}
	if flagSet.Changed(copyFlagName) {
		layer.Tree.Clipboard = &options.copyOutput
	}
	return layer, nil
}

// runTree resolves configuration, builds the whole tree, and only then renders it.
func runTree(command *cobra.Command, rootPath string, options treeOptions, dependencies applicationDependencies) error {
	flagLayer, flagError := options.overrides(command.Flags())
	if flagError != nil {
		return flagError
	}
	fileConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: dependencies.workingDirectory,
		ExplicitFilePath: options.configPath,
	})
	if loadError != nil {
		return fmt.Errorf(errorLoadConfigurationFormat, loadError)
	}
	treeConfiguration := fileConfiguration.Merge(flagLayer).Tree

	builder := commands.NewTreeBuilder(dependencies.fileSystem, treeConfiguration.FilterConfiguration(), dependencies.logger)
	rootNode, buildError := builder.BuildTree(rootPath)
	if buildError != nil {
		return buildError
	}
	dependencies.logger.Debug(debugTreeBuiltMessage, zap.String(rootFieldName, rootPath), zap.Int(nodesFieldName, rootNode.CountNodes()))

	renderedTree := output.NewTreeRenderer(treeConfiguration.RenderConfiguration()).RenderString(rootNode)
	if _, writeError := io.WriteString(command.OutOrStdout(), renderedTree); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, writeError)
	}

	if treeConfiguration.ClipboardEnabled() && dependencies.copier != nil {
		if copyError := dependencies.copier.Copy(renderedTree); copyError != nil {
			return fmt.Errorf(errorCopyOutputFormat, copyError)
		}
	}
	return nil
}
