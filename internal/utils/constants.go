package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

const (
	// ApplicationName is the binary and command name.
	ApplicationName = "lstree"
	// ConfigFileName is the name of the configuration file looked up locally and globally.
	ConfigFileName = "config.yaml"
	// GlobalConfigDirectoryName is the directory under the user home holding the global configuration.
	GlobalConfigDirectoryName = ".lstree"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// HiddenNamePrefix marks hidden entries on the host filesystem.
	HiddenNamePrefix = "."
	// CurrentDirectoryPath is the default traversal root.
	CurrentDirectoryPath = "."

	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal execution errors.
	ApplicationExecutionFailedMessage = "application execution failed"
)
