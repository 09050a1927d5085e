package commands

// Common constants used across command implementations
const (
	// Command usage patterns
	OptionsUsage = "[OPTIONS]"

	// DefaultBaseURL is the raw-content root of the shared hooks repository
	DefaultBaseURL = "https://raw.githubusercontent.com/devhooks/pre-commit-configs/main"

	// BaseURLEnvVar overrides the download location, mainly for tests
	BaseURLEnvVar = "PRE_COMMIT_SETUP_BASE_URL"
)
