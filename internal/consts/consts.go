package consts

// Application identity
const (
	// AppName is the binary and config directory name
	AppName = "taschenrechner"
	// Version is the release version reported by -version
	Version = "0.2.0"
)

// Environment variables overriding config file values
const (
	// EnvConfigPath points at an alternate config file
	EnvConfigPath = "TASCHENRECHNER_CONFIG"
	// EnvLogLevel overrides the configured log level
	EnvLogLevel = "TASCHENRECHNER_LOG_LEVEL"
	// EnvLogPath overrides the configured log file path
	EnvLogPath = "TASCHENRECHNER_LOG_PATH"
)

// Limits
const (
	// DefaultTapeLimit is the default number of tape entries kept in memory
	DefaultTapeLimit = 200
	// MaxTapeLimit caps the configurable tape length
	MaxTapeLimit = 10000
)
