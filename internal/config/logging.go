package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"USERDECK_LOG_LEVEL"` // debug, info, warn, error
	Format string `yaml:"format"`                         // json, text
	File   string `yaml:"file" env:"USERDECK_LOG_FILE"`   // empty = stderr
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

func isValidLevel(level string) bool {
	if level == "" || level == "warning" {
		return true
	}
	for _, l := range ValidLevels {
		if l == level {
			return true
		}
	}
	return false
}
