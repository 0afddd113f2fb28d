package config

const (
	defaultConfigPath      = "~/.config/dictpivot/config.toml"
	projectConfigName      = "dictpivot.toml"
	defaultIndent          = 2
	maxIndent              = 8
	defaultTrailingNewline = true
	defaultLogFormat       = "console"
	defaultLogLevel        = "warn"
)

// Environment variables that override file settings.
const (
	EnvLanguages = "DICTPIVOT_LANGUAGES"
	EnvSort      = "DICTPIVOT_SORT"
	EnvLocale    = "DICTPIVOT_LOCALE"
	EnvLogLevel  = "DICTPIVOT_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Indent:          defaultIndent,
			TrailingNewline: defaultTrailingNewline,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
