package testsupport

import (
	"path/filepath"
	"testing"

	"dictpivot/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	cfg *config.Config
}

// NewConfig produces a validated default config and applies any options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	builder := &configBuilder{cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithLanguages sets the default language override.
func WithLanguages(languages ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Pivot.Languages = append([]string(nil), languages...)
	}
}

// WithSort enables collation sorting using locale.
func WithSort(locale string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Pivot.Sort = true
		b.cfg.Pivot.Locale = locale
	}
}

// WithOutput overrides the output presentation settings.
func WithOutput(format string, indent int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
		b.cfg.Output.Indent = indent
	}
}

// WithLogging overrides the logging section.
func WithLogging(format, level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Format = format
		b.cfg.Logging.Level = level
	}
}

// WriteConfig stores cfg as TOML inside a temp directory and returns its path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	return WriteFile(t, filepath.Join(t.TempDir(), "config.toml"), string(data))
}
