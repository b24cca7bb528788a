package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/edgecomet/snippet/internal/common/configtypes"
	"github.com/edgecomet/snippet/internal/common/yamlutil"
)

// Type aliases for callers that only import config
type (
	Config        = configtypes.Config
	PreviewConfig = configtypes.PreviewConfig
	FieldsConfig  = configtypes.FieldsConfig
	LogConfig     = configtypes.LogConfig
	MetricsConfig = configtypes.MetricsConfig
)

// ValidationError describes one invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads, validates and applies defaults to the configuration at path.
func Load(path string, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var cfg Config
	if err := yamlutil.ReadFileStrict(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	applyDefaults(&cfg)

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, formatValidationErrors(path, errs)
	}

	emitConfigWarnings(&cfg, logger)
	return &cfg, nil
}

// GetConfigPath resolves path to an absolute path of an existing file.
func GetConfigPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("config path cannot be empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path: %w", err)
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("config file does not exist: %s", absPath)
	}

	return absPath, nil
}

// applyDefaults applies default values to configuration
func applyDefaults(cfg *Config) {
	if cfg.Preview.AutogenerateDescriptions == nil {
		enabled := true
		cfg.Preview.AutogenerateDescriptions = &enabled
	}

	fields := &cfg.Preview.Fields
	if fields.SnippetTitleID == "" {
		fields.SnippetTitleID = configtypes.DefaultSnippetTitleID
	}
	if fields.SnippetDescriptionID == "" {
		fields.SnippetDescriptionID = configtypes.DefaultSnippetDescriptionID
	}
	if fields.MetaTitleName == "" {
		fields.MetaTitleName = configtypes.DefaultMetaTitleName
	}
	if fields.MetaDescriptionName == "" {
		fields.MetaDescriptionName = configtypes.DefaultMetaDescriptionName
	}

	// If both outputs are disabled (zero values), enable console by default
	if !cfg.Log.Console.Enabled && !cfg.Log.File.Enabled {
		cfg.Log.Console.Enabled = true
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = configtypes.LogLevelInfo
	}
	if cfg.Log.Console.Format == "" {
		cfg.Log.Console.Format = configtypes.LogFormatConsole
	}
	if cfg.Log.File.Format == "" {
		cfg.Log.File.Format = configtypes.LogFormatText
	}

	rotation := &cfg.Log.File.Rotation
	if rotation.MaxSize == 0 {
		rotation.MaxSize = configtypes.DefaultLogRotationMaxSize
	}
	if rotation.MaxAge == 0 {
		rotation.MaxAge = configtypes.DefaultLogRotationMaxAge
	}
	if rotation.MaxBackups == 0 {
		rotation.MaxBackups = configtypes.DefaultLogRotationMaxBackups
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = configtypes.DefaultMetricsNamespace
	}
}

// Validate returns every problem found in cfg. Defaults must already be applied.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	if !isLogLevel(cfg.Log.Level) {
		errs = append(errs, ValidationError{Field: "log.level", Message: fmt.Sprintf("unknown level %q", cfg.Log.Level)})
	}
	if cfg.Log.Console.Level != "" && !isLogLevel(cfg.Log.Console.Level) {
		errs = append(errs, ValidationError{Field: "log.console.level", Message: fmt.Sprintf("unknown level %q", cfg.Log.Console.Level)})
	}
	if cfg.Log.File.Level != "" && !isLogLevel(cfg.Log.File.Level) {
		errs = append(errs, ValidationError{Field: "log.file.level", Message: fmt.Sprintf("unknown level %q", cfg.Log.File.Level)})
	}
	if !isLogFormat(cfg.Log.Console.Format) {
		errs = append(errs, ValidationError{Field: "log.console.format", Message: fmt.Sprintf("unknown format %q", cfg.Log.Console.Format)})
	}
	if !isLogFormat(cfg.Log.File.Format) {
		errs = append(errs, ValidationError{Field: "log.file.format", Message: fmt.Sprintf("unknown format %q", cfg.Log.File.Format)})
	}
	if cfg.Log.File.Enabled && cfg.Log.File.Path == "" {
		errs = append(errs, ValidationError{Field: "log.file.path", Message: "must be set when file logging is enabled"})
	}
	if cfg.Log.File.Rotation.MaxSize < 0 || cfg.Log.File.Rotation.MaxAge < 0 || cfg.Log.File.Rotation.MaxBackups < 0 {
		errs = append(errs, ValidationError{Field: "log.file.rotation", Message: "values must not be negative"})
	}

	if cfg.Metrics.Enabled && cfg.Metrics.TextfilePath == "" {
		errs = append(errs, ValidationError{Field: "metrics.textfile_path", Message: "must be set when metrics are enabled"})
	}

	fields := cfg.Preview.Fields
	if fields.SnippetTitleID == fields.SnippetDescriptionID {
		errs = append(errs, ValidationError{Field: "preview.fields", Message: "snippet title and description must use different elements"})
	}
	if fields.MetaTitleName == fields.MetaDescriptionName {
		errs = append(errs, ValidationError{Field: "preview.fields", Message: "meta title and description must use different fields"})
	}

	return errs
}

// emitConfigWarnings emits runtime warnings for configuration (non-validation concerns)
func emitConfigWarnings(cfg *Config, logger *zap.Logger) {
	if !cfg.Preview.Autogenerate() && cfg.Preview.SkipExcerpt {
		logger.Warn("preview.skip_excerpt has no effect while autogenerate_descriptions is false")
	}
}

// formatValidationErrors converts validation errors to a single runtime error
func formatValidationErrors(path string, errs []ValidationError) error {
	if len(errs) == 0 {
		return fmt.Errorf("configuration validation failed")
	}

	msg := fmt.Sprintf("%s: %s", path, errs[0].Error())
	if len(errs) > 1 {
		msg = fmt.Sprintf("%s (and %d more errors)", msg, len(errs)-1)
	}

	return fmt.Errorf("%s", msg)
}

func isLogLevel(level string) bool {
	switch level {
	case configtypes.LogLevelDebug, configtypes.LogLevelInfo, configtypes.LogLevelWarn, configtypes.LogLevelError:
		return true
	}
	return false
}

func isLogFormat(format string) bool {
	switch format {
	case configtypes.LogFormatJSON, configtypes.LogFormatConsole, configtypes.LogFormatText:
		return true
	}
	return false
}
