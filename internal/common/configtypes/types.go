package configtypes

// Log level constants
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Log format constants
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
	LogFormatText    = "text"
)

// Default element selectors of the edit screen
const (
	DefaultSnippetTitleID        = "aiosp_snippet_title"
	DefaultSnippetDescriptionID  = "aioseop_snippet_description"
	DefaultMetaTitleName         = "aiosp_title"
	DefaultMetaDescriptionName   = "aiosp_description"
	DefaultMetricsNamespace      = "snippet"
	DefaultLogRotationMaxSize    = 100 // MB
	DefaultLogRotationMaxAge     = 30  // days
	DefaultLogRotationMaxBackups = 10  // files
)

// Config represents the snippet preview configuration file
type Config struct {
	Preview PreviewConfig `yaml:"preview"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// PreviewConfig controls how descriptions are generated and where they are rendered.
type PreviewConfig struct {
	// AutogenerateDescriptions derives the description from post content when no
	// meta description is set. Defaults to true.
	AutogenerateDescriptions *bool        `yaml:"autogenerate_descriptions,omitempty"`
	SkipExcerpt              bool         `yaml:"skip_excerpt"`
	Fields                   FieldsConfig `yaml:"fields"`
}

// Autogenerate returns the effective autogenerate flag.
func (p PreviewConfig) Autogenerate() bool {
	return p.AutogenerateDescriptions == nil || *p.AutogenerateDescriptions
}

// FieldsConfig names the preview widgets (by id) and SEO meta fields (by name attribute).
type FieldsConfig struct {
	SnippetTitleID       string `yaml:"snippet_title_id"`
	SnippetDescriptionID string `yaml:"snippet_description_id"`
	MetaTitleName        string `yaml:"meta_title_name"`
	MetaDescriptionName  string `yaml:"meta_description_name"`
}

type LogConfig struct {
	Level   string           `yaml:"level"`
	Console ConsoleLogConfig `yaml:"console"`
	File    FileLogConfig    `yaml:"file"`
}

type ConsoleLogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"`
	Level   string `yaml:"level,omitempty"`
}

type FileLogConfig struct {
	Enabled  bool           `yaml:"enabled"`
	Path     string         `yaml:"path"`
	Format   string         `yaml:"format"`
	Level    string         `yaml:"level,omitempty"`
	Rotation RotationConfig `yaml:"rotation"`
}

type RotationConfig struct {
	MaxSize    int  `yaml:"max_size"`
	MaxAge     int  `yaml:"max_age"`
	MaxBackups int  `yaml:"max_backups"`
	Compress   bool `yaml:"compress"`
}

// MetricsConfig controls Prometheus metrics. Metrics are exported to a
// node-exporter textfile instead of being served.
type MetricsConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Namespace    string `yaml:"namespace"`
	TextfilePath string `yaml:"textfile_path"`
}
