// Package config defines core configuration types for mdparsec.
// These types are pure data structures; loading and validation live in
// internal/configloader.
package config

// OutputFormat specifies the output format for check results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// OutputFormats lists every output format.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatText, FormatTable, FormatJSON, FormatDiff, FormatSummary}
}

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatDiff, FormatSummary:
		return true
	default:
		return false
	}
}

// ColorMode controls ANSI colour output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the colour mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Flavor specifies the Markdown flavor of the reference parser.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// CompareConfig configures the comparison with the reference parser.
type CompareConfig struct {
	// Flavor is "commonmark" or "gfm".
	Flavor Flavor `yaml:"flavor"`
}

// BackupsConfig controls backups taken before fmt writes a file.
type BackupsConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Suffix  string `yaml:"suffix"`
}

// FmtConfig selects the rewrites applied by fmt.
type FmtConfig struct {
	// Bullet is the marker for unordered list items: "-", "*" or "+".
	// Empty keeps the markers as written.
	Bullet string `yaml:"bullet"`

	// HeadingSpace inserts the missing space in headings like "#Title".
	HeadingSpace *bool `yaml:"heading_space"`

	// FinalNewline ends every file with exactly one newline.
	FinalNewline *bool `yaml:"final_newline"`

	Backups BackupsConfig `yaml:"backups"`
}

// Config is the root configuration structure for mdparsec.
//
// Booleans whose false value is meaningful are pointers so that a file
// or flag can switch them off; nil means unset.
type Config struct {
	// Format is the output format of check and compare.
	Format OutputFormat `yaml:"format"`

	// Color is "auto", "always" or "never".
	Color ColorMode `yaml:"color"`

	// Jobs is the number of parallel workers. Zero uses every CPU.
	Jobs int `yaml:"jobs"`

	// Ignore contains glob patterns for paths to skip.
	Ignore []string `yaml:"ignore"`

	// Extensions lists the file extensions treated as Markdown.
	Extensions []string `yaml:"extensions"`

	// DetectLanguages guesses the language of code blocks without an
	// info string.
	DetectLanguages *bool `yaml:"detect_languages"`

	// Strict makes residue a failure in check.
	Strict *bool `yaml:"strict"`

	Compare CompareConfig `yaml:"compare"`

	Fmt FmtConfig `yaml:"fmt"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Format:          FormatText,
		Color:           ColorAuto,
		Jobs:            0, // 0 means use every CPU
		Extensions:      []string{".md", ".markdown"},
		DetectLanguages: Bool(false),
		Strict:          Bool(false),
		Compare: CompareConfig{
			Flavor: FlavorGFM,
		},
		Fmt: FmtConfig{
			HeadingSpace: Bool(true),
			FinalNewline: Bool(true),
			Backups: BackupsConfig{
				Enabled: Bool(false),
				Suffix:  ".orig",
			},
		},
		LogLevel: "warn",
	}
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// BoolValue dereferences p, returning fallback when p is nil.
func BoolValue(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// StrictEnabled reports whether strict mode is on.
func (c *Config) StrictEnabled() bool {
	return c != nil && BoolValue(c.Strict, false)
}

// DetectLanguagesEnabled reports whether language detection is on.
func (c *Config) DetectLanguagesEnabled() bool {
	return c != nil && BoolValue(c.DetectLanguages, false)
}
