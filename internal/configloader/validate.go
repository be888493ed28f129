package configloader

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/mdparsec/internal/logging"
	"github.com/yaklabco/mdparsec/pkg/config"
	"github.com/yaklabco/mdparsec/pkg/parser/goldmark"
	"github.com/yaklabco/mdparsec/pkg/verify"
)

// maxJobs bounds the worker count accepted from configuration.
const maxJobs = 1024

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "fmt.bullet").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.addError("format", cfg.Format,
			fmt.Sprintf("invalid format %q; must be one of: text, table, json, diff, summary", cfg.Format))
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.addError("color", cfg.Color,
			fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color))
	}

	switch {
	case cfg.Jobs < 0:
		result.addError("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	case cfg.Jobs > maxJobs:
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: fmt.Sprintf("jobs %d is unusually high", cfg.Jobs),
		})
	}

	if cfg.Compare.Flavor != "" && !goldmark.IsFlavor(string(cfg.Compare.Flavor)) {
		result.addError("compare.flavor", cfg.Compare.Flavor,
			fmt.Sprintf("invalid flavor %q; must be one of: commonmark, gfm", cfg.Compare.Flavor))
	}

	rewrites := verify.NormalizeOptions{Bullet: cfg.Fmt.Bullet}
	if err := rewrites.Validate(); err != nil {
		result.addError("fmt.bullet", cfg.Fmt.Bullet, err.Error())
	}

	if strings.ContainsAny(cfg.Fmt.Backups.Suffix, `/\`) {
		result.addError("fmt.backups.suffix", cfg.Fmt.Backups.Suffix, "backup suffix must not contain a path separator")
	}

	if cfg.LogLevel != "" && !logging.IsLevel(cfg.LogLevel) {
		result.addError("log_level", cfg.LogLevel,
			fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel))
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   fmt.Sprintf("extensions[%d]", i),
				Value:   ext,
				Message: fmt.Sprintf("extension %q does not start with a dot", ext),
			})
		}
	}

	validateIgnorePatterns(cfg, result)

	return result
}

func (r *ValidationResult) addError(field string, value any, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: message})
}

// validateIgnorePatterns checks that ignore patterns compile.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.addError(fmt.Sprintf("ignore[%d]", i), pattern, fmt.Sprintf("invalid glob pattern: %v", err))
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
