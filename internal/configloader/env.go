package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/mdparsec/pkg/config"
)

// envVarPrefix is the prefix for all mdparsec environment variables.
const envVarPrefix = "MDPARSEC_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FORMAT":           {field: "format", typ: envTypeString, description: "Output format: text, table, json, diff or summary"},
	"COLOR":            {field: "color", typ: envTypeString, description: "Colour output: auto, always or never"},
	"JOBS":             {field: "jobs", typ: envTypeInt, description: "Number of parallel workers (0 = auto)"},
	"IGNORE":           {field: "ignore", typ: envTypeSlice, description: "Comma-separated list of ignore patterns"},
	"EXTENSIONS":       {field: "extensions", typ: envTypeSlice, description: "Comma-separated list of Markdown file extensions"},
	"DETECT_LANGUAGES": {field: "detect_languages", typ: envTypeBool, description: "Guess code block languages: true or false"},
	"STRICT":           {field: "strict", typ: envTypeBool, description: "Fail check on residue: true or false"},
	"FLAVOR":           {field: "compare.flavor", typ: envTypeString, description: "Reference flavor: commonmark or gfm"},
	"BULLET":           {field: "fmt.bullet", typ: envTypeString, description: "List bullet used by fmt: -, * or +"},
	"HEADING_SPACE":    {field: "fmt.heading_space", typ: envTypeBool, description: "Insert missing heading spaces: true or false"},
	"FINAL_NEWLINE":    {field: "fmt.final_newline", typ: envTypeBool, description: "End files with one newline: true or false"},
	"BACKUPS_ENABLED":  {field: "fmt.backups.enabled", typ: envTypeBool, description: "Back up files before fmt writes them: true or false"},
	"BACKUPS_SUFFIX":   {field: "fmt.backups.suffix", typ: envTypeString, description: "Suffix of backup files"},
	"LOG_LEVEL":        {field: "log_level", typ: envTypeString, description: "Log level: debug, info, warn or error"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MDPARSEC_ (e.g., MDPARSEC_STRICT).
func LoadFromEnv(cfg *config.Config) error {
	return loadFromLookup(cfg, os.LookupEnv)
}

// loadFromLookup applies overrides read through lookup.
func loadFromLookup(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value, ok := lookup(envVar)
		if !ok || value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	case "compare.flavor":
		cfg.Compare.Flavor = config.Flavor(value)
	case "fmt.bullet":
		cfg.Fmt.Bullet = value
	case "fmt.backups.suffix":
		cfg.Fmt.Backups.Suffix = value
	case "log_level":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "detect_languages":
		cfg.DetectLanguages = config.Bool(value)
	case "strict":
		cfg.Strict = config.Bool(value)
	case "fmt.heading_space":
		cfg.Fmt.HeadingSpace = config.Bool(value)
	case "fmt.final_newline":
		cfg.Fmt.FinalNewline = config.Bool(value)
	case "fmt.backups.enabled":
		cfg.Fmt.Backups.Enabled = config.Bool(value)
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "extensions":
		cfg.Extensions = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.description
	}
	return vars
}
