package configloader

import (
	"slices"

	"github.com/yaklabco/mdparsec/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointer booleans: override overwrites base if override is non-nil
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Compare.Flavor != "" {
		result.Compare.Flavor = override.Compare.Flavor
	}
	if override.Fmt.Bullet != "" {
		result.Fmt.Bullet = override.Fmt.Bullet
	}
	if override.Fmt.Backups.Suffix != "" {
		result.Fmt.Backups.Suffix = override.Fmt.Backups.Suffix
	}

	mergeBool(&result.DetectLanguages, override.DetectLanguages)
	mergeBool(&result.Strict, override.Strict)
	mergeBool(&result.Fmt.HeadingSpace, override.Fmt.HeadingSpace)
	mergeBool(&result.Fmt.FinalNewline, override.Fmt.FinalNewline)
	mergeBool(&result.Fmt.Backups.Enabled, override.Fmt.Backups.Enabled)

	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}
	if override.Extensions != nil {
		result.Extensions = slices.Clone(override.Extensions)
	}

	return result
}

func mergeBool(dst **bool, override *bool) {
	if override != nil {
		*dst = config.Bool(*override)
	}
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
