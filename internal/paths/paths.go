package paths

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultVariant names the variant written to DefaultFilename.
	DefaultVariant = "confirm"
	// DefaultFilename is the output name of the default variant.
	DefaultFilename = "dormup_scan_confirm.wav"
)

// Filename returns the output file name for variant. The default variant
// (or an empty name) uses DefaultFilename; others get a _<variant> suffix.
func Filename(variant string) string {
	variant = strings.ToLower(strings.TrimSpace(variant))
	if variant == "" || variant == DefaultVariant {
		return DefaultFilename
	}
	base := strings.TrimSuffix(DefaultFilename, filepath.Ext(DefaultFilename))
	return base + "_" + variant + ".wav"
}

// OutputPath returns <baseDir>/<Filename(variant)>.
func OutputPath(baseDir, variant string) string {
	return filepath.Join(baseDir, Filename(variant))
}

// Resolve returns output when set, made absolute against baseDir if
// relative, and OutputPath(baseDir, variant) otherwise.
func Resolve(baseDir, variant, output string) string {
	if output == "" {
		return OutputPath(baseDir, variant)
	}
	if filepath.IsAbs(output) {
		return filepath.Clean(output)
	}
	return filepath.Join(baseDir, output)
}
