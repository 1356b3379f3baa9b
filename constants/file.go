package constants

import "strings"

// FileTypes holds the allowed file types for the format field in ScanJob.
var FileTypes = []string{"IMAGE"}

const IMAGE = "IMAGE"

// AllowedExtensions holds the default allowed file extensions for label
// photo ingestion.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"bmp":  {},
	"tif":  {},
	"tiff": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a ScanJob format,
// or "" when the extension is not supported.
func MapExtToFormat(ext string) string {
	if _, ok := AllowedExtensions[NormalizeExt(ext)]; ok {
		return IMAGE
	}
	return ""
}
