package utils

import (
	"regexp"
	"strings"
)

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	extraSpaces      = regexp.MustCompile(`\s+`)
)

// CleanFileName removes invalid characters from filename
func CleanFileName(filename string) string {
	cleaned := invalidFileChars.ReplaceAllString(filename, "_")
	cleaned = strings.TrimSpace(cleaned)
	return extraSpaces.ReplaceAllString(cleaned, "_")
}
