package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Extensions accepted for uploaded images and payment proofs.
var allowedUploadExts = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"pdf":  true,
}

var unsafeFilenameRe = regexp.MustCompile(`[^A-Za-z0-9_.@-]`)

func FileExt(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	return strings.ToLower(ext)
}

func AllowedUploadFile(filename string) bool {
	return allowedUploadExts[FileExt(filename)]
}

// SanitizeFilename strips any path components and characters that are not
// safe in a flat upload directory.
func SanitizeFilename(filename string) string {
	filename = filepath.Base(filename)
	filename = unsafeFilenameRe.ReplaceAllString(filename, "_")
	return filename
}
