package constants

import "strings"

// PDFContentType is the only content type accepted for uploads.
const PDFContentType = "application/pdf"

// MaxUploadBytes caps uploaded document size (10 MB).
const MaxUploadBytes = 10 << 20

// DefaultAnalysisQuery is used when a submission carries no query.
const DefaultAnalysisQuery = "Analyze this financial document for investment insights"

// AllowedExtensions holds the file extensions accepted for analysis.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// AllowedExt reports whether a normalized extension is accepted.
func AllowedExt(ext string) bool {
	_, ok := AllowedExtensions[ext]
	return ok
}
