package constants

import "strings"

// AllowedReportExtensions holds the file extensions accepted in a report batch.
var AllowedReportExtensions = map[string]struct{}{
	"pdf": {},
}

// Roles accepted at the service boundary.
const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
