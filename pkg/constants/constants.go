// Package constants provides shared constants used throughout the permclean codebase.
// This includes file permissions, file extensions, and artifact names that
// should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// File extension constants for source files and artifacts
const (
	// SourceExt is the extension of raw Department of Labor disclosure files
	SourceExt = ".xlsx"

	// CSVExt is the extension of the human-readable artifact form
	CSVExt = ".csv"

	// GobExt is the extension of the binary artifact form
	GobExt = ".gob"

	// CacheExt is the extension of cached raw tables (gob, gzip-compressed)
	CacheExt = ".gob.gz"
)

// Artifact base names, shared by the pipeline writer and the stats command
const (
	// StatusCountsName is the per-year certification status count artifact
	StatusCountsName = "status_counts"

	// AvailabilityName is the pre-canonicalization column availability artifact
	AvailabilityName = "availability"

	// Availability1Name is the post-canonicalization column availability artifact
	Availability1Name = "availability1"

	// PermName is the cleaned, deduplicated dataset artifact
	PermName = "perm"

	// BadValuesName is the diagnostic report of unnormalizable values
	BadValuesName = "bad_values.yaml"
)
