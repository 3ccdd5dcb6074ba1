// Package constants provides shared constants used throughout the scholarlink codebase.
// This includes timeouts, file permissions, and other configuration values that
// should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to SPARQL endpoints.
	// Public endpoints can be slow under load, so this is generous.
	DefaultHTTPTimeout = 60 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// RunTimeout is the timeout for a full extract-reconcile-render run
	RunTimeout = 10 * time.Minute

	// EvaluateTimeout is the timeout for a single LLM evaluation request
	EvaluateTimeout = 2 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Export constants
const (
	// DefaultExportFile is the default filename for the combined knowledge base export
	DefaultExportFile = "Combined_Knowledgebase_entries.csv"
)
