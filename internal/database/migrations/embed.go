// Package migrations contains the embedded change-sets for every supported
// SQL dialect, one directory per dialect.
package migrations

import "embed"

//go:embed sqlite/*.sql mysql/*.sql postgres/*.sql
var FS embed.FS
