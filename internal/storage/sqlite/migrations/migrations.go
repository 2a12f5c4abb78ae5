// Package migrations holds the embedded schema for the companion database
package migrations

import "embed"

// FS contains the SQL migrations, applied in file name order
//
//go:embed *.sql
var FS embed.FS
