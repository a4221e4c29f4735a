// Package migrations embeds the catalog schema for goose.
package migrations

import "embed"

// FS holds the *.sql migrations, applied by the ingestor and by tests.
//
//go:embed *.sql
var FS embed.FS
