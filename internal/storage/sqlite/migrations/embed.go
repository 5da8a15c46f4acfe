package migrations

import "embed"

// FS contains the embedded SQLite migrations for the campaign database.
//
//go:embed *.sql
var FS embed.FS
