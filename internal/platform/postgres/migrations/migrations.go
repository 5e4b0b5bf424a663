// Package migrations embeds the versioned SQL schema migrations that goose
// applies at startup or via the server binary's -migrate flag.
package migrations

import "embed"

// Migrations holds the embedded SQL migration files.
//
//go:embed *.sql
var Migrations embed.FS
