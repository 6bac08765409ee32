// Package migrations embeds the versioned ledger schema.
package migrations

import "embed"

// FS holds the golang-migrate up/down scripts.
//
//go:embed *.sql
var FS embed.FS
