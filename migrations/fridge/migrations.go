// Package fridge embeds the goose migrations of the fridge_items table.
package fridge

import "embed"

// FS holds the migration files, applied by cmd/migrate.
//
//go:embed *.sql
var FS embed.FS
