// Package migrations holds the goose SQL migrations for the relational
// mirror, embedded so the server can apply them at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
