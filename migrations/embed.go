// Package migrations embeds the SQL schema migrations so the server binary
// can run them on startup without external files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
