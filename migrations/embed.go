// Package migrations embebe el esquema SQL versionado (formato golang-migrate).
package migrations

import "embed"

// FS archivos NNNN_nombre.up.sql / .down.sql.
//
//go:embed *.sql
var FS embed.FS
