// Package db embeds the SQL migrations applied at startup.
package db

import "embed"

//go:embed migrations/*.sql
var MigrationsFS embed.FS
