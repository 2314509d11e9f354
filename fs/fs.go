package appfs

import "embed"

// FS holds the database migrations, under migrations/.
//
//go:embed migrations/*.sql
var FS embed.FS
