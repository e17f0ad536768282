package db

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations is the embedded, versioned schema migration set. It is
// read-only and constructed once at startup; callers pass it explicitly to
// RunMigrations.
var Migrations fs.FS = func() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}()
