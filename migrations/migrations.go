// Package migrations embeds the goose SQL schema so that the migrate
// command and the integration tests apply the same files without
// resolving paths on disk.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var files embed.FS

// FS returns the embedded migration files.
func FS() fs.FS {
	return files
}

// NewProvider returns a goose provider over db. A nil fsys selects the
// embedded migrations.
func NewProvider(db *sql.DB, fsys fs.FS) (*goose.Provider, error) {
	if fsys == nil {
		fsys = files
	}
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, nil
}
