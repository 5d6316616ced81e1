package zombiezen

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// CreateTables runs every embedded schema script, in file name order. The
// scripts are idempotent.
func CreateTables(pool *sqlitex.Pool) error {
	scripts, err := fs.Glob(sqlFiles, "sql/*.sql")
	if err != nil {
		return err
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	for _, name := range scripts {
		script, err := sqlFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read embedded sql file %s: %w", name, err)
		}

		if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
			return fmt.Errorf("failed to execute script %s: %w", name, err)
		}
	}

	return nil
}
