package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/getgantry/gantry"
	"github.com/getgantry/gantry/config"
)

const pkgName = "postgres"

type Postgres struct {
	dbx *sqlx.DB
}

func NewDB(cfg config.Configuration) (*Postgres, error) {
	db, err := sqlx.Connect("pgx", cfg.Database.Dsn)
	if err != nil {
		return nil, fmt.Errorf("[%s]: failed to open database - %v", pkgName, err)
	}

	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(time.Hour)

	return &Postgres{dbx: db}, nil
}

func (p *Postgres) GetDB() *sqlx.DB {
	return p.dbx
}

// Migrate applies the embedded schema. Statements are idempotent, so
// re-running on startup is safe.
func (p *Postgres) Migrate(ctx context.Context) error {
	entries, err := fs.Glob(gantry.MigrationFiles, "sql/*.sql")
	if err != nil {
		return err
	}

	for _, name := range entries {
		stmt, err := gantry.MigrationFiles.ReadFile(name)
		if err != nil {
			return err
		}

		if _, err := p.dbx.ExecContext(ctx, string(stmt)); err != nil {
			return fmt.Errorf("[%s]: failed to apply %s - %v", pkgName, name, err)
		}
	}

	return nil
}

func (p *Postgres) Close() error {
	return p.dbx.Close()
}
