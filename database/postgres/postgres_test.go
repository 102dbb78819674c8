//go:build integration
// +build integration

package postgres

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/getgantry/gantry/config"
	"github.com/getgantry/gantry/database"
	"github.com/getgantry/gantry/pkg/log"
)

func getConfig() config.Configuration {
	_ = os.Setenv("GANTRY_DB_DSN", os.Getenv("TEST_DB_DSN"))

	err := config.LoadConfig("")
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

var (
	once = sync.Once{}
	_db  *Postgres
)

func getDB(t *testing.T) (database.Database, func()) {
	once.Do(func() {
		var err error

		_db, err = NewDB(getConfig())
		require.NoError(t, err)

		require.NoError(t, _db.Migrate(context.Background()))
	})

	return _db, func() {
		require.NoError(t, _db.truncateTables())
	}
}

func (p *Postgres) truncateTables() error {
	tables := `
		gantry.installations,
		gantry.webhook_registrations
	`

	_, err := p.dbx.ExecContext(context.Background(), "TRUNCATE "+tables+" CASCADE;")
	return err
}
