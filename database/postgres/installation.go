package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/oklog/ulid/v2"

	"github.com/getgantry/gantry/database"
	"github.com/getgantry/gantry/datastore"
)

const (
	upsertInstallation = `
	INSERT INTO gantry.installations (id, installation_id, account_id, account_login, account_type, permissions, events, suspended_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (installation_id)
	DO UPDATE SET
	account_id = EXCLUDED.account_id,
	account_login = EXCLUDED.account_login,
	account_type = EXCLUDED.account_type,
	permissions = EXCLUDED.permissions,
	events = EXCLUDED.events,
	suspended_at = EXCLUDED.suspended_at,
	deleted_at = NULL,
	updated_at = now();
	`

	fetchInstallationByAccountLogin = `
	SELECT * FROM gantry.installations
	WHERE account_login = $1 AND deleted_at IS NULL;
	`

	fetchInstallationByInstallationID = `
	SELECT * FROM gantry.installations
	WHERE installation_id = $1 AND deleted_at IS NULL;
	`

	deleteInstallation = `
	UPDATE gantry.installations SET
	deleted_at = now()
	WHERE installation_id = $1 AND deleted_at IS NULL;
	`
)

type installationRepo struct {
	db *sqlx.DB
}

func NewInstallationRepo(db database.Database) datastore.InstallationRepository {
	return &installationRepo{db: db.GetDB()}
}

func (i *installationRepo) UpsertInstallation(ctx context.Context, installation *datastore.Installation) error {
	if installation.UID == "" {
		installation.UID = ulid.Make().String()
	}

	r, err := i.db.ExecContext(ctx, upsertInstallation,
		installation.UID,
		installation.InstallationID,
		installation.AccountID,
		installation.AccountLogin,
		installation.AccountType,
		installation.Permissions,
		installation.Events,
		installation.SuspendedAt,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := r.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected < 1 {
		return datastore.ErrInstallationNotCreated
	}

	return nil
}

func (i *installationRepo) FindInstallationByAccountLogin(ctx context.Context, accountLogin string) (*datastore.Installation, error) {
	installation := &datastore.Installation{}
	err := i.db.QueryRowxContext(ctx, fetchInstallationByAccountLogin, accountLogin).StructScan(installation)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, datastore.ErrInstallationNotFound
		}
		return nil, err
	}

	return installation, nil
}

func (i *installationRepo) FindInstallationByInstallationID(ctx context.Context, installationID int64) (*datastore.Installation, error) {
	installation := &datastore.Installation{}
	err := i.db.QueryRowxContext(ctx, fetchInstallationByInstallationID, installationID).StructScan(installation)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, datastore.ErrInstallationNotFound
		}
		return nil, err
	}

	return installation, nil
}

func (i *installationRepo) DeleteInstallation(ctx context.Context, installationID int64) error {
	r, err := i.db.ExecContext(ctx, deleteInstallation, installationID)
	if err != nil {
		return err
	}

	rowsAffected, err := r.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected < 1 {
		return datastore.ErrInstallationNotDeleted
	}

	return nil
}
