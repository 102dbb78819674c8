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
	createWebhookRegistration = `
	INSERT INTO gantry.webhook_registrations (id, owner_login, repo_name, remote_hook_id, secret, url, active)
	VALUES ($1, $2, $3, $4, $5, $6, TRUE);
	`

	fetchActiveWebhookRegistrations = `
	SELECT * FROM gantry.webhook_registrations
	WHERE active = TRUE AND deleted_at IS NULL;
	`

	fetchActiveWebhookRegistrationByRepo = `
	SELECT * FROM gantry.webhook_registrations
	WHERE owner_login = $1 AND repo_name = $2 AND active = TRUE AND deleted_at IS NULL;
	`

	deactivateWebhookRegistration = `
	UPDATE gantry.webhook_registrations SET
	active = FALSE,
	updated_at = now()
	WHERE id = $1 AND deleted_at IS NULL;
	`
)

type webhookRegistrationRepo struct {
	db *sqlx.DB
}

func NewWebhookRegistrationRepo(db database.Database) datastore.WebhookRegistrationRepository {
	return &webhookRegistrationRepo{db: db.GetDB()}
}

func (w *webhookRegistrationRepo) CreateWebhookRegistration(ctx context.Context, registration *datastore.WebhookRegistration) error {
	if registration.UID == "" {
		registration.UID = ulid.Make().String()
	}

	r, err := w.db.ExecContext(ctx, createWebhookRegistration,
		registration.UID,
		registration.OwnerLogin,
		registration.RepoName,
		registration.RemoteHookID,
		registration.Secret,
		registration.URL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return datastore.ErrDuplicateWebhookRegistration
		}
		return err
	}

	rowsAffected, err := r.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected < 1 {
		return datastore.ErrWebhookRegistrationNotCreated
	}

	return nil
}

func (w *webhookRegistrationRepo) FindActiveWebhookRegistrations(ctx context.Context) ([]datastore.WebhookRegistration, error) {
	registrations := make([]datastore.WebhookRegistration, 0)
	rows, err := w.db.QueryxContext(ctx, fetchActiveWebhookRegistrations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var registration datastore.WebhookRegistration
		if err = rows.StructScan(&registration); err != nil {
			return nil, err
		}

		registrations = append(registrations, registration)
	}

	return registrations, rows.Err()
}

func (w *webhookRegistrationRepo) FindActiveWebhookRegistrationByRepo(ctx context.Context, ownerLogin, repoName string) (*datastore.WebhookRegistration, error) {
	registration := &datastore.WebhookRegistration{}
	err := w.db.QueryRowxContext(ctx, fetchActiveWebhookRegistrationByRepo, ownerLogin, repoName).StructScan(registration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, datastore.ErrWebhookRegistrationNotFound
		}
		return nil, err
	}

	return registration, nil
}

func (w *webhookRegistrationRepo) DeactivateWebhookRegistration(ctx context.Context, uid string) error {
	r, err := w.db.ExecContext(ctx, deactivateWebhookRegistration, uid)
	if err != nil {
		return err
	}

	rowsAffected, err := r.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected < 1 {
		return datastore.ErrWebhookRegistrationNotFound
	}

	return nil
}
