package datastore

import (
	"context"
	"errors"
	"time"

	"gopkg.in/guregu/null.v4"
)

var (
	ErrWebhookRegistrationNotFound   = errors.New("webhook registration not found")
	ErrWebhookRegistrationNotCreated = errors.New("webhook registration could not be created")
	ErrDuplicateWebhookRegistration  = errors.New("an active webhook registration already exists for this repository")
)

// WebhookRegistration holds the shared secret for one repository's hook.
// The secret must never leave the signature-verification path; API
// responses carry only a truncated form.
type WebhookRegistration struct {
	UID          string    `json:"uid" db:"id"`
	OwnerLogin   string    `json:"owner_login" db:"owner_login"`
	RepoName     string    `json:"repo_name" db:"repo_name"`
	RemoteHookID string    `json:"remote_hook_id" db:"remote_hook_id"`
	Secret       string    `json:"-" db:"secret"`
	URL          string    `json:"url" db:"url"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
	DeletedAt    null.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// RepoKey identifies the repository for cooldown bookkeeping.
func (w *WebhookRegistration) RepoKey() string {
	return w.OwnerLogin + "/" + w.RepoName
}

type WebhookRegistrationRepository interface {
	CreateWebhookRegistration(ctx context.Context, registration *WebhookRegistration) error
	FindActiveWebhookRegistrations(ctx context.Context) ([]WebhookRegistration, error)
	FindActiveWebhookRegistrationByRepo(ctx context.Context, ownerLogin, repoName string) (*WebhookRegistration, error)
	DeactivateWebhookRegistration(ctx context.Context, uid string) error
}
