package datastore

import (
	"context"
	"errors"
	"time"

	"gopkg.in/guregu/null.v4"
)

var (
	ErrInstallationNotFound   = errors.New("installation not found")
	ErrInstallationNotCreated = errors.New("installation could not be created")
	ErrInstallationNotDeleted = errors.New("installation could not be deleted")
)

type AccountType string

const (
	UserAccount         AccountType = "User"
	OrganisationAccount AccountType = "Organization"
)

// Installation records an account-scoped grant of API access tied to the
// app identity. account_login is the join key used to resolve an
// installation for a repository owner.
type Installation struct {
	UID            string      `json:"uid" db:"id"`
	InstallationID int64       `json:"installation_id" db:"installation_id"`
	AccountID      int64       `json:"account_id" db:"account_id"`
	AccountLogin   string      `json:"account_login" db:"account_login"`
	AccountType    AccountType `json:"account_type" db:"account_type"`
	Permissions    string      `json:"permissions" db:"permissions"`
	Events         string      `json:"events" db:"events"`
	SuspendedAt    null.Time   `json:"suspended_at" db:"suspended_at"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at"`
	DeletedAt      null.Time   `json:"deleted_at,omitempty" db:"deleted_at"`
}

func (i *Installation) IsSuspended() bool {
	return i.SuspendedAt.Valid
}

type InstallationRepository interface {
	UpsertInstallation(ctx context.Context, installation *Installation) error
	FindInstallationByAccountLogin(ctx context.Context, accountLogin string) (*Installation, error)
	FindInstallationByInstallationID(ctx context.Context, installationID int64) (*Installation, error)
	DeleteInstallation(ctx context.Context, installationID int64) error
}
