//go:build integration
// +build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v4"

	"github.com/getgantry/gantry/datastore"
)

func generateInstallation() *datastore.Installation {
	return &datastore.Installation{
		InstallationID: 42,
		AccountID:      1001,
		AccountLogin:   "acme",
		AccountType:    datastore.OrganisationAccount,
		Permissions:    `{"actions":"write"}`,
		Events:         `["workflow_job"]`,
	}
}

func TestUpsertInstallation(t *testing.T) {
	db, closeFn := getDB(t)
	defer closeFn()

	repo := NewInstallationRepo(db)
	ctx := context.Background()

	installation := generateInstallation()
	require.NoError(t, repo.UpsertInstallation(ctx, installation))

	found, err := repo.FindInstallationByAccountLogin(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, int64(42), found.InstallationID)
	require.Equal(t, datastore.OrganisationAccount, found.AccountType)
	require.False(t, found.IsSuspended())

	// a second upsert with the same installation id must not create a
	// second row, only refresh the snapshot
	installation.Permissions = `{"actions":"read"}`
	installation.SuspendedAt = null.TimeFrom(time.Now())
	require.NoError(t, repo.UpsertInstallation(ctx, installation))

	found, err = repo.FindInstallationByInstallationID(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, `{"actions":"read"}`, found.Permissions)
	require.True(t, found.IsSuspended())
}

func TestDeleteInstallation(t *testing.T) {
	db, closeFn := getDB(t)
	defer closeFn()

	repo := NewInstallationRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.UpsertInstallation(ctx, generateInstallation()))
	require.NoError(t, repo.DeleteInstallation(ctx, 42))

	_, err := repo.FindInstallationByAccountLogin(ctx, "acme")
	require.ErrorIs(t, err, datastore.ErrInstallationNotFound)

	require.ErrorIs(t, repo.DeleteInstallation(ctx, 42), datastore.ErrInstallationNotDeleted)
}
