//go:build integration
// +build integration

package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/getgantry/gantry/datastore"
	"github.com/getgantry/gantry/util"
)

func generateWebhookRegistration() *datastore.WebhookRegistration {
	return &datastore.WebhookRegistration{
		OwnerLogin:   "acme",
		RepoName:     "widgets",
		RemoteHookID: "981234",
		Secret:       util.GenerateSecret(),
		URL:          "https://gantry.example.com/ingest/github",
		Active:       true,
	}
}

func TestCreateWebhookRegistration(t *testing.T) {
	db, closeFn := getDB(t)
	defer closeFn()

	repo := NewWebhookRegistrationRepo(db)
	ctx := context.Background()

	registration := generateWebhookRegistration()
	require.NoError(t, repo.CreateWebhookRegistration(ctx, registration))

	dupe := generateWebhookRegistration()
	err := repo.CreateWebhookRegistration(ctx, dupe)
	require.ErrorIs(t, err, datastore.ErrDuplicateWebhookRegistration)

	found, err := repo.FindActiveWebhookRegistrationByRepo(ctx, "acme", "widgets")
	require.NoError(t, err)
	require.Equal(t, registration.Secret, found.Secret)
	require.Equal(t, "acme/widgets", found.RepoKey())
}

func TestFindActiveWebhookRegistrations(t *testing.T) {
	db, closeFn := getDB(t)
	defer closeFn()

	repo := NewWebhookRegistrationRepo(db)
	ctx := context.Background()

	first := generateWebhookRegistration()
	require.NoError(t, repo.CreateWebhookRegistration(ctx, first))

	second := generateWebhookRegistration()
	second.RepoName = "gadgets"
	require.NoError(t, repo.CreateWebhookRegistration(ctx, second))

	require.NoError(t, repo.DeactivateWebhookRegistration(ctx, second.UID))

	active, err := repo.FindActiveWebhookRegistrations(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, first.UID, active[0].UID)
}
