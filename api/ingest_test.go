package api

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/getgantry/gantry/api/types"
	"github.com/getgantry/gantry/config"
	"github.com/getgantry/gantry/datastore"
	"github.com/getgantry/gantry/internal/pkg/cooldown"
	"github.com/getgantry/gantry/internal/pkg/fleet"
	"github.com/getgantry/gantry/internal/pkg/githubapp"
	"github.com/getgantry/gantry/mocks"
	"github.com/getgantry/gantry/pkg/verifier"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func provideApplicationHandler(ctrl *gomock.Controller) *ApplicationHandler {
	app := &ApplicationHandler{A: &types.APIOptions{
		InstallationRepo: mocks.NewMockInstallationRepository(ctrl),
		WebhookRepo:      mocks.NewMockWebhookRegistrationRepository(ctrl),
		Fleet:            mocks.NewMockClient(ctrl),
		GitHub:           mocks.NewMockAPI(ctrl),
		Ledger:           cooldown.NewLedger(15*time.Second, time.Minute, cooldown.NewRealClock()),
	}}
	app.BuildRoutes()
	return app
}

func activeRegistrations() []datastore.WebhookRegistration {
	return []datastore.WebhookRegistration{
		{UID: "reg-1", OwnerLogin: "acme", RepoName: "widgets", Secret: testSecret, Active: true},
	}
}

func ingestRequest(t *testing.T, eventType string, body []byte, secret string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/ingest/github", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", eventType)
	req.Header.Set("X-GitHub-Delivery", "f1a7c9dc-83f5-11ee-9b1c-0a58a9feac02")

	if secret != "" {
		req.Header.Set("X-Hub-Signature-256", verifier.Sign(secret, body))
	}

	return req
}

func TestIngestEvent(t *testing.T) {
	err := config.LoadConfig("")
	require.NoError(t, err)

	cfg, err := config.Get()
	require.NoError(t, err)
	cfg.GitHub.FallbackToken = "ghp_fallback"
	require.NoError(t, config.Override(&cfg))

	t.Run("should_reject_unsigned_delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := provideApplicationHandler(ctrl)

		w, _ := app.A.WebhookRepo.(*mocks.MockWebhookRegistrationRepository)
		w.EXPECT().FindActiveWebhookRegistrations(gomock.Any()).Times(1).
			Return(activeRegistrations(), nil)

		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, ingestRequest(t, "push", []byte(`{"ref":"refs/heads/main"}`), ""))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should_reject_delivery_signed_with_unknown_secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := provideApplicationHandler(ctrl)

		w, _ := app.A.WebhookRepo.(*mocks.MockWebhookRegistrationRepository)
		w.EXPECT().FindActiveWebhookRegistrations(gomock.Any()).Times(1).
			Return(activeRegistrations(), nil)

		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, ingestRequest(t, "push", []byte(`{"ref":"refs/heads/main"}`), "wrong-secret"))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should_require_event_type_header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := provideApplicationHandler(ctrl)

		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, ingestRequest(t, "", []byte(`{}`), testSecret))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should_acknowledge_ping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := provideApplicationHandler(ctrl)

		w, _ := app.A.WebhookRepo.(*mocks.MockWebhookRegistrationRepository)
		w.EXPECT().FindActiveWebhookRegistrations(gomock.Any()).Times(1).
			Return(activeRegistrations(), nil)

		body := []byte(`{"zen":"Keep it logically awesome."}`)

		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, ingestRequest(t, "ping", body, testSecret))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "acknowledged")
	})

	t.Run("should_ignore_push_without_commits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := provideApplicationHandler(ctrl)

		w, _ := app.A.WebhookRepo.(*mocks.MockWebhookRegistrationRepository)
		w.EXPECT().FindActiveWebhookRegistrations(gomock.Any()).Times(1).
			Return(activeRegistrations(), nil)

		body := []byte(`{"ref":"refs/heads/main","commits":[]}`)

		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, ingestRequest(t, "push", body, testSecret))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "ignored")
	})

	t.Run("should_ignore_completed_workflow_run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := provideApplicationHandler(ctrl)

		w, _ := app.A.WebhookRepo.(*mocks.MockWebhookRegistrationRepository)
		w.EXPECT().FindActiveWebhookRegistrations(gomock.Any()).Times(1).
			Return(activeRegistrations(), nil)

		body := []byte(`{"action":"completed","workflow_run":{"id":11,"name":"ci"}}`)

		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, ingestRequest(t, "workflow_run", body, testSecret))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "ignored")
	})

	t.Run("should_provision_runner_for_push_when_idle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := provideApplicationHandler(ctrl)

		w, _ := app.A.WebhookRepo.(*mocks.MockWebhookRegistrationRepository)
		w.EXPECT().FindActiveWebhookRegistrations(gomock.Any()).Times(1).
			Return(activeRegistrations(), nil)

		f, _ := app.A.Fleet.(*mocks.MockClient)
		f.EXPECT().Occupancy(gomock.Any()).Times(1).
			Return(fleet.Occupancy{}, nil)
		f.EXPECT().Launch(gomock.Any(), gomock.Any()).Times(1).
			DoAndReturn(func(_ interface{}, req *fleet.LaunchRequest) (string, error) {
				require.Equal(t, "acme", req.Owner)
				require.Equal(t, "widgets", req.Repo)
				require.Equal(t, "ghp_fallback", req.Token)
				require.Equal(t, "push-push-main", req.Trigger)
				return "arn:aws:ecs:task/1", nil
			})

		i, _ := app.A.InstallationRepo.(*mocks.MockInstallationRepository)
		i.EXPECT().FindInstallationByAccountLogin(gomock.Any(), "acme").Times(1).
			Return(nil, datastore.ErrInstallationNotFound)

		g, _ := app.A.GitHub.(*mocks.MockAPI)
		g.EXPECT().RegistrationToken(gomock.Any(), "ghp_fallback", "acme", "widgets").Times(1).
			Return("reg_token", nil)

		body := []byte(`{"ref":"refs/heads/main","commits":[{"id":"c0ffee","message":"fix build"}]}`)

		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, ingestRequest(t, "push", body, testSecret))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "provisioning triggered")
	})

	t.Run("should_decline_push_when_capacity_saturated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := provideApplicationHandler(ctrl)

		w, _ := app.A.WebhookRepo.(*mocks.MockWebhookRegistrationRepository)
		w.EXPECT().FindActiveWebhookRegistrations(gomock.Any()).Times(1).
			Return(activeRegistrations(), nil)

		f, _ := app.A.Fleet.(*mocks.MockClient)
		f.EXPECT().Occupancy(gomock.Any()).Times(1).
			Return(fleet.Occupancy{Running: 2}, nil)

		body := []byte(`{"ref":"refs/heads/main","commits":[{"id":"c0ffee","message":"fix build"}]}`)

		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, ingestRequest(t, "push", body, testSecret))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "capacity-saturated")
	})

	t.Run("should_acknowledge_push_when_occupancy_cannot_be_read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := provideApplicationHandler(ctrl)

		w, _ := app.A.WebhookRepo.(*mocks.MockWebhookRegistrationRepository)
		w.EXPECT().FindActiveWebhookRegistrations(gomock.Any()).Times(1).
			Return(activeRegistrations(), nil)

		f, _ := app.A.Fleet.(*mocks.MockClient)
		f.EXPECT().Occupancy(gomock.Any()).Times(1).
			Return(fleet.Occupancy{}, errors.New("ecs throttled"))

		body := []byte(`{"ref":"refs/heads/main","commits":[{"id":"c0ffee","message":"fix build"}]}`)

		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, ingestRequest(t, "push", body, testSecret))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "capacity-check-failed")
	})

	t.Run("should_decline_workflow_job_with_sufficient_runners", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := provideApplicationHandler(ctrl)

		w, _ := app.A.WebhookRepo.(*mocks.MockWebhookRegistrationRepository)
		w.EXPECT().FindActiveWebhookRegistrations(gomock.Any()).Times(1).
			Return(activeRegistrations(), nil)

		f, _ := app.A.Fleet.(*mocks.MockClient)
		f.EXPECT().Occupancy(gomock.Any()).Times(1).
			Return(fleet.Occupancy{Running: 1}, nil)

		i, _ := app.A.InstallationRepo.(*mocks.MockInstallationRepository)
		i.EXPECT().FindInstallationByAccountLogin(gomock.Any(), "acme").Times(1).
			Return(nil, datastore.ErrInstallationNotFound)

		g, _ := app.A.GitHub.(*mocks.MockAPI)
		g.EXPECT().ListRunJobs(gomock.Any(), "ghp_fallback", "acme", "widgets", int64(42)).Times(1).
			Return(&githubapp.JobsSummary{Queued: 1}, nil)

		body := []byte(`{"action":"queued","workflow_job":{"id":7,"run_id":42,"name":"build","status":"queued"}}`)

		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, ingestRequest(t, "workflow_job", body, testSecret))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "sufficient-runners")
	})

	t.Run("should_admit_requested_workflow_run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := provideApplicationHandler(ctrl)

		w, _ := app.A.WebhookRepo.(*mocks.MockWebhookRegistrationRepository)
		w.EXPECT().FindActiveWebhookRegistrations(gomock.Any()).Times(1).
			Return(activeRegistrations(), nil)

		f, _ := app.A.Fleet.(*mocks.MockClient)
		f.EXPECT().Occupancy(gomock.Any()).Times(1).
			Return(fleet.Occupancy{Running: 2}, nil)

		body := []byte(`{"action":"requested","workflow_run":{"id":11,"name":"ci"}}`)

		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, ingestRequest(t, "workflow_run", body, testSecret))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "capacity-saturated")
	})

	t.Run("should_sync_directory_on_installation_created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		app := provideApplicationHandler(ctrl)

		w, _ := app.A.WebhookRepo.(*mocks.MockWebhookRegistrationRepository)
		w.EXPECT().FindActiveWebhookRegistrations(gomock.Any()).Times(1).
			Return(activeRegistrations(), nil)

		i, _ := app.A.InstallationRepo.(*mocks.MockInstallationRepository)
		i.EXPECT().UpsertInstallation(gomock.Any(), gomock.Any()).Times(1).
			Return(nil)

		body := []byte(`{"action":"created","installation":{"id":42,"account":{"id":7,"login":"acme","type":"Organization"}}}`)

		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, ingestRequest(t, "installation", body, testSecret))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "acknowledged")
	})
}
