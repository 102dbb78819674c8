package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/getgantry/gantry/config"
	"github.com/getgantry/gantry/datastore"
	"github.com/getgantry/gantry/pkg/log"
	"github.com/getgantry/gantry/services"
	"github.com/getgantry/gantry/util"
)

type registerWebhookRequest struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

type webhookRegistrationResponse struct {
	UID          string `json:"uid"`
	Owner        string `json:"owner"`
	Repo         string `json:"repo"`
	RemoteHookID string `json:"remote_hook_id"`
	URL          string `json:"url"`
	Secret       string `json:"secret"`
	Active       bool   `json:"active"`
}

func newWebhookRegistrationResponse(registration *datastore.WebhookRegistration) webhookRegistrationResponse {
	return webhookRegistrationResponse{
		UID:          registration.UID,
		Owner:        registration.OwnerLogin,
		Repo:         registration.RepoName,
		RemoteHookID: registration.RemoteHookID,
		URL:          registration.URL,
		Secret:       util.TruncateSecret(registration.Secret),
		Active:       registration.Active,
	}
}

func (a *ApplicationHandler) RegisterWebhook(w http.ResponseWriter, r *http.Request) {
	var req registerWebhookRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		_ = render.Render(w, r, util.NewErrorResponse(err.Error(), http.StatusBadRequest))
		return
	}

	if util.IsStringEmpty(req.Owner) || util.IsStringEmpty(req.Repo) {
		_ = render.Render(w, r, util.NewErrorResponse("owner and repo are required", http.StatusBadRequest))
		return
	}

	cfg, err := config.Get()
	if err != nil {
		_ = render.Render(w, r, util.NewErrorResponse("failed to load config", http.StatusInternalServerError))
		return
	}

	rs := &services.RegisterWebhookService{
		WebhookRepo:      a.A.WebhookRepo,
		InstallationRepo: a.A.InstallationRepo,
		GitHub:           a.A.GitHub,
		FallbackToken:    cfg.GitHub.FallbackToken,
		IngestURL:        cfg.Server.HTTP.IngestURL,
		OwnerLogin:       req.Owner,
		RepoName:         req.Repo,
	}

	registration, err := rs.Run(r.Context())
	if err != nil {
		log.FromContext(r.Context()).WithError(err).Error("failed to register webhook")
		_ = render.Render(w, r, util.NewServiceErrResponse(err))
		return
	}

	_ = render.Render(w, r, util.NewServerResponse("webhook registered successfully",
		newWebhookRegistrationResponse(registration), http.StatusCreated))
}

func (a *ApplicationHandler) ListWebhookRegistrations(w http.ResponseWriter, r *http.Request) {
	registrations, err := a.A.WebhookRepo.FindActiveWebhookRegistrations(r.Context())
	if err != nil {
		_ = render.Render(w, r, util.NewServiceErrResponse(err))
		return
	}

	out := make([]webhookRegistrationResponse, 0, len(registrations))
	for i := range registrations {
		out = append(out, newWebhookRegistrationResponse(&registrations[i]))
	}

	_ = render.Render(w, r, util.NewServerResponse("webhook registrations fetched successfully", out, http.StatusOK))
}

func (a *ApplicationHandler) DeactivateWebhookRegistration(w http.ResponseWriter, r *http.Request) {
	webhookID := chi.URLParam(r, "webhookID")

	err := a.A.WebhookRepo.DeactivateWebhookRegistration(r.Context(), webhookID)
	if err != nil {
		_ = render.Render(w, r, util.NewServiceErrResponse(err))
		return
	}

	_ = render.Render(w, r, util.NewServerResponse("webhook registration deactivated", nil, http.StatusOK))
}
