package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/render"

	"github.com/getgantry/gantry/config"
	"github.com/getgantry/gantry/datastore"
	"github.com/getgantry/gantry/internal/pkg/metrics"
	"github.com/getgantry/gantry/pkg/ghevent"
	"github.com/getgantry/gantry/pkg/log"
	"github.com/getgantry/gantry/pkg/verifier"
	"github.com/getgantry/gantry/services"
	"github.com/getgantry/gantry/util"
)

const maxIngestSize = 1 << 20

// IngestEvent is the single entry point for GitHub webhook deliveries.
// Signature failure is the only authentication outcome surfaced as an
// error; every admission rejection is an acknowledged 200 so GitHub
// never retries a delivery we deliberately declined.
func (a *ApplicationHandler) IngestEvent(w http.ResponseWriter, r *http.Request) {
	eventType := r.Header.Get("X-GitHub-Event")
	deliveryID := r.Header.Get("X-GitHub-Delivery")
	signature := r.Header.Get("X-Hub-Signature-256")

	lo := log.FromContext(r.Context())
	lo.Infof("delivery %s (%s) received", deliveryID, eventType)

	if util.IsStringEmpty(eventType) {
		_ = render.Render(w, r, util.NewErrorResponse("missing event type header", http.StatusBadRequest))
		return
	}

	body := io.LimitReader(r.Body, maxIngestSize)
	payload, err := io.ReadAll(body)
	if err != nil {
		_ = render.Render(w, r, util.NewErrorResponse(err.Error(), http.StatusBadRequest))
		return
	}

	registration, err := a.matchRegistration(r, payload, signature)
	if err != nil {
		lo.WithError(err).Errorf("signature verification failed for delivery %s", deliveryID)
		_ = render.Render(w, r, util.NewErrorResponse("signature verification failed", http.StatusUnauthorized))
		return
	}

	event := &ghevent.Payload{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, event); err != nil {
			_ = render.Render(w, r, util.NewErrorResponse("malformed payload", http.StatusBadRequest))
			return
		}
	}

	intent := ghevent.Classify(eventType, event)
	metrics.RecordEvent(eventType, string(intent))

	switch intent {
	case ghevent.IntentIgnore:
		_ = render.Render(w, r, util.NewServerResponse("event ignored", nil, http.StatusOK))
		return

	case ghevent.IntentAcknowledge:
		if ghevent.IsDirectoryEvent(eventType) {
			ss := &services.SyncInstallationService{
				InstallationRepo: a.A.InstallationRepo,
				EventType:        eventType,
				Payload:          event,
			}

			if err := ss.Run(r.Context()); err != nil {
				lo.WithError(err).Error("failed to sync installation directory")
				_ = render.Render(w, r, util.NewServiceErrResponse(err))
				return
			}
		}

		_ = render.Render(w, r, util.NewServerResponse("event acknowledged", nil, http.StatusOK))
		return
	}

	a.admitAndProvision(w, r, eventType, event, registration)
}

// matchRegistration scans active registrations for a secret that
// verifies the delivery.
func (a *ApplicationHandler) matchRegistration(r *http.Request, payload []byte, signature string) (*datastore.WebhookRegistration, error) {
	registrations, err := a.A.WebhookRepo.FindActiveWebhookRegistrations(r.Context())
	if err != nil {
		return nil, err
	}

	for i := range registrations {
		v := verifier.NewGithubVerifier(registrations[i].Secret)
		if v.VerifyHeader(payload, signature) {
			return &registrations[i], nil
		}
	}

	return nil, datastore.ErrWebhookRegistrationNotFound
}

func (a *ApplicationHandler) admitAndProvision(w http.ResponseWriter, r *http.Request, eventType string, event *ghevent.Payload, registration *datastore.WebhookRegistration) {
	lo := log.FromContext(r.Context())

	cfg, err := config.Get()
	if err != nil {
		lo.WithError(err).Error("failed to load config")
		_ = render.Render(w, r, util.NewErrorResponse("failed to load config", http.StatusInternalServerError))
		return
	}

	as := &services.AdmitEventService{
		Ledger:           a.A.Ledger,
		Fleet:            a.A.Fleet,
		GitHub:           a.A.GitHub,
		InstallationRepo: a.A.InstallationRepo,
		FallbackToken:    cfg.GitHub.FallbackToken,
		MaxActiveTasks:   cfg.Admission.MaxActiveTasks,
		EventType:        eventType,
		Payload:          event,
		Registration:     registration,
	}

	decision, err := as.Run(r.Context())
	if err != nil {
		lo.WithError(err).Error("admission failed")
		_ = render.Render(w, r, util.NewServiceErrResponse(err))
		return
	}

	if !decision.Accepted {
		_ = render.Render(w, r, util.NewServerResponse("provisioning declined: "+string(decision.Reason), nil, http.StatusOK))
		return
	}

	ls := &services.LaunchRunnerService{
		Fleet:   a.A.Fleet,
		Request: decision.Request,
	}
	ls.Run(r.Context())

	_ = render.Render(w, r, util.NewServerResponse("runner provisioning triggered", nil, http.StatusOK))
}
