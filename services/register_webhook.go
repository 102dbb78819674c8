package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/getgantry/gantry/datastore"
	"github.com/getgantry/gantry/internal/pkg/githubapp"
	"github.com/getgantry/gantry/pkg/log"
	"github.com/getgantry/gantry/util"
)

// RegisterWebhookService creates a repository webhook at GitHub and
// stores the registration. The secret is generated here, never derived
// from user input; rotation happens by re-registration, not mutation.
type RegisterWebhookService struct {
	WebhookRepo      datastore.WebhookRegistrationRepository
	InstallationRepo datastore.InstallationRepository
	GitHub           githubapp.API
	FallbackToken    string
	IngestURL        string

	OwnerLogin string
	RepoName   string
}

func (s *RegisterWebhookService) Run(ctx context.Context) (*datastore.WebhookRegistration, error) {
	lo := log.FromContext(ctx)

	existing, err := s.WebhookRepo.FindActiveWebhookRegistrationByRepo(ctx, s.OwnerLogin, s.RepoName)
	if err == nil {
		lo.Infof("webhook already registered for %s/%s", s.OwnerLogin, s.RepoName)
		return existing, nil
	}

	if !errors.Is(err, datastore.ErrWebhookRegistrationNotFound) {
		return nil, &ServiceError{ErrMsg: "failed to look up webhook registration", Err: err}
	}

	if util.IsStringEmpty(s.IngestURL) {
		return nil, util.NewServiceError(http.StatusBadRequest, errors.New("ingest url is not configured"))
	}

	resolve := &ResolveCredentialService{
		InstallationRepo: s.InstallationRepo,
		GitHub:           s.GitHub,
		FallbackToken:    s.FallbackToken,
		AccountLogin:     s.OwnerLogin,
	}

	credential, err := resolve.Run(ctx)
	if err != nil {
		return nil, &ServiceError{ErrMsg: "no credential available to create webhook", Err: err}
	}

	secret := util.GenerateSecret()

	hookID, err := s.GitHub.CreateRepoHook(ctx, credential.Token, &githubapp.RepoHook{
		Owner:  s.OwnerLogin,
		Repo:   s.RepoName,
		URL:    s.IngestURL,
		Secret: secret,
	})
	if err != nil {
		lo.WithError(err).Error("failed to create webhook on github")
		return nil, &ServiceError{ErrMsg: "failed to create webhook on github", Err: err}
	}

	registration := &datastore.WebhookRegistration{
		OwnerLogin:   s.OwnerLogin,
		RepoName:     s.RepoName,
		RemoteHookID: hookID,
		Secret:       secret,
		URL:          s.IngestURL,
		Active:       true,
	}

	if err := s.WebhookRepo.CreateWebhookRegistration(ctx, registration); err != nil {
		return nil, &ServiceError{ErrMsg: "failed to save webhook registration", Err: err}
	}

	lo.Infof("webhook %s registered for %s/%s", hookID, s.OwnerLogin, s.RepoName)

	return registration, nil
}
