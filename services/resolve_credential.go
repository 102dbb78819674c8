package services

import (
	"context"
	"errors"

	"github.com/getgantry/gantry/datastore"
	"github.com/getgantry/gantry/internal/pkg/githubapp"
	"github.com/getgantry/gantry/pkg/log"
	"github.com/getgantry/gantry/util"
)

var ErrNoCredential = errors.New("no credential source is available for this account")

// ResolveCredentialService produces a short-lived bearer credential for
// the target account, preferring an installation-scoped token over the
// configured fallback. The app assertion behind the exchange is minted
// fresh on every resolution.
type ResolveCredentialService struct {
	InstallationRepo datastore.InstallationRepository
	GitHub           githubapp.API
	FallbackToken    string

	AccountLogin string

	// InstallationID is an optional hint carried in the webhook
	// payload; when present it skips the directory lookup.
	InstallationID int64
}

func (s *ResolveCredentialService) Run(ctx context.Context) (*datastore.Credential, error) {
	installationID := s.InstallationID

	if installationID == 0 {
		installation, err := s.InstallationRepo.FindInstallationByAccountLogin(ctx, s.AccountLogin)
		switch {
		case err == nil:
			if installation.IsSuspended() {
				log.FromContext(ctx).Warnf("installation %d for %s is suspended, falling back", installation.InstallationID, s.AccountLogin)
			} else {
				installationID = installation.InstallationID
			}
		case errors.Is(err, datastore.ErrInstallationNotFound):
			// no installation registered, try the fallback below
		default:
			return nil, &ServiceError{ErrMsg: "failed to look up installation", Err: err}
		}
	}

	if installationID != 0 {
		token, err := s.GitHub.InstallationToken(ctx, installationID)
		if err != nil {
			log.FromContext(ctx).WithError(err).Errorf("failed to exchange token for installation %d", installationID)
			return nil, &ServiceError{ErrMsg: "failed to exchange installation token", Err: err}
		}

		return &datastore.Credential{Token: token, Source: datastore.InstallationCredential}, nil
	}

	if util.IsStringEmpty(s.FallbackToken) {
		return nil, ErrNoCredential
	}

	return &datastore.Credential{Token: s.FallbackToken, Source: datastore.FallbackCredential}, nil
}
