package services

import (
	"context"
	"encoding/json"
	"time"

	"gopkg.in/guregu/null.v4"

	"github.com/getgantry/gantry/datastore"
	"github.com/getgantry/gantry/pkg/ghevent"
	"github.com/getgantry/gantry/pkg/log"
)

// SyncInstallationService applies installation lifecycle events to the
// installation directory. These events never flow through admission.
type SyncInstallationService struct {
	InstallationRepo datastore.InstallationRepository

	EventType string
	Payload   *ghevent.Payload
}

func (s *SyncInstallationService) Run(ctx context.Context) error {
	lo := log.FromContext(ctx)

	if s.Payload == nil || s.Payload.Installation == nil {
		lo.Warnf("%s event without installation context, dropping", s.EventType)
		return nil
	}

	ref := s.Payload.Installation

	switch s.EventType {
	case ghevent.EventInstallation:
		switch s.Payload.Action {
		case ghevent.ActionCreated:
			lo.Infof("app installed for %s (installation %d)", ref.Account.Login, ref.ID)
			return s.upsert(ctx, ref, null.Time{})
		case ghevent.ActionDeleted:
			lo.Infof("app uninstalled for %s (installation %d)", ref.Account.Login, ref.ID)

			err := s.InstallationRepo.DeleteInstallation(ctx, ref.ID)
			if err != nil {
				return &ServiceError{ErrMsg: "failed to delete installation", Err: err}
			}
			return nil
		case "suspend":
			return s.upsert(ctx, ref, null.TimeFrom(time.Now()))
		case "unsuspend":
			return s.upsert(ctx, ref, null.Time{})
		default:
			lo.Debugf("ignoring installation action %q", s.Payload.Action)
			return nil
		}

	case ghevent.EventInstallationRepositories:
		// repository selection changes don't affect credential
		// resolution; log for operators only
		switch s.Payload.Action {
		case ghevent.ActionAdded:
			lo.Infof("%d repositories added to installation %d", len(s.Payload.RepositoriesAdded), ref.ID)
		case ghevent.ActionRemoved:
			lo.Infof("%d repositories removed from installation %d", len(s.Payload.RepositoriesRemoved), ref.ID)
		}
		return nil
	}

	return nil
}

func (s *SyncInstallationService) upsert(ctx context.Context, ref *ghevent.InstallationRef, suspendedAt null.Time) error {
	permissions, _ := json.Marshal(ref.Permissions)
	events, _ := json.Marshal(ref.Events)

	installation := &datastore.Installation{
		InstallationID: ref.ID,
		AccountID:      ref.Account.ID,
		AccountLogin:   ref.Account.Login,
		AccountType:    datastore.AccountType(ref.Account.Type),
		Permissions:    string(permissions),
		Events:         string(events),
		SuspendedAt:    suspendedAt,
	}

	if err := s.InstallationRepo.UpsertInstallation(ctx, installation); err != nil {
		return &ServiceError{ErrMsg: "failed to save installation", Err: err}
	}

	return nil
}
