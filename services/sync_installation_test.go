package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/getgantry/gantry/datastore"
	"github.com/getgantry/gantry/mocks"
	"github.com/getgantry/gantry/pkg/ghevent"
)

func provideSyncInstallationService(ctrl *gomock.Controller, eventType string, payload *ghevent.Payload) *SyncInstallationService {
	return &SyncInstallationService{
		InstallationRepo: mocks.NewMockInstallationRepository(ctrl),
		EventType:        eventType,
		Payload:          payload,
	}
}

func installationPayload(action string) *ghevent.Payload {
	return &ghevent.Payload{
		Action: action,
		Installation: &ghevent.InstallationRef{
			ID:          42,
			Account:     ghevent.Account{ID: 7, Login: "acme", Type: "Organization"},
			Permissions: map[string]string{"actions": "read", "administration": "write"},
			Events:      []string{"push", "workflow_job"},
		},
	}
}

func TestSyncInstallationService_Run(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		eventType string
		payload   *ghevent.Payload
		dbFn      func(s *SyncInstallationService)
		wantErr   bool
	}{
		{
			name:      "should_upsert_on_installation_created",
			eventType: ghevent.EventInstallation,
			payload:   installationPayload(ghevent.ActionCreated),
			dbFn: func(s *SyncInstallationService) {
				i, _ := s.InstallationRepo.(*mocks.MockInstallationRepository)
				i.EXPECT().UpsertInstallation(gomock.Any(), gomock.Any()).Times(1).
					DoAndReturn(func(_ context.Context, installation *datastore.Installation) error {
						require.Equal(t, int64(42), installation.InstallationID)
						require.Equal(t, "acme", installation.AccountLogin)
						require.Equal(t, datastore.OrganisationAccount, installation.AccountType)
						require.False(t, installation.SuspendedAt.Valid)
						require.Contains(t, installation.Permissions, "administration")
						return nil
					})
			},
		},
		{
			name:      "should_delete_on_installation_deleted",
			eventType: ghevent.EventInstallation,
			payload:   installationPayload(ghevent.ActionDeleted),
			dbFn: func(s *SyncInstallationService) {
				i, _ := s.InstallationRepo.(*mocks.MockInstallationRepository)
				i.EXPECT().DeleteInstallation(gomock.Any(), int64(42)).Times(1).
					Return(nil)
			},
		},
		{
			name:      "should_mark_suspended_on_suspend",
			eventType: ghevent.EventInstallation,
			payload:   installationPayload("suspend"),
			dbFn: func(s *SyncInstallationService) {
				i, _ := s.InstallationRepo.(*mocks.MockInstallationRepository)
				i.EXPECT().UpsertInstallation(gomock.Any(), gomock.Any()).Times(1).
					DoAndReturn(func(_ context.Context, installation *datastore.Installation) error {
						require.True(t, installation.SuspendedAt.Valid)
						return nil
					})
			},
		},
		{
			name:      "should_clear_suspension_on_unsuspend",
			eventType: ghevent.EventInstallation,
			payload:   installationPayload("unsuspend"),
			dbFn: func(s *SyncInstallationService) {
				i, _ := s.InstallationRepo.(*mocks.MockInstallationRepository)
				i.EXPECT().UpsertInstallation(gomock.Any(), gomock.Any()).Times(1).
					DoAndReturn(func(_ context.Context, installation *datastore.Installation) error {
						require.False(t, installation.SuspendedAt.Valid)
						return nil
					})
			},
		},
		{
			name:      "should_ignore_repository_selection_changes",
			eventType: ghevent.EventInstallationRepositories,
			payload: &ghevent.Payload{
				Action:            ghevent.ActionAdded,
				Installation:      &ghevent.InstallationRef{ID: 42, Account: ghevent.Account{Login: "acme"}},
				RepositoriesAdded: []ghevent.Repository{{Name: "widgets"}},
			},
		},
		{
			name:      "should_drop_event_without_installation_context",
			eventType: ghevent.EventInstallation,
			payload:   &ghevent.Payload{Action: ghevent.ActionCreated},
		},
		{
			name:      "should_ignore_unknown_installation_action",
			eventType: ghevent.EventInstallation,
			payload:   installationPayload("new_permissions_accepted"),
		},
		{
			name:      "should_fail_when_directory_write_fails",
			eventType: ghevent.EventInstallation,
			payload:   installationPayload(ghevent.ActionCreated),
			dbFn: func(s *SyncInstallationService) {
				i, _ := s.InstallationRepo.(*mocks.MockInstallationRepository)
				i.EXPECT().UpsertInstallation(gomock.Any(), gomock.Any()).Times(1).
					Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ss := provideSyncInstallationService(ctrl, tc.eventType, tc.payload)

			if tc.dbFn != nil {
				tc.dbFn(ss)
			}

			err := ss.Run(ctx)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}
