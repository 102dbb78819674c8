package services

import (
	"context"

	"github.com/getgantry/gantry/datastore"
	"github.com/getgantry/gantry/internal/pkg/fleet"
	"github.com/getgantry/gantry/internal/pkg/metrics"
	"github.com/getgantry/gantry/pkg/log"
)

// LaunchRunnerService hands an accepted provision request to the
// compute control plane. Launch failure is logged and absorbed; the
// webhook sender is not responsible for compute availability, and the
// cooldown commit is never retracted.
type LaunchRunnerService struct {
	Fleet   fleet.Client
	Request *datastore.ProvisionRequest
}

func (s *LaunchRunnerService) Run(ctx context.Context) {
	lo := log.FromContext(ctx)

	taskArn, err := s.Fleet.Launch(ctx, &fleet.LaunchRequest{
		Owner:   s.Request.OwnerLogin,
		Repo:    s.Request.RepoName,
		Token:   s.Request.Credential.Token,
		Trigger: s.Request.Trigger,
	})
	if err != nil {
		metrics.RecordLaunch("failed")
		lo.WithError(err).Errorf("runner task creation failed for %s/%s", s.Request.OwnerLogin, s.Request.RepoName)
		return
	}

	metrics.RecordLaunch("started")
	lo.Infof("runner task %s created for %s/%s (%s)", taskArn, s.Request.OwnerLogin, s.Request.RepoName, s.Request.Trigger)
}
