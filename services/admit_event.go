package services

import (
	"context"

	"github.com/getgantry/gantry/datastore"
	"github.com/getgantry/gantry/internal/pkg/cooldown"
	"github.com/getgantry/gantry/internal/pkg/fleet"
	"github.com/getgantry/gantry/internal/pkg/githubapp"
	"github.com/getgantry/gantry/internal/pkg/metrics"
	"github.com/getgantry/gantry/pkg/ghevent"
	"github.com/getgantry/gantry/pkg/log"
)

type RejectReason string

const (
	RejectCooldownActive          RejectReason = "cooldown-active"
	RejectCapacitySaturated       RejectReason = "capacity-saturated"
	RejectCapacityCheckFailed     RejectReason = "capacity-check-failed"
	RejectSufficientRunners       RejectReason = "sufficient-runners"
	RejectQueueCheckFailed        RejectReason = "queue-check-failed"
	RejectInsufficientPermissions RejectReason = "insufficient-permissions"
	RejectNoCredential            RejectReason = "no-credential"
)

// Decision is the value an admission run produces. It carries no side
// effects beyond the cooldown ledger commit on acceptance; launching is
// a separate step.
type Decision struct {
	Accepted bool
	Reason   RejectReason
	Request  *datastore.ProvisionRequest
}

func reject(reason RejectReason) *Decision {
	metrics.RecordDecision(string(reason))
	return &Decision{Accepted: false, Reason: reason}
}

// AdmitEventService turns a webhook delivery, current fleet occupancy
// and remote queue depth into one provisioning decision. The fleet and
// queue checks are read-then-decide over eventually consistent remote
// views, bounded by the cooldown ledger and the occupancy ceiling.
type AdmitEventService struct {
	Ledger           *cooldown.Ledger
	Fleet            fleet.Client
	GitHub           githubapp.API
	InstallationRepo datastore.InstallationRepository
	FallbackToken    string
	MaxActiveTasks   int

	EventType    string
	Payload      *ghevent.Payload
	Registration *datastore.WebhookRegistration
}

func (s *AdmitEventService) Run(ctx context.Context) (*Decision, error) {
	lo := log.FromContext(ctx)

	owner := s.Registration.OwnerLogin
	repo := s.Registration.RepoName
	repoKey := s.Registration.RepoKey()

	if s.Ledger.Active(repoKey) {
		lo.Infof("cooldown active for %s, skipping duplicate", repoKey)
		return reject(RejectCooldownActive), nil
	}

	// unknown occupancy declines rather than launching blind; the
	// sender still gets an acknowledgement
	occupancy, err := s.Fleet.Occupancy(ctx)
	if err != nil {
		lo.WithError(err).Error("could not query fleet occupancy")
		return reject(RejectCapacityCheckFailed), nil
	}

	total := occupancy.Total()
	lo.Infof("active tasks: %d (running: %d, pending: %d)", total, occupancy.Running, occupancy.Pending)

	if total >= s.MaxActiveTasks {
		if s.EventType != ghevent.EventWorkflowJob {
			return reject(RejectCapacitySaturated), nil
		}

		// workflow_job is the most specific signal there is queued
		// work; it may override saturation once and fall through to
		// the queue-depth check.
		lo.Warnf("allowing workflow_job despite %d active tasks", total)
	}

	if total > 0 && s.EventType == ghevent.EventWorkflowJob {
		decision := s.checkQueueDepth(ctx, owner, repo, total)
		if decision != nil {
			return decision, nil
		}
	}

	credential, err := s.resolveCredential(ctx)
	if err != nil {
		lo.WithError(err).Error("no usable credential for admission")
		return reject(RejectNoCredential), nil
	}

	// preflight: a credential that cannot obtain a runner registration
	// token would produce compute that can never register
	if _, err := s.GitHub.RegistrationToken(ctx, credential.Token, owner, repo); err != nil {
		lo.WithError(err).Error("registration token preflight failed")
		return reject(RejectInsufficientPermissions), nil
	}

	// commit point: record the acceptance before launch so a
	// near-simultaneous delivery for the same repository loses here
	// rather than double-provisioning
	if !s.Ledger.TryAcquire(repoKey) {
		return reject(RejectCooldownActive), nil
	}

	metrics.RecordDecision("accepted")

	return &Decision{
		Accepted: true,
		Request: &datastore.ProvisionRequest{
			EventType:  s.EventType,
			Action:     s.Payload.Action,
			OwnerLogin: owner,
			RepoName:   repo,
			Credential: *credential,
			Trigger:    ghevent.Trigger(s.EventType, s.Payload),
		},
	}, nil
}

// checkQueueDepth compares occupancy against the queued jobs of the
// triggering run. A nil return means the check passed and admission
// continues. Remote failures reject conservatively whenever any task
// is active; a first runner is never blocked on a failed remote query.
func (s *AdmitEventService) checkQueueDepth(ctx context.Context, owner, repo string, total int) *Decision {
	lo := log.FromContext(ctx)

	credential, err := s.resolveCredential(ctx)
	if err != nil {
		lo.WithError(err).Warn("could not resolve credential for queue check")
		if total > 0 {
			return reject(RejectQueueCheckFailed)
		}
		return nil
	}

	summary, err := s.GitHub.ListRunJobs(ctx, credential.Token, owner, repo, s.Payload.RunID())
	if err != nil {
		lo.WithError(err).Warn("could not check remote job queue")
		if total > 0 {
			return reject(RejectQueueCheckFailed)
		}
		return nil
	}

	if total >= summary.Queued {
		lo.Infof("sufficient runners (%d) for queued jobs (%d)", total, summary.Queued)
		return reject(RejectSufficientRunners)
	}

	return nil
}

func (s *AdmitEventService) resolveCredential(ctx context.Context) (*datastore.Credential, error) {
	rc := &ResolveCredentialService{
		InstallationRepo: s.InstallationRepo,
		GitHub:           s.GitHub,
		FallbackToken:    s.FallbackToken,
		AccountLogin:     s.Registration.OwnerLogin,
		InstallationID:   s.Payload.InstallationID(),
	}

	return rc.Run(ctx)
}
