package ghevent

import "fmt"

type Intent string

const (
	// IntentIgnore drops the event without side effects.
	IntentIgnore Intent = "ignore"

	// IntentAcknowledge confirms receipt; installation lifecycle
	// events additionally update the installation directory.
	IntentAcknowledge Intent = "acknowledge"

	// IntentProvision marks the event as a candidate for runner
	// provisioning, subject to admission control.
	IntentProvision Intent = "provision-candidate"
)

// Classify maps a raw event to an intent. Only events that reliably
// indicate new queued work become provision candidates; status,
// comment and PR-metadata events riding the same hook channel are
// acknowledged and dropped.
func Classify(eventType string, p *Payload) Intent {
	switch eventType {
	case EventPing:
		return IntentAcknowledge
	case EventInstallation, EventInstallationRepositories:
		return IntentAcknowledge
	case EventPush:
		if p == nil || len(p.Commits) == 0 {
			return IntentIgnore
		}
		return IntentProvision
	case EventWorkflowJob:
		if p == nil || p.Action != ActionQueued {
			return IntentIgnore
		}
		return IntentProvision
	case EventWorkflowRun:
		if p == nil || p.Action != ActionRequested {
			return IntentIgnore
		}
		return IntentProvision
	default:
		return IntentAcknowledge
	}
}

// IsDirectoryEvent reports whether the event mutates the installation
// directory.
func IsDirectoryEvent(eventType string) bool {
	return eventType == EventInstallation || eventType == EventInstallationRepositories
}

// Trigger builds the human-readable cause annotation injected into the
// runner environment, e.g. "workflow_job-job-build" or "push-push-main".
func Trigger(eventType string, p *Payload) string {
	detail := ""

	switch eventType {
	case EventWorkflowJob:
		name := "unknown"
		if p != nil && p.WorkflowJob != nil {
			name = p.WorkflowJob.Name
		}
		detail = "job-" + name
	case EventWorkflowRun:
		name := "unknown"
		if p != nil && p.WorkflowRun != nil {
			name = p.WorkflowRun.Name
		}
		detail = "workflow-" + name
	case EventPush:
		branch := ""
		if p != nil {
			branch = p.Branch()
		}
		detail = "push-" + branch
	}

	return fmt.Sprintf("%s-%s", eventType, detail)
}
