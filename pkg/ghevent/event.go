package ghevent

import "strings"

// GitHub webhook event types this controller consumes. Anything else
// riding the same hook channel is acknowledged and dropped.
const (
	EventPing                     = "ping"
	EventPush                     = "push"
	EventWorkflowJob              = "workflow_job"
	EventWorkflowRun              = "workflow_run"
	EventInstallation             = "installation"
	EventInstallationRepositories = "installation_repositories"
)

const (
	ActionQueued    = "queued"
	ActionRequested = "requested"
	ActionCreated   = "created"
	ActionDeleted   = "deleted"
	ActionAdded     = "added"
	ActionRemoved   = "removed"
)

type Account struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Type  string `json:"type"`
}

type Repository struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	FullName string  `json:"full_name"`
	Owner    Account `json:"owner"`
}

type InstallationRef struct {
	ID          int64             `json:"id"`
	Account     Account           `json:"account"`
	Permissions map[string]string `json:"permissions"`
	Events      []string          `json:"events"`
	SuspendedAt string            `json:"suspended_at"`
}

type Commit struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type WorkflowJob struct {
	ID     int64    `json:"id"`
	RunID  int64    `json:"run_id"`
	Name   string   `json:"name"`
	Status string   `json:"status"`
	Labels []string `json:"labels"`
}

type WorkflowRun struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Payload is the superset of the webhook payload fields this
// controller reads. GitHub sends much more; everything else is
// ignored on decode.
type Payload struct {
	Action              string           `json:"action"`
	Ref                 string           `json:"ref"`
	Commits             []Commit         `json:"commits"`
	Repository          *Repository      `json:"repository"`
	Installation        *InstallationRef `json:"installation"`
	WorkflowJob         *WorkflowJob     `json:"workflow_job"`
	WorkflowRun         *WorkflowRun     `json:"workflow_run"`
	RepositoriesAdded   []Repository     `json:"repositories_added"`
	RepositoriesRemoved []Repository     `json:"repositories_removed"`
}

// Branch strips the refs/heads/ prefix from a push ref.
func (p *Payload) Branch() string {
	return strings.TrimPrefix(p.Ref, "refs/heads/")
}

// RunID returns the workflow run the triggering job belongs to, or 0.
func (p *Payload) RunID() int64 {
	if p.WorkflowJob != nil {
		return p.WorkflowJob.RunID
	}
	if p.WorkflowRun != nil {
		return p.WorkflowRun.ID
	}
	return 0
}

// InstallationID returns the installation carried in the payload, or 0
// when the delivery has no installation context.
func (p *Payload) InstallationID() int64 {
	if p.Installation == nil {
		return 0
	}
	return p.Installation.ID
}
