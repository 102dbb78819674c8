package datastore

type CredentialSource string

const (
	InstallationCredential CredentialSource = "installation"
	FallbackCredential     CredentialSource = "fallback"
)

// Credential is a short-lived bearer token usable against the
// source-control API. Never persisted.
type Credential struct {
	Token  string
	Source CredentialSource
}

// ProvisionRequest is the hand-off between an accepted admission
// decision and the provisioner. Constructed per decision, discarded
// after launch.
type ProvisionRequest struct {
	EventType  string
	Action     string
	OwnerLogin string
	RepoName   string
	Credential Credential
	Trigger    string
}
