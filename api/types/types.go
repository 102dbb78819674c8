package types

import (
	"github.com/getgantry/gantry/database"
	"github.com/getgantry/gantry/datastore"
	"github.com/getgantry/gantry/internal/pkg/cooldown"
	"github.com/getgantry/gantry/internal/pkg/fleet"
	"github.com/getgantry/gantry/internal/pkg/githubapp"
	"github.com/getgantry/gantry/pkg/log"
)

type ContextKey string

type APIOptions struct {
	DB               database.Database
	InstallationRepo datastore.InstallationRepository
	WebhookRepo      datastore.WebhookRegistrationRepository
	Fleet            fleet.Client
	GitHub           githubapp.API
	Ledger           *cooldown.Ledger
	Logger           log.StdLogger
}
