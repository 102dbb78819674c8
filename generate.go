package gantry

//go:generate mockgen --source datastore/installation.go --destination mocks/installation.go -package mocks
//go:generate mockgen --source datastore/webhook_registration.go --destination mocks/webhook_registration.go -package mocks
//go:generate mockgen --source internal/pkg/githubapp/client.go --destination mocks/githubapp.go -package mocks
//go:generate mockgen --source internal/pkg/fleet/fleet.go --destination mocks/fleet.go -package mocks
