package cli

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/getgantry/gantry/database"
	"github.com/getgantry/gantry/internal/pkg/cooldown"
	"github.com/getgantry/gantry/internal/pkg/fleet"
	"github.com/getgantry/gantry/internal/pkg/githubapp"
	"github.com/getgantry/gantry/pkg/log"
)

// App is the core dependency of the entire binary.
type App struct {
	Version string
	DB      database.Database
	Fleet   fleet.Client
	GitHub  githubapp.API
	Ledger  *cooldown.Ledger
	Logger  log.StdLogger
}

type GantryCli struct {
	cmd *cobra.Command
}

func NewCli(app *App) *GantryCli {
	cmd := &cobra.Command{
		Use:     "Gantry",
		Version: app.Version,
		Short:   "Webhook-driven CI runner provisioning controller",
	}

	return &GantryCli{cmd: cmd}
}

func (c *GantryCli) Flags() *flag.FlagSet {
	return c.cmd.PersistentFlags()
}

func (c *GantryCli) PersistentPreRunE(fn func(*cobra.Command, []string) error) {
	c.cmd.PersistentPreRunE = fn
}

func (c *GantryCli) PersistentPostRunE(fn func(*cobra.Command, []string) error) {
	c.cmd.PersistentPostRunE = fn
}

func (c *GantryCli) AddCommand(subCmd *cobra.Command) {
	c.cmd.AddCommand(subCmd)
}

func (c *GantryCli) Execute() error {
	return c.cmd.Execute()
}
