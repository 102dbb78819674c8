package config

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/getgantry/gantry/util"
)

const (
	DevelopmentEnvironment string = "development"

	DefaultGithubAPIURL = "https://api.github.com"
)

var cfgSingleton atomic.Value

var DefaultConfiguration = Configuration{
	Environment: DevelopmentEnvironment,
	Server: ServerConfiguration{
		HTTP: HTTPServerConfiguration{
			Port: 5005,
		},
	},
	GitHub: GitHubConfiguration{
		APIURL: DefaultGithubAPIURL,
	},
	Fleet: FleetConfiguration{
		LaunchType:     "FARGATE",
		AssignPublicIP: "ENABLED",
	},
	Admission: AdmissionConfiguration{
		CooldownSeconds:     15,
		PruneHorizonSeconds: 60,
		MaxActiveTasks:      2,
	},
	Logger: LoggerConfiguration{
		Level: "info",
	},
}

type DatabaseConfiguration struct {
	Dsn string `json:"dsn" envconfig:"GANTRY_DB_DSN"`
}

type HTTPServerConfiguration struct {
	Port      uint32 `json:"port" envconfig:"PORT"`
	IngestURL string `json:"ingest_url" envconfig:"GANTRY_INGEST_URL"`
}

type ServerConfiguration struct {
	HTTP HTTPServerConfiguration `json:"http"`
}

type GitHubConfiguration struct {
	AppID          int64  `json:"app_id" envconfig:"GANTRY_GITHUB_APP_ID"`
	PrivateKey     string `json:"private_key" envconfig:"GANTRY_GITHUB_APP_PRIVATE_KEY"`
	PrivateKeyPath string `json:"private_key_path" envconfig:"GANTRY_GITHUB_APP_PRIVATE_KEY_PATH"`
	FallbackToken  string `json:"fallback_token" envconfig:"GANTRY_GITHUB_FALLBACK_TOKEN"`
	APIURL         string `json:"api_url" envconfig:"GANTRY_GITHUB_API_URL"`
}

type FleetConfiguration struct {
	Region           string `json:"region" envconfig:"GANTRY_AWS_REGION"`
	Cluster          string `json:"cluster" envconfig:"GANTRY_ECS_CLUSTER"`
	TaskDefinition   string `json:"task_definition" envconfig:"GANTRY_ECS_TASK_DEFINITION"`
	ContainerName    string `json:"container_name" envconfig:"GANTRY_ECS_CONTAINER_NAME"`
	LaunchType       string `json:"launch_type" envconfig:"GANTRY_ECS_LAUNCH_TYPE"`
	SubnetIDs        string `json:"subnet_ids" envconfig:"GANTRY_ECS_SUBNET_IDS"`
	SecurityGroupIDs string `json:"security_group_ids" envconfig:"GANTRY_ECS_SECURITY_GROUP_IDS"`
	AssignPublicIP   string `json:"assign_public_ip" envconfig:"GANTRY_ECS_ASSIGN_PUBLIC_IP"`
}

// Subnets splits the comma separated subnet list, dropping empty entries.
func (f FleetConfiguration) Subnets() []string {
	return splitList(f.SubnetIDs)
}

func (f FleetConfiguration) SecurityGroups() []string {
	return splitList(f.SecurityGroupIDs)
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if !util.IsStringEmpty(v) {
			out = append(out, strings.TrimSpace(v))
		}
	}
	return out
}

type AdmissionConfiguration struct {
	CooldownSeconds     uint64 `json:"cooldown_seconds" envconfig:"GANTRY_COOLDOWN_SECONDS"`
	PruneHorizonSeconds uint64 `json:"prune_horizon_seconds" envconfig:"GANTRY_PRUNE_HORIZON_SECONDS"`
	MaxActiveTasks      int    `json:"max_active_tasks" envconfig:"GANTRY_MAX_ACTIVE_TASKS"`
}

func (a AdmissionConfiguration) Cooldown() time.Duration {
	return time.Duration(a.CooldownSeconds) * time.Second
}

func (a AdmissionConfiguration) PruneHorizon() time.Duration {
	return time.Duration(a.PruneHorizonSeconds) * time.Second
}

type LoggerConfiguration struct {
	Level string `json:"level" envconfig:"GANTRY_LOG_LEVEL"`
}

type Configuration struct {
	Environment string                 `json:"env" envconfig:"GANTRY_ENV"`
	Server      ServerConfiguration    `json:"server"`
	Database    DatabaseConfiguration  `json:"database"`
	GitHub      GitHubConfiguration    `json:"github"`
	Fleet       FleetConfiguration     `json:"fleet"`
	Admission   AdmissionConfiguration `json:"admission"`
	Logger      LoggerConfiguration    `json:"logger"`
}

// LoadConfig reads the optional JSON config file at p, then applies
// environment variable overrides on top of it.
func LoadConfig(p string) error {
	c := DefaultConfiguration

	if _, err := os.Stat(p); err == nil {
		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		// The file may not carry every section; absent keys keep defaults.
		if err := json.NewDecoder(f).Decode(&c); err != nil {
			return err
		}
	}

	if err := envconfig.Process("gantry", &c); err != nil {
		return err
	}

	if err := validate(&c); err != nil {
		return err
	}

	cfgSingleton.Store(&c)
	return nil
}

// Get fetches the application configuration. LoadConfig must have been
// called previously for this to work.
func Get() (Configuration, error) {
	c, ok := cfgSingleton.Load().(*Configuration)
	if !ok {
		return Configuration{}, errors.New("call LoadConfig before this function")
	}

	return *c, nil
}

// Override replaces the stored configuration; used by tests and by cli
// flag overrides.
func Override(newCfg *Configuration) error {
	if err := validate(newCfg); err != nil {
		return err
	}

	cfgSingleton.Store(newCfg)
	return nil
}

func validate(c *Configuration) error {
	if util.IsStringEmpty(c.GitHub.APIURL) {
		c.GitHub.APIURL = DefaultGithubAPIURL
	}

	if c.Admission.CooldownSeconds == 0 {
		c.Admission.CooldownSeconds = DefaultConfiguration.Admission.CooldownSeconds
	}

	if c.Admission.PruneHorizonSeconds == 0 {
		c.Admission.PruneHorizonSeconds = DefaultConfiguration.Admission.PruneHorizonSeconds
	}

	if c.Admission.MaxActiveTasks == 0 {
		c.Admission.MaxActiveTasks = DefaultConfiguration.Admission.MaxActiveTasks
	}

	if c.Admission.PruneHorizonSeconds < c.Admission.CooldownSeconds {
		return errors.New("prune horizon cannot be shorter than the cooldown window")
	}

	return nil
}
