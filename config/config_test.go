package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	cfg, err := Get()
	require.NoError(t, err)

	require.Equal(t, DevelopmentEnvironment, cfg.Environment)
	require.Equal(t, DefaultGithubAPIURL, cfg.GitHub.APIURL)
	require.Equal(t, 15*time.Second, cfg.Admission.Cooldown())
	require.Equal(t, 60*time.Second, cfg.Admission.PruneHorizon())
	require.Equal(t, 2, cfg.Admission.MaxActiveTasks)
}

func TestLoadConfig_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gantry.json")
	body := `{
		"fleet": {
			"cluster": "runners",
			"task_definition": "gantry-runner",
			"subnet_ids": "subnet-a, subnet-b,"
		},
		"admission": {"cooldown_seconds": 30, "prune_horizon_seconds": 120}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	t.Setenv("GANTRY_ECS_CLUSTER", "runners-eu")

	require.NoError(t, LoadConfig(path))

	cfg, err := Get()
	require.NoError(t, err)

	require.Equal(t, "runners-eu", cfg.Fleet.Cluster)
	require.Equal(t, "gantry-runner", cfg.Fleet.TaskDefinition)
	require.Equal(t, []string{"subnet-a", "subnet-b"}, cfg.Fleet.Subnets())
	require.Equal(t, 30*time.Second, cfg.Admission.Cooldown())
}

func TestLoadConfig_RejectsShortPruneHorizon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gantry.json")
	body := `{"admission": {"cooldown_seconds": 30, "prune_horizon_seconds": 20}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	require.Error(t, LoadConfig(path))
}
