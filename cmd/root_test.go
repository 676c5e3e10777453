package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-inspector/config"
)

func run(t *testing.T, args ...string) *config.Config {
	t.Helper()
	var (
		loaded *config.Config
		err    error
	)
	root := &cobra.Command{Use: "host"}
	AddCommands(root)
	sub := &cobra.Command{
		Use: "run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err = LoadConfig(cmd)
			return err
		},
	}
	root.AddCommand(sub)
	root.SetArgs(append([]string{"run"}, args...))
	require.NoError(t, root.Execute())
	return loaded
}

func TestPersistentFlags(t *testing.T) {
	cfg := run(t, "--refresh-interval", "2s", "--strict", "--log-encoder", "json")
	require.Equal(t, 2*time.Second, cfg.Inspector.RefreshInterval)
	require.True(t, cfg.Inspector.Strict)
	require.Equal(t, "json", cfg.Logging.Encoder)
	require.False(t, cfg.Metrics.Enabled)
}

func TestConfigFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspector.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metrics:\n  enabled: true\n  addr: 127.0.0.1:0\n"), 0o600))

	cfg := run(t, "-c", path)
	require.True(t, cfg.Metrics.Enabled)
	require.Equal(t, "127.0.0.1:0", cfg.Metrics.Addr)
	require.Equal(t, config.DefaultConfig().Inspector, cfg.Inspector)
}
