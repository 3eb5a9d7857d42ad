package cmd

import (
	"github.com/arkadda/seri"
	"github.com/arkadda/seri/chain"
	"github.com/arkadda/seri/log"
	"github.com/jinzhu/configor"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
	"strings"
)

var (
	prefix     string
	network    string
	configPath string
	apiKey     string
	logLevel   string

	cfg fileConfig
)

// fileConfig is the optional YAML config merged under the flags.
type fileConfig struct {
	Mnemonic     string `yaml:"mnemonic"`
	Address      string `yaml:"address"`
	APIKey       string `yaml:"api_key"`
	ExplorerURL  string `yaml:"explorer_url"`
	AssemblerURL string `yaml:"assembler_url"`
}

var cmdLogger = log.ModuleLogger("cmd")

var rootCmd = &cobra.Command{
	Use:          "seri",
	Short:        "An auction-house client for UTXO contract auctions",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		net, err := chain.NetworkFromName(network)
		if err != nil {
			return errors.Wrap(err, "invalid network")
		}

		if err := log.SetLevelFromName(logLevel); err != nil {
			return errors.Wrap(err, "invalid log level")
		}

		dd, err := ensureDataDir(prefix, net.Name)
		if err != nil {
			return errors.Wrap(err, "invalid prefix")
		}

		if configPath != "" {
			if err := configor.Load(&cfg, configPath); err != nil {
				return errors.Wrap(err, "error loading config file")
			}
		}
		if apiKey != "" {
			cfg.APIKey = apiKey
		}

		seri.Config.Prefix = dd
		seri.Config.Network = net
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&prefix, "prefix", "~/.seri", "Sets seri's data directory")
	rootCmd.PersistentFlags().StringVarP(&network, "network", "n", "main", "Sets seri's network")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Sets the daemon's API key")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Sets the log level")
}

func ensureDataDir(prefix, networkName string) (string, error) {
	if strings.HasPrefix(prefix, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.WithStack(err)
		}
		prefix = filepath.Join(home, strings.TrimPrefix(prefix, "~"))
	}

	dir := filepath.Join(prefix, networkName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", errors.WithStack(err)
	}
	return dir, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
