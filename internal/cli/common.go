// Package cli wires the indexer and processor cobra commands to their
// underlying internal/indexing and internal/query packages, layering
// config-file defaults under CLI flags per SPEC_FULL §6.1.
package cli

import (
	"github.com/spf13/cobra"

	"mneme-index/internal/config"
	"mneme-index/internal/constants"
	"mneme-index/internal/logger"
)

// persistentFlags are shared by both CLIs: logging verbosity and the
// optional TOML defaults file.
type persistentFlags struct {
	verbose    bool
	quiet      bool
	configPath string
}

func (f *persistentFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose debug logging")
	cmd.PersistentFlags().BoolVarP(&f.quiet, "quiet", "", false, "enable quiet mode (only errors)")
	cmd.PersistentFlags().StringVar(&f.configPath, "config", constants.DefaultConfigPath, "path to optional TOML defaults file")
}

func (f *persistentFlags) initLogger() {
	logger.Init(f.verbose, f.quiet, false, "")
}

func (f *persistentFlags) loadConfig() (config.Config, error) {
	return config.Load(f.configPath)
}
