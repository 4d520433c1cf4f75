// Package cmd holds the teny subcommands.
package cmd

import (
	"context"
	"os"

	"github.com/bastiangx/teny/internal/logger"
	"github.com/bastiangx/teny/pkg/config"
	"github.com/bastiangx/teny/pkg/engine"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.0-beta"
	gh      = "https://github.com/bastiangx/teny"
)

var (
	configPath string
	dataDir    string
	snapshot   string
	debugMode  bool

	// set by loadConfig before any command runs
	appConfig  *config.Config
	activePath string
)

var rootCmd = &cobra.Command{
	Use:   "teny",
	Short: "teny: Malagasy spell checking, prediction and analysis",
	Long: "teny serves Malagasy language tools from one in-memory lexicon.\n" +
		"Without a subcommand it runs the msgpack IPC server on stdin/stdout.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runIPC,
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		log.Error(err)
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to config.toml")
	pf.StringVar(&dataDir, "data", "", "Data directory, overrides [data] dir")
	pf.StringVar(&snapshot, "snapshot", "", "Snapshot file, overrides [data] snapshot")
	pf.BoolVarP(&debugMode, "debug", "d", false, "Toggle debug mode")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ipcCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	logger.SetupGlobal(debugMode)
	appConfig, activePath = config.LoadConfigWithPriority(configPath)
	if dataDir != "" {
		appConfig.Data.Dir = dataDir
	}
	if snapshot != "" {
		appConfig.Data.Snapshot = snapshot
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))
	return nil
}

// loadHolder builds the first engine from appConfig.
func loadHolder() *engine.Holder {
	return engine.NewHolder(engine.Load(appConfig), appConfig)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(mode string, h *engine.Holder) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	stats := h.Get().Stats()
	data := appConfig.Data.Snapshot
	if data == "" {
		data = engine.ResolveDataDir(appConfig.Data.Dir)
	}

	println("===========")
	println("   teny    ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("mode: %s", mode)
	log.Infof("data: ( %s )", data)
	log.Infof("words: %d  contexts: %d  entities: %d",
		stats["dictionary"], stats["ngrams"], stats["entityPatterns"])
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
