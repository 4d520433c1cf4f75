package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/bastiangx/teny/pkg/engine"
	"github.com/bastiangx/teny/pkg/lexicon"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [output]",
	Short: "Compile the data directory into a snapshot file",
	Long: "compile loads every table from the data directory, falling back to\n" +
		"built-in tables where files are missing, and writes one bbolt snapshot.",
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func runCompile(cmd *cobra.Command, args []string) error {
	dir := engine.ResolveDataDir(appConfig.Data.Dir)
	out := filepath.Join(dir, lexicon.SnapshotFileName)
	if len(args) == 1 {
		out = args[0]
	}

	lx := lexicon.Load(dir)
	if err := lexicon.SaveSnapshot(out, lx); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	log.Infof("Wrote %s", utils.GetAbsolutePath(out))
	for table, n := range lx.Stats() {
		log.Info("table", "name", table, "entries", utils.FormatWithCommas(n), "source", lx.Sources[lexicon.Table(table)])
	}
	return nil
}
