package cmd

import (
	"os"

	"github.com/bastiangx/teny/internal/cli"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	replOp    string
	replLimit int
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive repl for trying operations",
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().StringVar(&replOp, "op", "", "Starting op, overrides [cli] default_op")
	replCmd.Flags().IntVar(&replLimit, "limit", 0, "Number of suggestions to return")
}

func runRepl(cmd *cobra.Command, args []string) error {
	log.SetReportTimestamp(false)
	h := loadHolder()

	op := appConfig.CLI.DefaultOp
	if replOp != "" {
		op = replOp
	}
	limit := appConfig.CLI.DefaultLimit
	if replLimit > 0 {
		limit = replLimit
	}
	log.Debug("Input info:", "op", op, "limit", limit)

	go func() {
		<-cmd.Context().Done()
		os.Exit(0)
	}()
	return cli.NewInputHandler(h, op, limit, os.Stdout).Start(os.Stdin)
}
