package cmd

import (
	"context"

	"github.com/bastiangx/teny/pkg/server"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var ipcCmd = &cobra.Command{
	Use:   "ipc",
	Short: "Run the msgpack IPC server on stdin/stdout (default)",
	RunE:  runIPC,
}

func runIPC(cmd *cobra.Command, args []string) error {
	h := loadHolder()
	log.Debug("spawning IPC")
	showStartupInfo("ipc", h)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return server.NewServer(h, appConfig.Server).Start(ctx)
	})
	if appConfig.Server.Watch {
		w := server.NewWatcher(h)
		g.Go(func() error {
			if err := w.Run(ctx); err != nil {
				log.Warnf("Data watcher stopped: %v", err)
			}
			return nil
		})
	}
	return g.Wait()
}
