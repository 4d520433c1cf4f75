package cmd

import (
	"github.com/bastiangx/teny/pkg/server"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	serveAddr string
	noWatch   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address, overrides [server] addr")
	serveCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload when data files change")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddr != "" {
		appConfig.Server.Addr = serveAddr
	}
	h := loadHolder()
	showStartupInfo("http "+appConfig.Server.Addr, h)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		return server.ListenAndServe(ctx, h, appConfig.Server)
	})
	if appConfig.Server.Watch && !noWatch {
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
