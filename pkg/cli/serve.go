package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/flophouse/rangeday/pkg/cli/config"
	httpctrl "github.com/flophouse/rangeday/pkg/controller/http"
	"github.com/flophouse/rangeday/pkg/service/library"
	"github.com/flophouse/rangeday/pkg/service/worker"
	"github.com/flophouse/rangeday/pkg/usecase"
	"github.com/flophouse/rangeday/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var timezone string
	var repoCfg config.Repository
	var libCfg config.Library

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("RANGEDAY_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "timezone",
			Usage:       "IANA timezone used to determine the current calendar day",
			Value:       "Local",
			Sources:     cli.EnvVars("RANGEDAY_TIMEZONE"),
			Destination: &timezone,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, libCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return goerr.Wrap(err, "invalid timezone", goerr.V("timezone", timezone))
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			// Initialize library loader
			loader, loaderCloser, err := libCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize library loader")
			}
			defer func() {
				if err := loaderCloser(); err != nil {
					logging.Default().Error("failed to close library loader", "error", err.Error())
				}
			}()

			// With a refresh interval, the scheduler reads an in-memory
			// snapshot kept current by the refresh worker instead of
			// hitting the source on every request.
			schedulerLoader := loader
			var refreshWorker *worker.LibraryRefreshWorker
			if interval := libCfg.RefreshInterval(); interval > 0 {
				cache := library.NewCache()
				refreshWorker = worker.NewLibraryRefreshWorker(loader, cache, interval)
				if err := refreshWorker.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start library refresh worker")
				}
				schedulerLoader = cache
			}

			uc := usecase.New(repo, schedulerLoader,
				usecase.WithClock(func() time.Time { return time.Now().In(loc) }),
			)

			httpHandler, err := httpctrl.New(uc)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server",
					"addr", addr,
					"timezone", timezone,
					"history_backend", repoCfg.Backend(),
				)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				if refreshWorker != nil {
					refreshWorker.Stop()
				}
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				if refreshWorker != nil {
					refreshWorker.Stop()
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
