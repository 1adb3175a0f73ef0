package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leighmacdonald/cslogstats/internal/config"
	"github.com/leighmacdonald/cslogstats/internal/log"
	"github.com/leighmacdonald/cslogstats/internal/service"
	"github.com/spf13/cobra"
)

var ErrShutdown = errors.New("failed to shut down cleanly")

// serveCmd represents the serve command.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Starts the match stats web API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, errConf := config.Read(cfgFile)
			if errConf != nil {
				return errConf
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			useSentry := conf.Log.SentryDSN != ""
			if useSentry {
				if _, errSentry := log.NewSentryClient(conf.Log.SentryDSN, BuildVersion); errSentry != nil {
					slog.Error("Failed to setup sentry", slog.String("error", errSentry.Error()))

					useSentry = false
				}
			}

			closeLogger := log.MustCreateLogger(ctx, conf.Log.File, conf.Log.Level, useSentry)
			defer closeLogger()

			svc := service.New(service.NewProvider(conf.Match.LogPath))
			router := svc.CreateRouter(service.RouterOpts{
				Mode:           conf.HTTP.Mode,
				LogEnabled:     conf.HTTP.LogEnabled,
				LogLevel:       conf.Log.Level,
				CORSEnabled:    conf.HTTP.CORSEnabled,
				CORSOrigins:    conf.HTTP.CORSOrigins,
				MetricsEnabled: conf.HTTP.MetricsEnabled,
			})

			httpServer := &http.Server{
				Addr:         conf.HTTP.Addr(),
				Handler:      router,
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 60 * time.Second,
			}

			go func() {
				slog.Info("Starting HTTP service",
					slog.String("addr", conf.HTTP.Addr()),
					slog.String("log", conf.Match.LogPath))

				if errServe := httpServer.ListenAndServe(); errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
					slog.Error("HTTP listener error", slog.String("error", errServe.Error()))
				}
			}()

			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if errShutdown := httpServer.Shutdown(shutdownCtx); errShutdown != nil {
				return errors.Join(errShutdown, ErrShutdown)
			}

			return nil
		},
	}
}
