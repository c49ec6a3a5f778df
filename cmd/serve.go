package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/api"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/config"
	"github.com/mahmoudkheyrati/cpu-scheduler-simulator/internal/service"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(serveOptions(cfg), fx.NopLogger)
			if err := app.Start(cmd.Context()); err != nil {
				return errors.Wrap(err, "starting server")
			}
			signal := <-app.Wait()
			logrus.WithField("signal", signal.Signal).Info("shutting down")

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return app.Stop(ctx)
		},
	}
}

func serveOptions(cfg *config.SchedulerConfig) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			prometheus.NewRegistry,
			service.NewSimulationService,
			api.NewSchedulerHandlerImpl,
			func(handler *api.SchedulerHandlerImpl, registry *prometheus.Registry) *fiber.App {
				return api.NewApp(handler, registry)
			},
		),
		fx.Invoke(startServer),
	)
}

func startServer(lc fx.Lifecycle, cfg *config.SchedulerConfig, app *fiber.App) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", cfg.Port)
			go func() {
				logrus.Infof("starting http server on %s", addr)
				if err := app.Listen(addr); err != nil {
					logrus.WithError(err).Errorf("http server on %s stopped", addr)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logrus.Info("shutting down http server")
			return app.ShutdownWithContext(ctx)
		},
	})
}
