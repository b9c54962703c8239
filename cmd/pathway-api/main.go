package main

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/trace"

	"github.com/strategize/pathway/pkg/cmd"
	"github.com/strategize/pathway/pkg/log"
	"github.com/strategize/pathway/pkg/otelhelper"
	cli "github.com/urfave/cli/v3"
)

const defaultPort = 9080

func main() {
	logger := log.WithModule("api")

	command := &cli.Command{
		Name:                  "pathway-api",
		Usage:                 "Classify strategic intent and run guided pathway sessions",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "Database connection URL (file://, postgres:// or redis://)",
				Value:   "file://./data",
				Sources: cli.EnvVars("DATABASE_URL"),
			},
			&cli.StringFlag{
				Name:    "event-bus",
				Usage:   "Event bus provider",
				Value:   "gochannel",
				Sources: cli.EnvVars("EVENT_BUS"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "tracing",
				Usage:   "Enable OpenTelemetry tracing via OTLP HTTP",
				Sources: cli.EnvVars("TRACING_ENABLED"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger.InfoContext(ctx, "Initializing Pathway API")

			persistence := cmd.NewPersistence(ctx, logger, command.String("database-url"))

			defer func() {
				if err := persistence.Close(ctx); err != nil {
					logger.ErrorContext(ctx, "Failed to close persistence", "error", err)
				}
			}()

			eventBus := cmd.NewEventBus(command.String("event-bus"), logger)

			defer func() {
				if err := eventBus.Close(); err != nil {
					logger.ErrorContext(ctx, "Failed to close event bus", "error", err)
				}
			}()

			var tracer trace.Tracer

			if command.Bool("tracing") {
				var err error

				tracer, err = otelhelper.NewTracer(ctx, "pathway-api")
				if err != nil {
					logger.ErrorContext(ctx, "Failed to initialize tracer", "error", err)

					return err
				}
			}

			api := NewAPI(logger, persistence, eventBus, tracer)

			if err := api.Start(command.Int("port")); err != nil {
				logger.ErrorContext(ctx, "Failed to start API server", "error", err)

				return err
			}

			return nil
		},
	}

	if err := command.Run(context.Background(), os.Args); err != nil {
		panic(err)
	}
}
