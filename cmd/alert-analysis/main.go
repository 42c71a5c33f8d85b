package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/diwise/alert-analysis/internal/pkg/application/alertanalysis"
	"github.com/diwise/alert-analysis/internal/pkg/infrastructure/logging"
	"github.com/diwise/alert-analysis/internal/pkg/infrastructure/repositories/alerts"
	"github.com/diwise/alert-analysis/internal/pkg/infrastructure/router"
	"github.com/diwise/alert-analysis/internal/pkg/infrastructure/tracing"
	"github.com/diwise/alert-analysis/internal/pkg/presentation/api"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/rs/zerolog"
)

const serviceName string = "alert-analysis"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	alertsFile
	configurationFile
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		alertsFile:        "/opt/diwise/config/alerts.csv",
		configurationFile: "/opt/diwise/config/config.yaml",
	}
}

func main() {
	serviceVersion := buildinfo.SourceVersion()
	ctx, logger := logging.NewLogger(context.Background(), serviceName, serviceVersion)

	cleanup, err := tracing.Init(ctx, logger, serviceName, serviceVersion)
	exitIf(err, logger, "failed to init tracing")
	defer cleanup()

	flags := parseExternalConfig(ctx, defaultFlags())

	cfg, err := loadConfiguration(flags[configurationFile])
	exitIf(err, logger, "could not load configuration")

	repo, err := alerts.New(logger, flags[alertsFile])
	exitIf(err, logger, "could not load alert dataset")

	svc := alertanalysis.New(repo, cfg)

	r := router.New(serviceName)
	_, err = api.RegisterHandlers(ctx, r, svc)
	exitIf(err, logger, "failed to register api handlers")

	apiAddress := fmt.Sprintf("%s:%s", flags[listenAddress], flags[servicePort])
	logger.Info().Msgf("starting to listen for connections on %s", apiAddress)

	err = http.ListenAndServe(apiAddress, r)
	exitIf(err, logger, "failed to start request router")
}

// loadConfiguration falls back to the default configuration when no
// configuration file is present, so that the service can run with nothing
// but a dataset.
func loadConfiguration(path string) (*alertanalysis.Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return alertanalysis.DefaultConfiguration(), nil
	}

	return alertanalysis.NewConfiguration(f)
}

func parseExternalConfig(ctx context.Context, flags flagMap) flagMap {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])
	flags[alertsFile] = envOrDef(ctx, "ALERTS_FILE", flags[alertsFile])
	flags[configurationFile] = envOrDef(ctx, "CONFIGURATION_FILE", flags[configurationFile])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("alerts", "the collected alert dataset", apply(alertsFile))
	flag.Func("config", "alert analysis configuration file", apply(configurationFile))
	flag.Parse()

	return flags
}

func exitIf(err error, logger zerolog.Logger, msg string) {
	if err != nil {
		logger.Fatal().Err(err).Msg(msg)
	}
}
