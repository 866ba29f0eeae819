package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fuel-server/api"
	"github.com/carson-networks/fuel-server/internal/auth"
	"github.com/carson-networks/fuel-server/internal/config"
	"github.com/carson-networks/fuel-server/internal/events"
	"github.com/carson-networks/fuel-server/internal/logging"
	"github.com/carson-networks/fuel-server/internal/operator"
	"github.com/carson-networks/fuel-server/internal/service"
	"github.com/carson-networks/fuel-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging(logging.ServiceName)
	logrus.Info("fuel-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := envConfig.Validate(); err != nil {
		logrus.WithError(err).Fatal("config.Validate")
		return
	}
	logger.SetLevel(envConfig.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if envConfig.RunMigrations {
		result, err := storage.RunMigrations(envConfig.PostgresURL())
		if err != nil {
			logrus.WithError(err).Fatal("storage.RunMigrations")
			return
		}
		logrus.WithFields(logrus.Fields{
			"preMigrationVersion":  result.PreVersion,
			"postMigrationVersion": result.PostVersion,
		}).Info("Migration status")
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	rates, err := service.LoadRateService(ctx, dbStorage.Rates)
	if err != nil {
		logrus.WithError(err).Fatal("service.LoadRateService")
		return
	}
	logrus.WithField("supportedYears", rates.SupportedYears()).Info("rate table loaded")

	publisher := newPublisher(envConfig, logger)
	defer publisher.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	tokens := auth.NewTokens(envConfig.JWTSecret, envConfig.JWTExpiresIn)
	svc := service.NewService(dbStorage, rates, delegator, publisher, tokens, logger)

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.HTTPPort,
		Storage: dbStorage,
		Service: svc,
		Tokens:  tokens,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logrus.WithError(err).Error("api.Rest.Serve")
	}
}

// newPublisher connects to the broker when one is configured. A broker that
// cannot be reached disables events instead of stopping the server.
func newPublisher(env *config.Config, logger *logrus.Logger) events.Publisher {
	if env.AMQPURL == "" {
		return events.NopPublisher{}
	}
	publisher, err := events.NewAMQPPublisher(env.AMQPURL, env.AMQPExchange, logger)
	if err != nil {
		logger.WithError(err).Warn("events.NewAMQPPublisher: publishing disabled")
		return events.NopPublisher{}
	}
	return publisher
}
