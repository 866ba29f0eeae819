package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fuel-server/internal/auth"
	configHandler "github.com/carson-networks/fuel-server/internal/handlers/v1/config"
	"github.com/carson-networks/fuel-server/internal/handlers/v1/operation"
	"github.com/carson-networks/fuel-server/internal/handlers/v1/rate"
	"github.com/carson-networks/fuel-server/internal/handlers/v1/status"
	"github.com/carson-networks/fuel-server/internal/handlers/v1/user"
	"github.com/carson-networks/fuel-server/internal/logging"
	"github.com/carson-networks/fuel-server/internal/service"
	"github.com/carson-networks/fuel-server/internal/storage"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Storage *storage.Storage
	Service *service.Service
	Tokens  *auth.Tokens
}

// Routes builds the HTTP handler serving /status and the v1 API.
func (r *Rest) Routes() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	config := huma.DefaultConfig("Fuel Server", "1.0.0")
	config.Info.Description = "Fuel purchase and sale ledger."
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		auth.SecurityScheme: {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}

	api := humago.New(mux, config)
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))
	api.UseMiddleware(auth.Middleware(api, r.Tokens))

	r.register(api)
	return mux
}

func (r *Rest) register(api huma.API) {
	operations := r.Service.Operation
	rates := r.Service.Rate
	users := r.Service.User

	user.NewRegisterHandler(users).Register(api)
	user.NewLoginHandler(users).Register(api)
	user.NewProfileHandler(users).Register(api)

	configHandler.NewHandler(rates).Register(api)
	rate.NewListRatesHandler(rates).Register(api)
	rate.NewRateStatisticsHandler(rates).Register(api)

	operation.NewCreateOperationHandler(operations).Register(api)
	operation.NewPreviewOperationHandler(operations).Register(api)
	operation.NewListOperationsHandler(operations).Register(api)
	operation.NewGetOperationHandler(operations).Register(api)
	operation.NewUpdateOperationHandler(operations).Register(api)
	operation.NewDeleteOperationHandler(operations).Register(api)
	operation.NewStatisticsHandler(operations).Register(api)
	operation.NewDifferenceHandler(operations).Register(api)
	operation.NewReportHandler(operations).Register(api)
	operation.NewReportPDFHandler(operations, users).Register(api)
}

// Serve listens until ctx is cancelled, then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Routes(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}
