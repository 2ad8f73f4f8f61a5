// Package app contains the application setup for the product API.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopfabrik/product-api/internal/config"
	"github.com/shopfabrik/product-api/internal/dispatch"
	"github.com/shopfabrik/product-api/internal/resolver"
	"github.com/shopfabrik/product-api/internal/store"
	"github.com/shopfabrik/product-api/internal/transport/rest"
	"github.com/shopfabrik/product-api/pkg/server"
)

type Dependencies struct {
	Dispatcher *dispatch.Dispatcher
	Logger     *slog.Logger
}

func SetupDependencies(productStore store.ProductStore, logger *slog.Logger) *Dependencies {
	dispatcher := dispatch.NewDispatcher(resolver.New(productStore, logger), logger)

	return &Dependencies{
		Dispatcher: dispatcher,
		Logger:     logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the product API.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the product API.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	dispatchHandler := rest.NewHandler(deps.Dispatcher, deps.Logger)
	dispatchHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the product API.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {

	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
