package controllers

import (
	"context"
	"net/http"

	"github.com/velora-commerce/velora-backend/api/responses"
	"github.com/velora-commerce/velora-backend/pkg/config"
	pkgerrors "github.com/velora-commerce/velora-backend/pkg/errors"
	"github.com/velora-commerce/velora-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Velora-Env", cfg.App.Env)
		responses.WriteSuccess(w, "live", map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness only when both backing stores answer a ping.
func HealthReady(cfg *config.Config, database, cache pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Velora-Env", cfg.App.Env)

		checks := map[string]string{"db": "ok", "redis": "ok"}

		if database != nil {
			if err := database.Ping(r.Context()); err != nil {
				checks["db"] = "unavailable"
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database ping").WithDetails(checks))
				return
			}
		}
		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				checks["redis"] = "unavailable"
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis ping").WithDetails(checks))
				return
			}
		}

		responses.WriteSuccess(w, "ready", checks)
	}
}
