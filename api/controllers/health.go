package controllers

import (
	"net/http"

	"github.com/drevmart/drevmart-backend/api/responses"
	"github.com/drevmart/drevmart-backend/pkg/config"
	"github.com/drevmart/drevmart-backend/pkg/db"
	pkgerrors "github.com/drevmart/drevmart-backend/pkg/errors"
	"github.com/drevmart/drevmart-backend/pkg/logger"
	"github.com/drevmart/drevmart-backend/pkg/redis"
	"go.uber.org/multierr"
)

const envHeader = "X-Drevmart-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every wired dependency and aggregates the failures. In
// mock-catalog mode nil pingers are simply skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		var err error
		if dbP != nil {
			err = multierr.Append(err, dbP.Ping(r.Context()))
		}
		if redisP != nil {
			err = multierr.Append(err, redisP.Ping(r.Context()))
		}

		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dependency not ready"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
