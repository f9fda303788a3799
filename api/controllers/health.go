package controllers

import (
	"net/http"

	"github.com/minjipark/tteokbang-backend/api/responses"
	"github.com/minjipark/tteokbang-backend/pkg/config"
	"github.com/minjipark/tteokbang-backend/pkg/db"
	pkgerrors "github.com/minjipark/tteokbang-backend/pkg/errors"
	"github.com/minjipark/tteokbang-backend/pkg/logger"
	"github.com/minjipark/tteokbang-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Tteokbang-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the backing stores. Redis is optional; a nil client is
// reported as disabled rather than failing readiness.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Tteokbang-Env", cfg.App.Env)

		checks := map[string]string{}

		if dbP == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "database not wired"))
			return
		}
		if err := dbP.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database not ready"))
			return
		}
		checks["database"] = "ok"

		if redisP == nil {
			checks["redis"] = "disabled"
		} else if err := redisP.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis not ready"))
			return
		} else {
			checks["redis"] = "ok"
		}

		responses.WriteSuccess(w, checks)
	}
}
