package controllers

import (
	"net/http"

	"github.com/minjipark/tteokbang-backend/api/responses"
	"github.com/minjipark/tteokbang-backend/api/validators"
	"github.com/minjipark/tteokbang-backend/internal/orders"
	"github.com/minjipark/tteokbang-backend/internal/production"
	pkgerrors "github.com/minjipark/tteokbang-backend/pkg/errors"
	"github.com/minjipark/tteokbang-backend/pkg/logger"
)

// ProductionPlan returns the aggregated worklist for one pickup day.
func ProductionPlan(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := validators.ParseQueryDay(r, "date")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		sortMode := production.TaskSort(r.URL.Query().Get("sort"))
		switch sortMode {
		case "", production.TaskSortName, production.TaskSortRice:
		default:
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown sort mode"))
			return
		}
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithPickupDay(ctx, day.String())
		}
		tasks, err := svc.ProductionPlan(ctx, day, sortMode)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, tasks)
	}
}
