package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minjipark/tteokbang-backend/api/responses"
	"github.com/minjipark/tteokbang-backend/api/validators"
	"github.com/minjipark/tteokbang-backend/internal/orders"
	pkgerrors "github.com/minjipark/tteokbang-backend/pkg/errors"
	"github.com/minjipark/tteokbang-backend/pkg/logger"
)

func OrderCreate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body orders.OrderInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		created, err := svc.Create(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithOrderID(ctx, created.ID)
			logg.Info(ctx, "order.created")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func OrderGet(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		order, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func OrderUpdate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body orders.OrderInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		order, err := svc.Update(r.Context(), id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func OrderDelete(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

type orderFlagRequest struct {
	Value *bool `json:"value" validate:"required"`
}

func OrderSetPaid(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return orderFlagHandler(func(ctx context.Context, id int64, value bool) error {
		return svc.SetPaid(ctx, id, value)
	}, logg)
}

func OrderSetPickedUp(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return orderFlagHandler(func(ctx context.Context, id int64, value bool) error {
		return svc.SetPickedUp(ctx, id, value)
	}, logg)
}

func orderFlagHandler(set func(ctx context.Context, id int64, value bool) error, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body orderFlagRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := set(r.Context(), id, *body.Value); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"value": *body.Value})
	}
}

// OrderListDay returns one pickup day's orders with sequence numbers, search
// annotations, and the requested sort.
func OrderListDay(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := validators.ParseQueryDay(r, "date")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ids, err := validators.ParseQueryIDs(r, "ids")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		sortMode := orders.ListSort(r.URL.Query().Get("sort"))
		if sortMode != "" && !sortMode.IsValid() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown sort mode"))
			return
		}
		rows, err := svc.ListDay(r.Context(), orders.ListDayInput{
			Day:    day,
			Search: r.URL.Query().Get("q"),
			Sort:   sortMode,
			IDs:    ids,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}
