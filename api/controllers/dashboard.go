package controllers

import (
	"net/http"
	"time"

	"github.com/minjipark/tteokbang-backend/api/responses"
	"github.com/minjipark/tteokbang-backend/api/validators"
	"github.com/minjipark/tteokbang-backend/internal/dashboard"
	"github.com/minjipark/tteokbang-backend/pkg/logger"
)

// DashboardMonth returns per-day order counts for the calendar grid.
func DashboardMonth(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := validators.ParseQueryInt(r, "year", time.Now().Year(), 2000, 2200)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		month, err := validators.ParseQueryInt(r, "month", int(time.Now().Month()), 1, 12)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		counts, err := svc.MonthCounts(r.Context(), year, time.Month(month))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, counts)
	}
}

// DashboardDay returns the selected day's totals.
func DashboardDay(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := validators.ParseQueryDay(r, "date")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		stats, err := svc.Day(r.Context(), day)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stats)
	}
}
