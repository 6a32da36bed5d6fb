package handler

import (
	"net/http"

	"github.com/osse101/HomeInventory_Go/internal/stats"
)

// HandleGetDashboard returns the dashboard summary
// @Summary Dashboard stats
// @Description Totals, per-category value, expiring warranties and recent purchases
// @Tags stats
// @Produce json
// @Success 200 {object} stats.Dashboard
// @Router /api/v1/stats [get]
func HandleGetDashboard(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.GetDashboard(r.Context()))
	}
}
