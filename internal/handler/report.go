package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/osse101/HomeInventory_Go/internal/inventory"
	"github.com/osse101/HomeInventory_Go/internal/logger"
	"github.com/osse101/HomeInventory_Go/internal/metrics"
	"github.com/osse101/HomeInventory_Go/internal/report"
)

// HandleExportReport streams a CSV report built from the current inventory
// @Summary Export report
// @Description Download the inventory as CSV
// @Tags reports
// @Produce text/csv
// @Param type query string false "full, summary, value or warranty" default(full)
// @Param categories query string false "Comma separated category names"
// @Param include_warranty query bool false "Append warranty columns"
// @Param include_images query bool false "Append image count column"
// @Param include_receipts query bool false "Append receipt count column"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/reports/export [get]
func HandleExportReport(svc inventory.Service, clock inventory.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		reportType, err := report.ParseType(r.URL.Query().Get(QueryParamType))
		if err != nil {
			respondServiceError(w, r, OpExportReport, err)
			return
		}

		opts := report.Options{
			Type:       reportType,
			Categories: GetListQueryParam(r, QueryParamCategories),
			Date:       clock.Now(),
		}
		var ok bool
		if opts.IncludeWarranty, ok = GetBoolQueryParam(r, w, QueryParamIncludeWarranty); !ok {
			return
		}
		if opts.IncludeImages, ok = GetBoolQueryParam(r, w, QueryParamIncludeImages); !ok {
			return
		}
		if opts.IncludeReceipts, ok = GetBoolQueryParam(r, w, QueryParamIncludeReceipts); !ok {
			return
		}

		snapshot := svc.Snapshot(r.Context())

		// Render fully before writing headers so a failure can still be reported
		var buf bytes.Buffer
		if err := report.Write(&buf, snapshot.Items, opts); err != nil {
			log.Error(ErrMsgExportFailed, "error", err, "type", reportType)
			respondError(w, http.StatusInternalServerError, ErrMsgExportFailed)
			return
		}

		w.Header().Set("Content-Type", report.ContentType)
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", report.FileName(reportType, opts.Date)))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			log.Warn(LogMsgWriteFailed, "error", err)
			return
		}

		metrics.ReportsExported.WithLabelValues(string(reportType)).Inc()
		log.Info(LogMsgReportExported, "type", reportType, "version", snapshot.Version)
	}
}
