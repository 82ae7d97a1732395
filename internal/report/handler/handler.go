package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/snazzy/storefront/internal/report/usecase/query"
	"github.com/snazzy/storefront/internal/web"
)

// ReportHandler handles HTTP requests for financial reports
type ReportHandler struct {
	monthlyHandler *query.MonthlyReportHandler
}

func NewReportHandler(monthlyHandler *query.MonthlyReportHandler) *ReportHandler {
	return &ReportHandler{monthlyHandler: monthlyHandler}
}

// MonthlyReport handles GET /api/reports/monthly?year=&month=
func (h *ReportHandler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))

	report, err := h.monthlyHandler.Handle(r.Context(), query.MonthlyReportQuery{
		Year:  year,
		Month: month,
	})
	if err != nil {
		web.RespondAppError(w, err)
		return
	}

	web.RespondJSON(w, http.StatusOK, web.Response{Success: true, Data: report})
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/reports/monthly", web.AdminMiddleware(h.MonthlyReport)).Methods("GET")
}
