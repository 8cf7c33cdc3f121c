package http

import (
	"net/http"

	"github.com/wfhtracker/wfh-backend-go/internal/domain/analytics"
	"github.com/wfhtracker/wfh-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Analytics(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewReportHandler(analyticsService analytics.AnalyticsService) ReportHandler {
	return &reportHandlerImpl{
		analyticsService: analyticsService,
	}
}

func (h *reportHandlerImpl) Analytics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := h.analyticsService.GetAnalytics(r.Context(), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, result)
}
