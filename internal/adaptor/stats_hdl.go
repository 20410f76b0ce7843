package adaptor

import (
	"net/http"

	"velvet-vogue/internal/usecase"
	"velvet-vogue/pkg/utils"

	"go.uber.org/zap"
)

type StatsHandler struct {
	service usecase.StatsService
	log     *zap.Logger
}

func NewStatsHandler(service usecase.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log.With(zap.String("handler", "stats")),
	}
}

// Dashboard handles GET /api/admin/stats
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "get stats")
		return
	}

	utils.ResponseSuccess(w, "Stats retrieved successfully", stats)
}
