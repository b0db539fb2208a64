package roadmap

import (
	"github.com/gin-gonic/gin"

	"roadmap_backend/platform/httpkit"
	"roadmap_backend/platform/logger"
)

// Handler handles roadmap webhook HTTP requests.
type Handler struct {
	service *Service
	log     *logger.Logger
}

// NewHandler creates a new roadmap handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// HandleRoadmap processes an inbound CRM webhook.
// POST /api/roadmap
//
// The CRM dispatcher enforces a short timeout and treats a slow response as
// failure, so the handler acknowledges with 200 before generation starts and
// hands the rest of the pipeline to a detached task. A body that does not
// parse as a JSON object is treated as empty: normalization still produces a
// fully defaulted record and the caller still gets its acknowledgment.
func (h *Handler) HandleRoadmap(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil || body == nil {
		body = map[string]any{}
	}

	in := h.service.Prepare(body)
	h.log.WebhookReceived(in.ProcessingID, in.Lead.Level, in.Model)

	httpkit.Ack(c, "Roadmap request received.")

	h.service.RunDetached(in)
}
