package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"sitepulse/internal/model"
	"sitepulse/internal/mq"
	"sitepulse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// VisitHandler handles visit ingestion
type VisitHandler struct {
	visits     service.VisitServiceInterface
	sites      service.SiteServiceInterface
	mqProducer mq.ProducerInterface
}

// AcceptedVisit is returned when a visit is queued for recording
type AcceptedVisit struct {
	PublicID string `json:"public_id"`
	Accepted bool   `json:"accepted"`
}

// NewVisitHandler creates a new VisitHandler. mqProducer may be nil.
func NewVisitHandler(
	visits service.VisitServiceInterface,
	sites service.SiteServiceInterface,
	mqProducer mq.ProducerInterface,
) *VisitHandler {
	return &VisitHandler{
		visits:     visits,
		sites:      sites,
		mqProducer: mqProducer,
	}
}

// Record handles POST /api/v1/sites/:publicId/visits
// @Summary Record a visit
// @Description Records a page view and returns the updated counter. A repeated event_id is not counted again.
// @Tags visits
// @Accept json
// @Produce json
// @Param publicId path string true "Site public id"
// @Param request body model.RecordVisitRequest false "Visit"
// @Success 200 {object} Response{data=model.VisitResult}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sites/{publicId}/visits [post]
func (h *VisitHandler) Record(c *gin.Context) {
	req, ok := bindVisit(c)
	if !ok {
		return
	}

	result, err := h.visits.Record(c.Request.Context(), c.Param("publicId"), req)
	if err != nil {
		fail(c, err)
		return
	}

	success(c, http.StatusOK, result)
}

// RecordAsync handles POST /api/v1/sites/:publicId/visits/async
// @Summary Queue a visit
// @Description Accepts a page view for asynchronous recording through RocketMQ
// @Tags visits
// @Accept json
// @Produce json
// @Param publicId path string true "Site public id"
// @Param request body model.RecordVisitRequest false "Visit"
// @Success 202 {object} Response{data=AcceptedVisit}
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/sites/{publicId}/visits/async [post]
func (h *VisitHandler) RecordAsync(c *gin.Context) {
	if h.mqProducer == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Asynchronous ingestion is disabled",
		})
		return
	}

	req, ok := bindVisit(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	site, err := h.sites.Resolve(ctx, c.Param("publicId"))
	if err != nil {
		fail(c, err)
		return
	}

	msg := mq.NewVisitMessage(site.PublicID, req, time.Now())
	if err := h.mqProducer.SendVisit(ctx, msg); err != nil {
		log.Error().Err(err).Str("public_id", site.PublicID).Msg("Failed to send visit to MQ")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Failed to queue visit",
		})
		return
	}

	success(c, http.StatusAccepted, AcceptedVisit{PublicID: site.PublicID, Accepted: true})
}

// bindVisit reads an optional JSON body. The request User-Agent is used
// when the body carries none.
func bindVisit(c *gin.Context) (*model.RecordVisitRequest, bool) {
	var req model.RecordVisitRequest
	if !bindOptionalJSON(c, &req) {
		return nil, false
	}

	if req.UserAgent == nil {
		if ua := c.Request.UserAgent(); ua != "" {
			req.UserAgent = &ua
		}
	}
	return &req, true
}

// ConsumeVisit returns the RocketMQ handler that records queued visits.
// Visits for deleted sites or with invalid attributes are dropped rather than redelivered.
func ConsumeVisit(visits service.VisitServiceInterface) mq.VisitHandler {
	return func(ctx context.Context, msg *mq.VisitMessage) error {
		receivedAt := msg.ReceivedAt
		if receivedAt.IsZero() {
			receivedAt = time.Now()
		}

		_, err := visits.RecordAt(ctx, msg.PublicID, msg.Request(), receivedAt)
		if errors.Is(err, service.ErrSiteNotFound) || errors.Is(err, service.ErrValidation) {
			log.Warn().Err(err).Str("public_id", msg.PublicID).Msg("Dropping queued visit")
			return nil
		}
		return err
	}
}
