package handler

import (
	"net/http"

	"sitepulse/internal/model"
	"sitepulse/internal/service"

	"github.com/gin-gonic/gin"
)

// SiteHandler handles site registry and stats requests
type SiteHandler struct {
	sites service.SiteServiceInterface
	stats service.StatsServiceInterface
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(sites service.SiteServiceInterface, stats service.StatsServiceInterface) *SiteHandler {
	return &SiteHandler{sites: sites, stats: stats}
}

// Register handles POST /api/v1/sites
// @Summary Register a site
// @Description Creates a site, or updates the name and owner of an existing one
// @Tags sites
// @Accept json
// @Produce json
// @Param request body model.RegisterSiteRequest true "Register request"
// @Success 200 {object} Response{data=model.Site}
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/sites [post]
func (h *SiteHandler) Register(c *gin.Context) {
	var req model.RegisterSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	site, err := h.sites.Register(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	success(c, http.StatusOK, site)
}

// List handles GET /api/v1/sites?owner=
// @Summary List sites of an owner
// @Description Returns the sites owned by an identity, newest first
// @Tags sites
// @Produce json
// @Param owner query string true "Owner identity (hex or bech32)"
// @Success 200 {object} Response{data=[]model.Site}
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/sites [get]
func (h *SiteHandler) List(c *gin.Context) {
	sites, err := h.sites.ListByOwner(c.Request.Context(), c.Query("owner"))
	if err != nil {
		fail(c, err)
		return
	}

	success(c, http.StatusOK, sites)
}

// Update handles PATCH /api/v1/sites/:publicId
// @Summary Update a site
// @Description Changes the display name of a site. Owner only.
// @Tags sites
// @Accept json
// @Produce json
// @Param publicId path string true "Site public id"
// @Param X-Caller-Identity header string true "Caller identity"
// @Param request body model.UpdateSiteRequest false "Update request"
// @Success 200 {object} Response{data=model.Site}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sites/{publicId} [patch]
func (h *SiteHandler) Update(c *gin.Context) {
	var req model.UpdateSiteRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	site, err := h.sites.Update(c.Request.Context(), c.Param("publicId"), c.GetHeader(CallerIdentityHeader), &req)
	if err != nil {
		fail(c, err)
		return
	}

	success(c, http.StatusOK, site)
}

// Delete handles DELETE /api/v1/sites/:publicId
// @Summary Delete a site
// @Description Deletes a site with all of its visits and counters. Owner only.
// @Tags sites
// @Produce json
// @Param publicId path string true "Site public id"
// @Param X-Caller-Identity header string true "Caller identity"
// @Success 200 {object} Response{data=model.DeleteSiteResponse}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sites/{publicId} [delete]
func (h *SiteHandler) Delete(c *gin.Context) {
	resp, err := h.sites.Delete(c.Request.Context(), c.Param("publicId"), c.GetHeader(CallerIdentityHeader))
	if err != nil {
		fail(c, err)
		return
	}

	success(c, http.StatusOK, resp)
}

// Stats handles GET /api/v1/sites/:publicId/stats
// @Summary Get site stats
// @Description Returns totals, per-page device breakdown and daily series. Owner only.
// @Tags stats
// @Produce json
// @Param publicId path string true "Site public id"
// @Param X-Caller-Identity header string true "Caller identity"
// @Success 200 {object} Response{data=model.SiteStats}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sites/{publicId}/stats [get]
func (h *SiteHandler) Stats(c *gin.Context) {
	stats, err := h.stats.GetStats(c.Request.Context(), c.Param("publicId"), c.GetHeader(CallerIdentityHeader))
	if err != nil {
		fail(c, err)
		return
	}

	success(c, http.StatusOK, stats)
}
