package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deptsite/cms-api/internal/service"
	"github.com/deptsite/cms-api/pkg/response"
)

// MediaHandler manages media-gallery endpoints.
type MediaHandler struct {
	service *service.MediaService
}

// NewMediaHandler constructs handler.
func NewMediaHandler(svc *service.MediaService) *MediaHandler {
	return &MediaHandler{service: svc}
}

// List godoc
// @Summary List media items
// @Tags Media
// @Produce json
// @Param category query string false "Filter by category (published only)"
// @Param published query string false "Filter by published flag (true/false)"
// @Success 200 {array} models.Media
// @Router /media [get]
func (h *MediaHandler) List(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		items, err := h.service.ListByCategory(c.Request.Context(), category)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, items)
		return
	}

	items, err := h.service.List(c.Request.Context(), publishedFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Get godoc
// @Summary Get a media item
// @Tags Media
// @Produce json
// @Param id path string true "Media ID"
// @Success 200 {object} models.Media
// @Failure 404 {object} errors.Error
// @Router /media/{id} [get]
func (h *MediaHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

// Create godoc
// @Summary Create media item
// @Tags Media
// @Accept json
// @Produce json
// @Param payload body service.CreateMediaRequest true "Media payload"
// @Success 201 {object} models.Media
// @Failure 400 {object} errors.Error
// @Router /media [post]
func (h *MediaHandler) Create(c *gin.Context) {
	var req service.CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.BindError(err))
		return
	}
	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Update media item
// @Tags Media
// @Accept json
// @Produce json
// @Param id path string true "Media ID"
// @Param payload body service.UpdateMediaRequest true "Partial media payload"
// @Success 200 {object} models.Media
// @Failure 404 {object} errors.Error
// @Router /media/{id} [put]
func (h *MediaHandler) Update(c *gin.Context) {
	var req service.UpdateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.BindError(err))
		return
	}
	item, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

// Delete godoc
// @Summary Delete media item
// @Tags Media
// @Produce json
// @Param id path string true "Media ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.Error
// @Router /media/{id} [delete]
func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Media deleted successfully")
}
