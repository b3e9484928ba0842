package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deptsite/cms-api/internal/service"
	"github.com/deptsite/cms-api/pkg/response"
)

// NewsHandler manages news endpoints.
type NewsHandler struct {
	service *service.NewsService
}

// NewNewsHandler constructs handler.
func NewNewsHandler(svc *service.NewsService) *NewsHandler {
	return &NewsHandler{service: svc}
}

// List godoc
// @Summary List news articles
// @Tags News
// @Produce json
// @Param published query string false "Filter by published flag (true/false)"
// @Success 200 {array} models.News
// @Router /news [get]
func (h *NewsHandler) List(c *gin.Context) {
	articles, err := h.service.List(c.Request.Context(), publishedFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, articles)
}

// Get godoc
// @Summary Get a news article
// @Tags News
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} models.News
// @Failure 404 {object} errors.Error
// @Router /news/{id} [get]
func (h *NewsHandler) Get(c *gin.Context) {
	article, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, article)
}

// Create godoc
// @Summary Create news article
// @Tags News
// @Accept json
// @Produce json
// @Param payload body service.CreateNewsRequest true "News payload"
// @Success 201 {object} models.News
// @Failure 400 {object} errors.Error
// @Router /news [post]
func (h *NewsHandler) Create(c *gin.Context) {
	var req service.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.BindError(err))
		return
	}
	article, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, article)
}

// Update godoc
// @Summary Update news article
// @Tags News
// @Accept json
// @Produce json
// @Param id path string true "News ID"
// @Param payload body service.UpdateNewsRequest true "Partial news payload"
// @Success 200 {object} models.News
// @Failure 404 {object} errors.Error
// @Router /news/{id} [put]
func (h *NewsHandler) Update(c *gin.Context) {
	var req service.UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.BindError(err))
		return
	}
	article, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, article)
}

// Delete godoc
// @Summary Delete news article
// @Tags News
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.Error
// @Router /news/{id} [delete]
func (h *NewsHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "News article deleted successfully")
}
