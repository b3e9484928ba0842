package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deptsite/cms-api/internal/service"
	"github.com/deptsite/cms-api/pkg/response"
)

// NoteHandler manages study-note endpoints.
type NoteHandler struct {
	service *service.NoteService
}

// NewNoteHandler constructs handler.
func NewNoteHandler(svc *service.NoteService) *NoteHandler {
	return &NoteHandler{service: svc}
}

// List godoc
// @Summary List study notes
// @Tags Notes
// @Produce json
// @Param semester query string false "Filter by semester (published only)"
// @Param published query string false "Filter by published flag (true/false)"
// @Success 200 {array} models.Note
// @Router /notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	if semester := c.Query("semester"); semester != "" {
		notes, err := h.service.ListBySemester(c.Request.Context(), semester)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, notes)
		return
	}

	notes, err := h.service.List(c.Request.Context(), publishedFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, notes)
}

// Get godoc
// @Summary Get a study note
// @Tags Notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} models.Note
// @Failure 404 {object} errors.Error
// @Router /notes/{id} [get]
func (h *NoteHandler) Get(c *gin.Context) {
	note, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, note)
}

// Create godoc
// @Summary Create study note
// @Tags Notes
// @Accept json
// @Produce json
// @Param payload body service.CreateNoteRequest true "Note payload"
// @Success 201 {object} models.Note
// @Failure 400 {object} errors.Error
// @Router /notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	var req service.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.BindError(err))
		return
	}
	note, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, note)
}

// Update godoc
// @Summary Update study note
// @Tags Notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param payload body service.UpdateNoteRequest true "Partial note payload"
// @Success 200 {object} models.Note
// @Failure 404 {object} errors.Error
// @Router /notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	var req service.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.BindError(err))
		return
	}
	note, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, note)
}

// Delete godoc
// @Summary Delete study note
// @Tags Notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.Error
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Note deleted successfully")
}
