package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deptsite/cms-api/internal/models"
	"github.com/deptsite/cms-api/internal/service"
	"github.com/deptsite/cms-api/pkg/response"
)

// ContactHandler manages contact-form endpoints.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{service: svc}
}

// CreateContactResponse acknowledges a submitted contact message.
type CreateContactResponse struct {
	Message string         `json:"message"`
	Contact models.Contact `json:"contact"`
}

// List godoc
// @Summary List contact messages
// @Tags Contacts
// @Produce json
// @Success 200 {array} models.Contact
// @Failure 401 {object} errors.Error
// @Router /contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, contacts)
}

// Create godoc
// @Summary Submit contact message
// @Description Public contact form, no authentication required
// @Tags Contacts
// @Accept json
// @Produce json
// @Param payload body service.CreateContactRequest true "Contact payload"
// @Success 201 {object} CreateContactResponse
// @Failure 400 {object} errors.Error
// @Router /contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var req service.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.BindError(err))
		return
	}
	contact, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, CreateContactResponse{
		Message: "Message sent successfully",
		Contact: *contact,
	})
}

// UpdateStatus godoc
// @Summary Update contact message status
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param payload body service.UpdateContactStatusRequest true "Status payload"
// @Success 200 {object} models.Contact
// @Failure 404 {object} errors.Error
// @Router /contacts/{id}/status [put]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.BindError(err))
		return
	}
	contact, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, contact)
}

// Delete godoc
// @Summary Delete contact message
// @Tags Contacts
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.Error
// @Router /contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Contact deleted successfully")
}

// Export godoc
// @Summary Export contact inbox
// @Tags Contacts
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} errors.Error
// @Router /contacts/export [get]
func (h *ContactHandler) Export(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	result, err := h.service.Export(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
