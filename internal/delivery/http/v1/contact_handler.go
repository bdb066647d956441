package v1

import (
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact accepts a contact form submission and runs it through the
// pipeline. Missing fields are reported by the validator rather than the
// JSON binder, so every invalid field surfaces in details at once.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Unparseable body is a validation failure, same contract as field errors
		c.Error(apperror.ValidationFailed(map[string]string{
			"body": "El cuerpo de la petición debe ser JSON válido",
		}))
		return
	}

	if err := h.contactUC.SubmitContact(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message sent successfully!")
}
