package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bluedot/paylink/internal/domain/errors"
	"github.com/bluedot/paylink/internal/domain/model"
	"github.com/bluedot/paylink/internal/server/http/dto"
	"github.com/bluedot/paylink/internal/usecase"
)

// DocumentHandler manages document creation and read endpoints.
type DocumentHandler struct {
	facade DocumentFacade
}

// NewDocumentHandler constructs DocumentHandler.
func NewDocumentHandler(facade DocumentFacade) *DocumentHandler {
	return &DocumentHandler{facade: facade}
}

// Create handles POST /api/documents.
func (h *DocumentHandler) Create(c *gin.Context) {
	var payload dto.SubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid document payload"})
		return
	}

	sub := usecase.Submission{
		DocType:       model.DocType(payload.DocType),
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		GSTNumber:     payload.GSTNumber,
		BillingAddr:   payload.BillingAddr,
		Terms:         payload.Terms,
		Items:         payload.DomainItems(),
		Currency:      payload.Currency,
	}

	doc, err := h.facade.CreateDocument(c.Request.Context(), sub)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// Get handles GET /api/invoices/:id.
func (h *DocumentHandler) Get(c *gin.Context) {
	doc, err := h.facade.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Root handles GET /.
func (h *DocumentHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Blue Dot backend running. Try POST /api/send-document-email")
}

// respondError maps domain failures to HTTP responses.
func respondError(c *gin.Context, err error) {
	switch {
	case domainErrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrUnknownCurrency):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidDecision):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid decision. Use APPROVED or REJECTED only."})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Document already exists"})
	case errors.Is(err, domainErrors.ErrConflictingDecision):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "A different decision has already been recorded"})
	case errors.Is(err, domainErrors.ErrTransportFailure):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to send email"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal error"})
	}
}
