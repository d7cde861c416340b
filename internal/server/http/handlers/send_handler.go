package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bluedot/paylink/internal/adapter/mail"
	"github.com/bluedot/paylink/internal/server/http/dto"
)

// SendHandler accepts dispatch requests carrying sender credentials and the
// document to email.
type SendHandler struct {
	facade DispatchFacade
}

// NewSendHandler constructs SendHandler.
func NewSendHandler(facade DispatchFacade) *SendHandler {
	return &SendHandler{facade: facade}
}

// Send handles POST /api/send-document-email.
func (h *SendHandler) Send(c *gin.Context) {
	var payload dto.SendEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request payload"})
		return
	}

	if payload.SMTPUser == "" || payload.SMTPPass == "" || payload.Doc == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "smtpUser, smtpPass and doc are required"})
		return
	}
	if payload.Doc.CustomerEmail == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "doc.customerEmail is required"})
		return
	}

	creds := mail.Credentials{Username: payload.SMTPUser, Password: payload.SMTPPass}
	doc, err := h.facade.SendDocumentEmail(c.Request.Context(), creds, *payload.Doc)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SendEmailResponse{OK: true, ID: doc.ID})
}
