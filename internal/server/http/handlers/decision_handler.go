package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bluedot/paylink/internal/domain/errors"
	"github.com/bluedot/paylink/internal/domain/model"
)

// DecisionHandler serves the decision link embedded in outbound emails. It
// is the sole externally reachable mutator of decision state.
type DecisionHandler struct {
	facade DocumentFacade
}

// NewDecisionHandler constructs DecisionHandler.
func NewDecisionHandler(facade DocumentFacade) *DecisionHandler {
	return &DecisionHandler{facade: facade}
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<html>
  <head><title>{{.Title}}</title></head>
  <body style="font-family: system-ui; padding: 24px; max-width: 600px; margin: auto; background: #f9fafb;">
    <div style="text-align: center;">
      <h2 style="color: {{.Color}};">{{.Heading}}</h2>
      <p style="font-size: 16px;">{{.Body}}</p>
      <p>{{.Footer}}</p>
    </div>
    <p style="margin-top: 30px; text-align: center; color: #6b7280; font-size: 12px;">You can now close this tab.</p>
  </body>
</html>
`))

type confirmationData struct {
	Title   string
	Color   string
	Heading string
	Body    string
	Footer  string
}

// Decide handles GET /api/invoices/:id/decision.
func (h *DecisionHandler) Decide(c *gin.Context) {
	id := c.Param("id")
	raw := c.Query("decision")

	doc, err := h.facade.RecordDecision(c.Request.Context(), id, raw)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidDecision):
			c.String(http.StatusBadRequest, "Invalid decision. Use APPROVED or REJECTED only.")
		case errors.Is(err, domainErrors.ErrNotFound):
			c.String(http.StatusNotFound, "Invoice not found. Maybe the link is old or incorrect.")
		case errors.Is(err, domainErrors.ErrConflictingDecision):
			c.String(http.StatusConflict, "A different decision has already been recorded for this document.")
		default:
			c.String(http.StatusInternalServerError, "Internal error")
		}
		return
	}

	kind := strings.ToLower(string(doc.DocType))
	var data confirmationData
	if *doc.ClientDecision == model.DecisionApproved {
		data = confirmationData{
			Title:   "Approved " + doc.ID,
			Color:   "#16a34a",
			Heading: "Approved",
			Body:    "You have successfully APPROVED " + kind + " " + doc.ID + ".",
			Footer:  "The merchant has been notified and the status has been logged.",
		}
	} else {
		data = confirmationData{
			Title:   "Rejected " + doc.ID,
			Color:   "#dc2626",
			Heading: "Rejected",
			Body:    "The decision to REJECT " + kind + " " + doc.ID + " has been recorded.",
			Footer:  "For comments or discussion, please reply to the original email.",
		}
	}

	c.Writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := confirmationTmpl.Execute(c.Writer, data); err != nil {
		_ = c.Error(err)
	}
}
