package notify

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/bluedot/paylink/internal/domain/model"
)

// CurrencySymbol maps a currency code to its display symbol, defaulting to
// the settlement symbol.
func CurrencySymbol(code string) string {
	switch code {
	case "USD":
		return "$"
	case "INR":
		return "₹"
	case "EUR":
		return "€"
	default:
		return "₳"
	}
}

var documentTmpl = template.Must(template.New("document").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"lineTotal": func(item model.LineItem) float64 {
		lineTotal := float64(item.Quantity) * item.UnitPrice
		return lineTotal + lineTotal*item.TaxRatePercent/100
	},
	"joinAddr": func(addr string) string { return strings.ReplaceAll(addr, "\n", ", ") },
}).Parse(`<div style="font-family: Arial, sans-serif; background: #ffffff; padding: 20px; border: 1px solid #e5e7eb; max-width: 600px; margin: auto; border-radius: 8px;">
  <table width="100%" cellpadding="0" cellspacing="0" style="margin-bottom: 20px;">
    <tr>
      <td style="color: {{.Accent}}; font-size: 24px; font-weight: bold;">Blue Dot</td>
      <td style="text-align: right;">
        <span style="font-size: 18px; color: #4b5563; font-weight: 600;">{{.Doc.DocType}} #{{.Doc.ID}}</span>
      </td>
    </tr>
  </table>
  <table width="100%" cellpadding="0" cellspacing="0" style="margin-bottom: 25px; border-bottom: 1px solid #e5e7eb; padding-bottom: 15px;">
    <tr>
      <td>
        <span style="font-size: 10px; color: #9ca3af; text-transform: uppercase; font-weight: bold; display: block; margin-bottom: 5px;">Bill To</span>
        <p style="margin: 0; font-size: 14px; color: #18181b; font-weight: 600;">{{.Doc.CustomerName}}</p>
        <p style="margin: 0; font-size: 12px; color: #4b5563;">{{.Doc.CustomerEmail}}</p>
        <p style="margin: 0; font-size: 12px; color: #4b5563;">{{joinAddr .Doc.BillingAddr}}</p>
      </td>
    </tr>
  </table>
  <table width="100%" cellpadding="0" cellspacing="0" style="margin-bottom: 25px; border-collapse: collapse;">
    <thead>
      <tr style="background: #f9fafb;">
        <th style="padding: 10px; text-align: left; font-size: 12px; color: #4b5563; text-transform: uppercase;">Description</th>
        <th style="padding: 10px; text-align: right; font-size: 12px; color: #4b5563; text-transform: uppercase;">Qty</th>
        <th style="padding: 10px; text-align: right; font-size: 12px; color: #4b5563; text-transform: uppercase;">Unit Price</th>
        <th style="padding: 10px; text-align: right; font-size: 12px; color: #4b5563; text-transform: uppercase;">Total</th>
      </tr>
    </thead>
    <tbody>
      {{range .Doc.Items}}
      <tr>
        <td style="padding: 10px; border-bottom: 1px solid #e5e7eb; font-size: 14px; color: #18181b;">{{.Description}}</td>
        <td style="padding: 10px; border-bottom: 1px solid #e5e7eb; font-size: 14px; text-align: right; color: #18181b;">{{.Quantity}}</td>
        <td style="padding: 10px; border-bottom: 1px solid #e5e7eb; font-size: 14px; text-align: right; color: #18181b;">{{$.Symbol}} {{money .UnitPrice}}</td>
        <td style="padding: 10px; border-bottom: 1px solid #e5e7eb; font-size: 14px; font-weight: 600; text-align: right; color: {{$.Accent}};">{{$.Symbol}} {{money (lineTotal .)}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  <table width="100%" cellpadding="0" cellspacing="0">
    <tr>
      <td style="vertical-align: top;">
        <span style="font-size: 10px; color: #9ca3af; text-transform: uppercase; font-weight: bold; display: block; margin-bottom: 5px;">Terms &amp; Conditions</span>
        <p style="margin: 0; font-size: 11px; color: #6b7280; border-left: 2px solid #e5e7eb; padding-left: 10px; white-space: pre-wrap;">{{.Doc.Terms}}</p>
      </td>
      <td style="text-align: right;">
        <p style="font-size: 14px; color: #4b5563; margin: 5px 0;">Subtotal: <span style="font-weight: 600;">{{.Symbol}} {{money .Doc.Subtotal}}</span></p>
        <p style="font-size: 14px; color: #4b5563; margin: 5px 0;">Tax Amount: <span style="font-weight: 600;">{{.Symbol}} {{money .Doc.TaxAmount}}</span></p>
        <p style="font-size: 18px; color: #18181b; margin: 15px 0 0 0; padding-top: 10px; border-top: 1px solid #d1d5db; font-weight: bold;">GRAND TOTAL: <span style="color: {{.Accent}};">{{.Symbol}} {{money .Doc.Total}}</span></p>
        <p style="font-size: 14px; color: {{.Accent}}; margin: 5px 0 0 0; font-weight: bold;">SETTLEMENT (ADA): <span style="font-size: 16px;">{{money .Doc.SettlementAmount}} ₳</span></p>
      </td>
    </tr>
  </table>
  <div style="margin-top: 40px; text-align: center;">
    <a href="{{.ApproveURL}}" style="display: inline-block; padding: 12px 24px; color: #ffffff; background-color: #16a34a; border-radius: 6px; text-decoration: none; font-weight: 600; margin: 5px;">Approve</a>
    <a href="{{.RejectURL}}" style="display: inline-block; padding: 12px 24px; color: #ffffff; background-color: #dc2626; border-radius: 6px; text-decoration: none; font-weight: 600; margin: 5px;">Reject</a>
    <p style="margin-top: 10px; color: #6b7280; font-size: 14px;">Use the buttons above to record your decision.</p>
  </div>
  <p style="font-size: 10px; color: #9ca3af; text-align: center; margin-top: 20px;">This document was generated by Blue Dot.</p>
</div>
`))

type documentTmplData struct {
	Doc        *model.Document
	Symbol     string
	Accent     string
	ApproveURL string
	RejectURL  string
}

// RenderDocumentHTML renders the email body for a document with its two
// decision links.
func RenderDocumentHTML(doc *model.Document, approveURL, rejectURL string) (string, error) {
	accent := "#2563eb"
	if doc.DocType == model.DocTypeInvoice {
		accent = "#059669"
	}
	var b strings.Builder
	err := documentTmpl.Execute(&b, documentTmplData{
		Doc:        doc,
		Symbol:     CurrencySymbol(doc.Currency),
		Accent:     accent,
		ApproveURL: approveURL,
		RejectURL:  rejectURL,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
