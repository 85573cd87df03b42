package mailer

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/bytewave/siteapi/internal/domain"
)

// nl2br escapes user text and turns newlines into <br> so multi-line
// messages survive the HTML body
func nl2br(s string) htmltemplate.HTML {
	escaped := htmltemplate.HTMLEscapeString(s)
	return htmltemplate.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

var htmlFuncs = htmltemplate.FuncMap{"nl2br": nl2br}

type quoteTemplateData struct {
	domain.QuoteSubmission
	Date      string
	ItemCount int
}

type contactTemplateData struct {
	domain.ContactSubmission
	Date string
}

var quoteHTMLTemplate = htmltemplate.Must(htmltemplate.New("quote").Funcs(htmlFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Quote Request - {{.QuoteID}}</title>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 20px; background-color: #f4f4f4; }
.container { max-width: 600px; margin: 0 auto; background: white; border-radius: 8px; overflow: hidden; }
.header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; }
.content { padding: 30px; }
.section h2 { color: #4a5568; font-size: 20px; border-bottom: 2px solid #e2e8f0; padding-bottom: 8px; }
.customer-info { background: #f7fafc; padding: 20px; border-radius: 6px; border-left: 4px solid #667eea; }
.info-label { font-weight: bold; color: #4a5568; display: inline-block; width: 100px; }
.services-summary { background: #e6fffa; padding: 15px; border-radius: 6px; margin-bottom: 20px; border: 1px solid #81e6d9; }
.service-item { background: #f9f9f9; padding: 15px; margin-bottom: 15px; border-radius: 6px; border: 1px solid #e2e8f0; }
.service-name { font-weight: bold; color: #2d3748; font-size: 16px; }
.service-type { color: #667eea; font-size: 14px; }
.service-quantity { background: #667eea; color: white; padding: 4px 12px; border-radius: 20px; font-size: 12px; font-weight: bold; }
.service-description { color: #718096; font-size: 14px; }
.action-required { background: #fff5f5; border: 1px solid #feb2b2; padding: 20px; border-radius: 6px; margin: 20px 0; }
.footer { text-align: center; padding: 20px; background: #f7fafc; color: #718096; font-size: 14px; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h1>New Quote Request</h1><p>Quote ID: {{.QuoteID}} &bull; {{.Date}}</p></div>
<div class="content">
<div class="section">
<h2>Customer Information</h2>
<div class="customer-info">
<div><span class="info-label">Name:</span><span>{{.Customer.Name}}</span></div>
<div><span class="info-label">Email:</span><span>{{.Customer.Email}}</span></div>
<div><span class="info-label">Phone:</span><span>{{if .Customer.Phone}}{{.Customer.Phone}}{{else}}Not provided{{end}}</span></div>
{{if .Customer.Message}}<div><span class="info-label">Message:</span><br><div>{{nl2br .Customer.Message}}</div></div>{{end}}
</div>
</div>
<div class="section">
<h2>Requested Services</h2>
<div class="services-summary"><strong>Summary:</strong> {{.ItemCount}} service types &bull; {{.TotalItems}} total items</div>
{{range .Items}}<div class="service-item">
<div><span class="service-name">{{.Name}}</span> <span class="service-quantity">Qty: {{.Quantity}}</span></div>
<div class="service-type">{{.ServiceType}}</div>
<div class="service-description">{{.Description}}</div>
</div>
{{end}}</div>
<div class="action-required"><h3>Action Required</h3><p>Please respond to this quote request within 24-48 hours.</p><p>Customer is waiting for pricing and timeline information.</p></div>
</div>
<div class="footer"><p>This quote request was generated automatically from your website.</p><p>Quote ID: {{.QuoteID}} &bull; Generated on {{.Date}}</p></div>
</div>
</body>
</html>
`))

var quoteTextTemplate = texttemplate.Must(texttemplate.New("quote").Parse(`NEW QUOTE REQUEST
Quote ID: {{.QuoteID}}
Date: {{.Date}}

CUSTOMER INFORMATION
====================
Name: {{.Customer.Name}}
Email: {{.Customer.Email}}
Phone: {{if .Customer.Phone}}{{.Customer.Phone}}{{else}}Not provided{{end}}
{{if .Customer.Message}}Message: {{.Customer.Message}}
{{end}}
REQUESTED SERVICES
==================
Total Service Types: {{.ItemCount}}
Total Items: {{.TotalItems}}

{{range .Items}}* {{.Name}} (Qty: {{.Quantity}})
  Service Type: {{.ServiceType}}
  Description: {{.Description}}

{{end}}ACTION REQUIRED
===============
Please respond to this quote request within 24-48 hours.
Customer is waiting for pricing and timeline information.

This quote request was generated automatically from your website.
Quote ID: {{.QuoteID}}
`))

var contactHTMLTemplate = htmltemplate.Must(htmltemplate.New("contact").Funcs(htmlFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Contact Form Submission</title>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f8f9fa; }
.header { background: linear-gradient(135deg, #3b82f6, #10b981); color: white; padding: 30px 20px; border-radius: 12px 12px 0 0; text-align: center; }
.content { background: white; padding: 30px; border-radius: 0 0 12px 12px; }
.field-label { font-weight: bold; color: #3b82f6; font-size: 14px; text-transform: uppercase; display: block; }
.field-value { background: #f8f9fa; padding: 15px; border-radius: 8px; border-left: 4px solid #10b981; }
.service-info { background: #f0f9ff; padding: 20px; border-radius: 10px; margin: 20px 0; border: 1px solid #0ea5e9; }
.service-title { color: #0369a1; font-weight: bold; font-size: 18px; }
.component-title { color: #059669; font-weight: 600; font-size: 16px; }
.message-box { background: #fefefe; padding: 20px; border-radius: 10px; border: 1px solid #e5e7eb; margin-top: 20px; }
.footer { text-align: center; padding: 20px; color: #6b7280; font-size: 14px; border-top: 1px solid #e5e7eb; margin-top: 30px; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h1>New Contact Form Submission</h1><p>Received on {{.Date}}</p></div>
<div class="content">
<div><span class="field-label">Customer Name</span><div class="field-value">{{.Name}}</div></div>
<div><span class="field-label">Email Address</span><div class="field-value">{{.Email}}</div></div>
<div class="service-info">
<div class="service-title">Service Requested: {{.Subject}}</div>
{{if .Component}}<div class="component-title">Specific Component: {{.Component}}</div>{{end}}
</div>
<div><span class="field-label">Customer Message</span><div class="message-box">{{nl2br .Message}}</div></div>
<div class="footer"><p>This email was sent from the website contact form.</p><p>Please respond promptly to maintain excellent customer service.</p></div>
</div>
</div>
</body>
</html>
`))

var contactTextTemplate = texttemplate.Must(texttemplate.New("contact").Parse(`NEW CONTACT FORM SUBMISSION
Received: {{.Date}}

Name: {{.Name}}
Email: {{.Email}}
Service Requested: {{.Subject}}
{{if .Component}}Specific Component: {{.Component}}
{{end}}
MESSAGE
=======
{{.Message}}

This email was sent from the website contact form.
`))

// RenderQuote renders the HTML and plaintext bodies of a quote email
func RenderQuote(sub domain.QuoteSubmission, now time.Time) (html, text string, err error) {
	data := quoteTemplateData{
		QuoteSubmission: sub,
		Date:            now.Format("January 2, 2006"),
		ItemCount:       len(sub.Items),
	}
	var htmlBuf, textBuf bytes.Buffer
	if err := quoteHTMLTemplate.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("render quote html: %w", err)
	}
	if err := quoteTextTemplate.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("render quote text: %w", err)
	}
	return htmlBuf.String(), textBuf.String(), nil
}

// RenderContact renders the HTML and plaintext bodies of a contact email
func RenderContact(sub domain.ContactSubmission, now time.Time) (html, text string, err error) {
	data := contactTemplateData{
		ContactSubmission: sub,
		Date:              now.Format("January 2, 2006 15:04"),
	}
	var htmlBuf, textBuf bytes.Buffer
	if err := contactHTMLTemplate.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("render contact html: %w", err)
	}
	if err := contactTextTemplate.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("render contact text: %w", err)
	}
	return htmlBuf.String(), textBuf.String(), nil
}
