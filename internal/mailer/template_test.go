package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/bytewave/siteapi/internal/domain"
)

func sampleQuote() domain.QuoteSubmission {
	return domain.QuoteSubmission{
		Customer: domain.CustomerInfo{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Message: "Need this soon.\nBudget is flexible.",
		},
		Items: []domain.CartItem{
			{
				ServiceComponent: domain.ServiceComponent{
					ID:          "logo-design",
					Name:        "Logo Design",
					Description: "Custom logo and brand identity",
				},
				Quantity:    2,
				ServiceType: "Graphics Design",
			},
		},
		TotalItems: 2,
		QuoteID:    "QT-1700000000000-abcd1234",
	}
}

func TestRenderQuote_ContainsSubmissionFields(t *testing.T) {
	html, text, err := RenderQuote(sampleQuote(), time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Jane Doe", "jane@example.com", "QT-1700000000000-abcd1234", "Logo Design", "Graphics Design", "Qty: 2", "March 5, 2026"} {
		if !strings.Contains(html, want) {
			t.Errorf("html body missing %q", want)
		}
	}

	for _, want := range []string{"NEW QUOTE REQUEST", "Jane Doe", "QT-1700000000000-abcd1234", "Total Items: 2", "Qty: 2"} {
		if !strings.Contains(text, want) {
			t.Errorf("text body missing %q", want)
		}
	}
}

func TestRenderQuote_MissingPhoneShowsPlaceholder(t *testing.T) {
	html, text, err := RenderQuote(sampleQuote(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "Not provided") {
		t.Error("html should show 'Not provided' for a missing phone")
	}
	if !strings.Contains(text, "Not provided") {
		t.Error("text should show 'Not provided' for a missing phone")
	}
}

func TestRenderQuote_EscapesHTML(t *testing.T) {
	sub := sampleQuote()
	sub.Customer.Name = `<script>alert("x")</script>`

	html, _, err := RenderQuote(sub, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("customer input must be escaped in the html body")
	}
}

func TestRenderQuote_MessageNewlinesBecomeBreaks(t *testing.T) {
	html, _, err := RenderQuote(sampleQuote(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "Need this soon.<br>Budget is flexible.") {
		t.Error("multi-line message should be joined with <br> in the html body")
	}
}

func TestRenderContact_ContainsSubmissionFields(t *testing.T) {
	sub := domain.ContactSubmission{
		Name:      "John Smith",
		Email:     "john@example.com",
		Subject:   "Device Repair",
		Component: "Phone Repair",
		Message:   "Cracked screen.",
	}

	html, text, err := RenderContact(sub, time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"John Smith", "john@example.com", "Service Requested: Device Repair", "Specific Component: Phone Repair", "Cracked screen."} {
		if !strings.Contains(html, want) {
			t.Errorf("html body missing %q", want)
		}
	}
	if !strings.Contains(text, "Service Requested: Device Repair") {
		t.Error("text body missing service line")
	}
}

func TestRenderContact_ComponentOmittedWhenEmpty(t *testing.T) {
	sub := domain.ContactSubmission{
		Name:    "John Smith",
		Email:   "john@example.com",
		Subject: "IT Support",
		Message: "Help.",
	}

	html, _, err := RenderContact(sub, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "Specific Component") {
		t.Error("component block should be omitted when no component was selected")
	}
}
