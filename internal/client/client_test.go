package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/bytewave/siteapi/internal/cart"
	"github.com/bytewave/siteapi/internal/domain"
	"github.com/bytewave/siteapi/pkg/errors"
)

var quoteIDPattern = regexp.MustCompile(`^QT-\d+-.+$`)

func cartWithLogoDesign() *cart.Store {
	s := cart.NewStore(nil)
	s.Add(domain.ServiceComponent{
		ID:          "logo-design",
		Name:        "Logo Design",
		Description: "Custom logo and brand identity",
	}, "Graphics Design")
	s.SetQuantity("logo-design", 2)
	return s
}

func janeDoe() domain.CustomerInfo {
	return domain.CustomerInfo{Name: "Jane Doe", Email: "jane@example.com"}
}

// relayStub counts requests and replays a canned status/body
type relayStub struct {
	requests int
	status   int
	body     string
	lastBody []byte
}

func (r *relayStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		r.requests++
		r.lastBody, _ = io.ReadAll(req.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(r.status)
		_, _ = w.Write([]byte(r.body))
	}
}

func TestSubmit_Success(t *testing.T) {
	stub := &relayStub{status: http.StatusOK, body: `{"success":true,"message":"Quote request sent successfully","quoteId":"QT-1700000000000-abcd1234"}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	store := cartWithLogoDesign()
	c := NewQuoteClient(Options{BaseURL: srv.URL}, store, nil)

	result, err := c.Submit(context.Background(), janeDoe())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Error("expected success")
	}
	if !quoteIDPattern.MatchString(result.QuoteID) {
		t.Errorf("quote id %q does not match pattern", result.QuoteID)
	}

	// Cart is cleared only after a successful submission
	if store.Len() != 0 {
		t.Errorf("cart should be empty after success, has %d items", store.Len())
	}
	if c.State() != domain.SubmitStateIdle {
		t.Errorf("client should be back to IDLE, got %s", c.State())
	}
	if c.LastOutcome() != domain.SubmitStateSucceeded {
		t.Errorf("last outcome should be SUCCEEDED, got %s", c.LastOutcome())
	}

	// The wire payload carries the snapshot and a generated quote id
	var sent domain.QuoteSubmission
	if err := json.Unmarshal(stub.lastBody, &sent); err != nil {
		t.Fatalf("request body was not a quote submission: %v", err)
	}
	if sent.TotalItems != 2 || len(sent.Items) != 1 {
		t.Errorf("expected snapshot with 1 item and total 2, got %d items, total %d", len(sent.Items), sent.TotalItems)
	}
	if !quoteIDPattern.MatchString(sent.QuoteID) {
		t.Errorf("generated quote id %q does not match pattern", sent.QuoteID)
	}
}

func TestSubmit_InvalidEmailMakesNoNetworkCall(t *testing.T) {
	stub := &relayStub{status: http.StatusOK, body: `{"success":true}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	store := cartWithLogoDesign()
	c := NewQuoteClient(Options{BaseURL: srv.URL}, store, nil)

	_, err := c.Submit(context.Background(), domain.CustomerInfo{Name: "Jane Doe", Email: "not-an-email"})
	verr, ok := err.(*errors.ErrValidation)
	if !ok {
		t.Fatalf("expected *ErrValidation, got %T: %v", err, err)
	}
	if len(verr.Errors) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(verr.Errors), verr.Errors)
	}
	if !strings.Contains(verr.Errors[0], "email format") {
		t.Errorf("error should mention email format, got %q", verr.Errors[0])
	}
	if stub.requests != 0 {
		t.Errorf("no request should reach the relay, got %d", stub.requests)
	}
	if c.State() != domain.SubmitStateIdle {
		t.Errorf("client should return to IDLE after validation failure, got %s", c.State())
	}
}

func TestSubmit_EmptyCartAborts(t *testing.T) {
	stub := &relayStub{status: http.StatusOK, body: `{"success":true}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c := NewQuoteClient(Options{BaseURL: srv.URL}, cart.NewStore(nil), nil)

	_, err := c.Submit(context.Background(), janeDoe())
	if _, ok := err.(*errors.ErrValidation); !ok {
		t.Fatalf("expected *ErrValidation for empty cart, got %T", err)
	}
	if stub.requests != 0 {
		t.Errorf("no request should be issued, got %d", stub.requests)
	}
}

func TestSubmit_RelayErrorPreservesCart(t *testing.T) {
	stub := &relayStub{status: http.StatusInternalServerError, body: `{"success":false,"error":"Failed to send email. Please try again later."}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	store := cartWithLogoDesign()
	c := NewQuoteClient(Options{BaseURL: srv.URL}, store, nil)

	_, err := c.Submit(context.Background(), janeDoe())
	rerr, ok := err.(*errors.ErrRelay)
	if !ok {
		t.Fatalf("expected *ErrRelay, got %T: %v", err, err)
	}
	if rerr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rerr.StatusCode)
	}

	// Items are not lost; the user can retry
	if store.Len() != 1 || store.TotalItems() != 2 {
		t.Errorf("cart must be preserved on failure, got %d items, total %d", store.Len(), store.TotalItems())
	}
	if c.LastOutcome() != domain.SubmitStateFailed {
		t.Errorf("last outcome should be FAILED, got %s", c.LastOutcome())
	}
	if c.State() != domain.SubmitStateIdle {
		t.Errorf("client should be back to IDLE for retry, got %s", c.State())
	}
}

func TestSubmit_SuccessFalsePayloadIsFailure(t *testing.T) {
	stub := &relayStub{status: http.StatusOK, body: `{"success":false,"error":"mailbox full"}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	store := cartWithLogoDesign()
	c := NewQuoteClient(Options{BaseURL: srv.URL}, store, nil)

	_, err := c.Submit(context.Background(), janeDoe())
	if _, ok := err.(*errors.ErrRelay); !ok {
		t.Fatalf("expected *ErrRelay for success=false payload, got %T", err)
	}
	if store.Len() == 0 {
		t.Error("cart must be preserved when the relay flags failure")
	}
}

func TestSubmit_NotFoundDemoModeCountsAsSuccess(t *testing.T) {
	stub := &relayStub{status: http.StatusNotFound, body: `404 page not found`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	store := cartWithLogoDesign()
	c := NewQuoteClient(Options{BaseURL: srv.URL, TreatNotFoundAsSuccess: true}, store, nil)

	result, err := c.Submit(context.Background(), janeDoe())
	if err != nil {
		t.Fatalf("demo mode should treat 404 as success, got %v", err)
	}
	if !result.Success || !quoteIDPattern.MatchString(result.QuoteID) {
		t.Errorf("expected successful result with quote id, got %+v", result)
	}
	// Cart is cleared even though the endpoint is absent - that is the
	// documented demo-mode trade-off
	if store.Len() != 0 {
		t.Errorf("cart should be cleared in demo mode, has %d items", store.Len())
	}
}

func TestSubmit_NotFoundWithoutDemoModeFails(t *testing.T) {
	stub := &relayStub{status: http.StatusNotFound, body: `404 page not found`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	store := cartWithLogoDesign()
	c := NewQuoteClient(Options{BaseURL: srv.URL}, store, nil)

	_, err := c.Submit(context.Background(), janeDoe())
	rerr, ok := err.(*errors.ErrRelay)
	if !ok {
		t.Fatalf("expected *ErrRelay, got %T: %v", err, err)
	}
	if rerr.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rerr.StatusCode)
	}
	if store.Len() == 0 {
		t.Error("cart must be preserved when 404 is not masked")
	}
}

func TestSubmit_UnreachableRelayPreservesCart(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	store := cartWithLogoDesign()
	c := NewQuoteClient(Options{BaseURL: srv.URL}, store, nil)

	_, err := c.Submit(context.Background(), janeDoe())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if store.Len() != 1 {
		t.Error("cart must be preserved on transport failure")
	}
}

func TestSubmit_RetryGeneratesFreshQuoteID(t *testing.T) {
	stub := &relayStub{status: http.StatusInternalServerError, body: `{"success":false}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	store := cartWithLogoDesign()
	c := NewQuoteClient(Options{BaseURL: srv.URL}, store, nil)

	_, _ = c.Submit(context.Background(), janeDoe())
	var first domain.QuoteSubmission
	_ = json.Unmarshal(stub.lastBody, &first)

	_, _ = c.Submit(context.Background(), janeDoe())
	var second domain.QuoteSubmission
	_ = json.Unmarshal(stub.lastBody, &second)

	if stub.requests != 2 {
		t.Fatalf("expected 2 requests, got %d", stub.requests)
	}
	if first.QuoteID == "" || first.QuoteID == second.QuoteID {
		t.Errorf("retry must carry a fresh quote id (first %q, second %q)", first.QuoteID, second.QuoteID)
	}
}

func TestSubmit_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"quoteId":"QT-1-x"}`))
	}))
	defer srv.Close()

	c := NewQuoteClient(Options{BaseURL: srv.URL, APIToken: "secret"}, cartWithLogoDesign(), nil)
	if _, err := c.Submit(context.Background(), janeDoe()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("expected bearer token header, got %q", gotAuth)
	}
}

func TestContactSend_Success(t *testing.T) {
	stub := &relayStub{status: http.StatusOK, body: `{"success":true,"message":"Message sent successfully"}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c := NewContactClient(Options{BaseURL: srv.URL}, nil)
	result, err := c.Send(context.Background(), domain.ContactSubmission{
		Name:      "John Smith",
		Email:     "john@example.com",
		Subject:   "Device Repair",
		Component: "Phone Repair",
		Message:   "Cracked screen.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Error("expected success")
	}
	if stub.requests != 1 {
		t.Errorf("expected 1 request, got %d", stub.requests)
	}
}

func TestContactSend_ValidationBlocksRequest(t *testing.T) {
	stub := &relayStub{status: http.StatusOK, body: `{"success":true}`}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	c := NewContactClient(Options{BaseURL: srv.URL}, nil)
	_, err := c.Send(context.Background(), domain.ContactSubmission{Name: "John"})
	if _, ok := err.(*errors.ErrValidation); !ok {
		t.Fatalf("expected *ErrValidation, got %T", err)
	}
	if stub.requests != 0 {
		t.Errorf("no request should be issued, got %d", stub.requests)
	}
}
