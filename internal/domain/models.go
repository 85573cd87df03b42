package domain

// ServiceComponent is the smallest selectable unit of an offered service
// (e.g. "Logo Design" under Graphics Design). Reference data, never mutated.
type ServiceComponent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ServiceCategory groups components under one service offering
type ServiceCategory struct {
	Title       string
	Description string
	Components  []ServiceComponent
}

// CartItem is a selected component with a quantity. At most one CartItem
// exists per component id in a cart; adding an existing id increments quantity.
type CartItem struct {
	ServiceComponent
	Quantity    int    `json:"quantity"`
	ServiceType string `json:"serviceType"` // owning category title
}

// CustomerInfo holds the contact details entered for one submission
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message,omitempty"`
}

// QuoteSubmission is the immutable snapshot sent to the mail relay.
// TotalItems is the sum of item quantities.
type QuoteSubmission struct {
	Customer   CustomerInfo `json:"customer"`
	Items      []CartItem   `json:"items"`
	TotalItems int          `json:"totalItems"`
	QuoteID    string       `json:"quoteId,omitempty"`
}

// ContactSubmission is the contact-form payload. Subject is a service
// category title; Component is an optional component name within it.
type ContactSubmission struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Component string `json:"component,omitempty"`
	Message   string `json:"message"`
}
