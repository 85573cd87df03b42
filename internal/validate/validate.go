// Package validate holds the pure validation rules applied to submissions
// before any network call. Rules are independent: every violation is
// collected, nothing short-circuits.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bytewave/siteapi/internal/domain"
)

// Shallow well-formedness check (local@domain.tld), not RFC 5322 and not
// a deliverability guarantee.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result holds the outcome of a validation pass
type Result struct {
	Valid  bool
	Errors []string
}

// Quote validates a quote submission against all rules and returns every
// violation. Item violations carry the 1-based item index.
func Quote(sub domain.QuoteSubmission) Result {
	var errs []string

	if strings.TrimSpace(sub.Customer.Name) == "" {
		errs = append(errs, "Customer name is required")
	}

	if strings.TrimSpace(sub.Customer.Email) == "" {
		errs = append(errs, "Customer email is required")
	} else if !emailPattern.MatchString(sub.Customer.Email) {
		errs = append(errs, "Invalid email format")
	}

	if len(sub.Items) == 0 {
		errs = append(errs, "At least one service item is required")
	}

	if sub.TotalItems <= 0 {
		errs = append(errs, "Total items must be greater than 0")
	}

	for i, item := range sub.Items {
		if strings.TrimSpace(item.Name) == "" {
			errs = append(errs, fmt.Sprintf("Item %d: Name is required", i+1))
		}
		if strings.TrimSpace(item.Description) == "" {
			errs = append(errs, fmt.Sprintf("Item %d: Description is required", i+1))
		}
		if strings.TrimSpace(item.ServiceType) == "" {
			errs = append(errs, fmt.Sprintf("Item %d: Service type is required", i+1))
		}
		if item.Quantity <= 0 {
			errs = append(errs, fmt.Sprintf("Item %d: Quantity must be greater than 0", i+1))
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// Contact validates a contact-form submission. Component is optional.
func Contact(sub domain.ContactSubmission) Result {
	var errs []string

	if strings.TrimSpace(sub.Name) == "" {
		errs = append(errs, "Name is required")
	}

	if strings.TrimSpace(sub.Email) == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(sub.Email) {
		errs = append(errs, "Invalid email format")
	}

	if strings.TrimSpace(sub.Subject) == "" {
		errs = append(errs, "Subject is required")
	}

	if strings.TrimSpace(sub.Message) == "" {
		errs = append(errs, "Message is required")
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
