// Package cart implements the in-memory selection of service components
// for one quote session. One Store per form session; the Store is not
// safe for concurrent use and does not need to be (a session is single
// threaded, submissions never share state).
package cart

import (
	"go.uber.org/zap"

	"github.com/bytewave/siteapi/internal/domain"
)

// Notifier receives the transient user-facing notifications the store
// emits on add/remove (a toast in the original UI)
type Notifier interface {
	Notify(message string)
}

type zapNotifier struct {
	logger *zap.Logger
}

func (n *zapNotifier) Notify(message string) {
	n.logger.Info("Cart notification", zap.String("message", message))
}

// NewZapNotifier returns a Notifier that logs notifications
func NewZapNotifier(logger *zap.Logger) Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapNotifier{logger: logger}
}

// Store holds the live cart items. It exclusively owns the collection;
// Items returns a copy so a submission snapshot never aliases live state.
type Store struct {
	items    []domain.CartItem
	notifier Notifier
}

// NewStore creates an empty cart store
func NewStore(notifier Notifier) *Store {
	if notifier == nil {
		notifier = NewZapNotifier(nil)
	}
	return &Store{notifier: notifier}
}

// Add puts a component in the cart under its category title. If the
// component id is already present its quantity is incremented instead of
// a second item being appended. Always succeeds.
func (s *Store) Add(component domain.ServiceComponent, serviceType string) {
	for i := range s.items {
		if s.items[i].ID == component.ID {
			s.items[i].Quantity++
			s.notifier.Notify("Added to cart: " + component.Name)
			return
		}
	}
	s.items = append(s.items, domain.CartItem{
		ServiceComponent: component,
		Quantity:         1,
		ServiceType:      serviceType,
	})
	s.notifier.Notify("Added to cart: " + component.Name)
}

// Remove deletes the item with the given id; no-op if absent
func (s *Store) Remove(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.notifier.Notify("Removed from cart")
			return
		}
	}
}

// SetQuantity sets an item's quantity. Zero removes the item; quantities
// below 1 are not reachable through any other path.
func (s *Store) SetQuantity(id string, n int) {
	if n <= 0 {
		s.Remove(id)
		return
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = n
			return
		}
	}
}

// TotalItems returns the sum of quantities across all items
func (s *Store) TotalItems() int {
	total := 0
	for i := range s.items {
		total += s.items[i].Quantity
	}
	return total
}

// Len returns the number of distinct items in the cart
func (s *Store) Len() int {
	return len(s.items)
}

// Items returns a read-only snapshot of the cart
func (s *Store) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Clear empties the cart (after a successful submission)
func (s *Store) Clear() {
	s.items = nil
}
