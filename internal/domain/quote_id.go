package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewQuoteID returns a quote identifier of the form QT-<millis>-<suffix>.
// Uniqueness is practical, not guaranteed: there is no server-side check,
// a collision would only merge two quote emails under one reference.
func NewQuoteID() string {
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("QT-%d-%s", time.Now().UnixMilli(), suffix)
}
