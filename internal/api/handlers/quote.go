package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bytewave/siteapi/internal/config"
	"github.com/bytewave/siteapi/internal/domain"
	"github.com/bytewave/siteapi/internal/mailer"
)

// QuoteResponse is the relay's reply for quote submissions
type QuoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	QuoteID string `json:"quoteId"`
}

// HandleSendQuote handles POST /api/send-quote. The relay is stateless:
// it renders the email, makes one delivery attempt, and replies. Nothing
// is persisted or deduplicated.
func HandleSendQuote(cfg *config.Config, sender mailer.Sender, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub domain.QuoteSubmission
		if err := c.ShouldBindJSON(&sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
			return
		}

		if strings.TrimSpace(sub.Customer.Name) == "" ||
			strings.TrimSpace(sub.Customer.Email) == "" ||
			len(sub.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
			return
		}

		// Clients may send their own quote ID; generate one otherwise
		if sub.QuoteID == "" {
			sub.QuoteID = domain.NewQuoteID()
		}
		if sub.TotalItems == 0 {
			for _, item := range sub.Items {
				sub.TotalItems += item.Quantity
			}
		}

		html, text, err := mailer.RenderQuote(sub, time.Now())
		if err != nil {
			logger.Error("Failed to render quote email", zap.Error(err), zap.String("quote_id", sub.QuoteID))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send email. Please try again later."})
			return
		}

		msg := mailer.Message{
			To:          cfg.Mail.BusinessEmail,
			ToName:      cfg.Mail.BusinessName,
			ReplyTo:     sub.Customer.Email,
			ReplyToName: sub.Customer.Name,
			Subject:     "New Quote Request from " + sub.Customer.Name + " - " + sub.QuoteID,
			HTML:        html,
			Text:        text,
		}

		if err := sender.Send(msg); err != nil {
			// Generic message outward; detail is already in the server log
			logger.Error("Failed to send quote email", zap.Error(err), zap.String("quote_id", sub.QuoteID))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send email. Please try again later."})
			return
		}

		logger.Info("Quote request relayed",
			zap.String("quote_id", sub.QuoteID),
			zap.Int("item_count", len(sub.Items)),
			zap.Int("total_items", sub.TotalItems),
		)

		c.JSON(http.StatusOK, QuoteResponse{
			Success: true,
			Message: "Quote request sent successfully",
			QuoteID: sub.QuoteID,
		})
	}
}
