package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bytewave/siteapi/internal/catalog"
	"github.com/bytewave/siteapi/internal/config"
	"github.com/bytewave/siteapi/internal/domain"
	"github.com/bytewave/siteapi/internal/mailer"
)

// ContactResponse is the relay's reply for contact submissions
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HandleSendContact handles POST /api/send-email (contact form)
func HandleSendContact(cfg *config.Config, sender mailer.Sender, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub domain.ContactSubmission
		if err := c.ShouldBindJSON(&sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
			return
		}

		if strings.TrimSpace(sub.Name) == "" ||
			strings.TrimSpace(sub.Email) == "" ||
			strings.TrimSpace(sub.Subject) == "" ||
			strings.TrimSpace(sub.Message) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
			return
		}

		// The subject may arrive as "Category - Component" from the form.
		// Unknown categories are logged, not rejected: the catalogue on the
		// site can drift ahead of a deployed relay.
		category := sub.Subject
		if idx := strings.Index(category, " - "); idx > 0 {
			category = category[:idx]
		}
		if _, ok := catalog.FindCategory(category); !ok {
			logger.Warn("Contact submission references unknown service category",
				zap.String("subject", sub.Subject),
			)
		}

		html, text, err := mailer.RenderContact(sub, time.Now())
		if err != nil {
			logger.Error("Failed to render contact email", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send email. Please try again later."})
			return
		}

		msg := mailer.Message{
			To:          cfg.Mail.BusinessEmail,
			ToName:      cfg.Mail.BusinessName,
			ReplyTo:     sub.Email,
			ReplyToName: sub.Name,
			Subject:     "New Contact: " + sub.Subject,
			HTML:        html,
			Text:        text,
		}

		if err := sender.Send(msg); err != nil {
			logger.Error("Failed to send contact email", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send email. Please try again later."})
			return
		}

		logger.Info("Contact message relayed", zap.String("subject", sub.Subject))

		c.JSON(http.StatusOK, ContactResponse{
			Success: true,
			Message: "Message sent successfully",
		})
	}
}
