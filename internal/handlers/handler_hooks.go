package handlers

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/omnibuskit/price_history_app/internal/apperrors"
	"github.com/omnibuskit/price_history_app/internal/dto"
	"github.com/omnibuskit/price_history_app/internal/hooks"
	"github.com/omnibuskit/price_history_app/internal/middleware"
)

const webhookSecretHeader = "X-Webhook-Secret"

// hooksHandler receives lifecycle events from the host platform and routes
// them into the registered hook handlers.
type hooksHandler struct {
	dispatcher *hooks.MuxDispatcher
	secret     string
}

// newHooksHandler creates a new hooksHandler.
func newHooksHandler(dispatcher *hooks.MuxDispatcher, secret string) *hooksHandler {
	return &hooksHandler{dispatcher: dispatcher, secret: secret}
}

// RegisterHookRoutes registers the platform webhook route.
func RegisterHookRoutes(rg *gin.RouterGroup, dispatcher *hooks.MuxDispatcher, secret string) {
	h := newHooksHandler(dispatcher, secret)
	rg.POST("/platform", h.receiveEvent)
}

// receiveEvent godoc
// @Summary Receive a platform lifecycle event
// @Description Accepts product/variant lifecycle events and records their price sets
// @Tags hooks
// @Accept json
// @Produce json
// @Param event body dto.WebhookEnvelope true "Event envelope"
// @Success 202 {object} dto.WebhookResponse
// @Failure 400 {object} map[string]string "Malformed envelope or unknown event"
// @Failure 401 {object} map[string]string "Bad webhook secret"
// @Router /hooks/platform [post]
func (h *hooksHandler) receiveEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	provided := c.GetHeader(webhookSecretHeader)
	if h.secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(h.secret)) != 1 {
		logger.Warn("Webhook rejected: bad secret")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var envelope dto.WebhookEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			logger.Warn("Webhook envelope missing fields", slog.Any("fields", fields))
		} else {
			logger.Warn("Failed to bind webhook envelope", slog.String("error", err.Error()))
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event envelope: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("event", envelope.Event))
	result, err := h.dispatcher.Dispatch(c.Request.Context(), envelope.Event, envelope.Data)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Webhook event rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Webhook event failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process event"})
		return
	}

	logger.Info("Webhook event processed",
		slog.Int("recorded", result.Recorded),
		slog.Int("failed", len(result.Failures)),
	)
	c.JSON(http.StatusAccepted, dto.WebhookResponse{
		Recorded: result.Recorded,
		Failed:   len(result.Failures),
	})
}
