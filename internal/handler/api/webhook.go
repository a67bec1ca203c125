package api

import (
	"net/http"

	reqdto "parkgate/internal/handler/dto/request"
	resdto "parkgate/internal/handler/dto/response"
	"parkgate/internal/pkg/metrics"
	"parkgate/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const webhookIDHeader = "X-Shopify-Webhook-Id"

type WebhookHandler struct {
	intakeUseCase usecase.IntakeUseCase
}

func NewWebhookHandler(intakeUseCase usecase.IntakeUseCase) *WebhookHandler {
	return &WebhookHandler{
		intakeUseCase: intakeUseCase,
	}
}

// @Summary Order created webhook
// @Description Receive a Shopify "order created" webhook and send the reservation confirmation
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Shopify-Webhook-Id header string false "Webhook delivery id used for deduplication"
// @Param request body reqdto.OrderWebhook true "Order created payload"
// @Success 201 {object} resdto.WebhookResponse
// @Router /webhooks/orders/create [post]
func (h *WebhookHandler) HandleOrderCreated(c *gin.Context) {
	// The platform treats any 2xx as acceptance, so the method gate answers
	// 201 like every other outcome instead of a 405.
	if c.Request.Method != http.MethodPost {
		h.respond(c, usecase.MsgRequestNotPost)
		return
	}

	var req reqdto.OrderWebhook
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond(c, usecase.MsgDataMissing)
		return
	}

	deliveryID := c.GetHeader(webhookIDHeader)
	if deliveryID == "" {
		// Without a platform-supplied id there is nothing to dedup against;
		// a random id lets the rest of the flow run unchanged.
		deliveryID = uuid.NewString()
	}

	result := h.intakeUseCase.ProcessOrder(c.Request.Context(), req, deliveryID)
	h.respond(c, result.Message)
}

func (h *WebhookHandler) respond(c *gin.Context, message string) {
	metrics.WebhookOutcomesTotal.WithLabelValues(usecase.OutcomeLabel(message)).Inc()
	c.JSON(http.StatusCreated, resdto.WebhookResponse{Message: message})
}
