package webhook

import (
	"context"
	"io"
	"net/http"
	"time"

	"petfirst-service/internal/pkg/constvars"
	"petfirst-service/internal/pkg/dto/requests"
	"petfirst-service/internal/pkg/exceptions"
	"petfirst-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type WebhookController struct {
	Log            *zap.Logger
	WebhookUsecase WebhookUsecase
}

func NewWebhookController(logger *zap.Logger, webhookUsecase WebhookUsecase) *WebhookController {
	return &WebhookController{
		Log:            logger,
		WebhookUsecase: webhookUsecase,
	}
}

// HandleRazorpayWebhook verifies and applies a provider callback. Apart from
// a signature mismatch the endpoint always answers 200: a non-200 would make
// the provider redeliver payloads we cannot act on anyway.
func (ctrl *WebhookController) HandleRazorpayWebhook(w http.ResponseWriter, r *http.Request) {
	rawBody, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotReadRequestBody(err))
		return
	}

	err = ctrl.WebhookUsecase.VerifySignature(rawBody, r.Header.Get(constvars.HeaderRazorpaySignature))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	event := new(requests.RazorpayWebhookEvent)
	if err := json.Unmarshal(rawBody, event); err != nil {
		ctrl.Log.Warn("webhook body passed signature check but is not decodable", zap.Error(err))
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentVerifiedSuccess, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := ctrl.WebhookUsecase.ProcessEvent(ctx, rawBody, event); err != nil {
		// Answer 200 regardless: the transition is conditional, so a
		// provider retry after a transient failure is safe but a retry
		// storm on 5xx is not. Operators act on the log.
		ctrl.Log.Error("webhook event processing failed",
			zap.String(constvars.LoggingEventKey, event.Event),
			zap.Error(err),
		)
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentVerifiedSuccess, nil)
}
