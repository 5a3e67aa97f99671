package pricing

import (
	"context"
	"net/http"
	"time"

	"petfirst-service/internal/pkg/constvars"
	"petfirst-service/internal/pkg/dto/requests"
	"petfirst-service/internal/pkg/exceptions"
	"petfirst-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PricingController struct {
	Log            *zap.Logger
	PricingService PricingService
}

func NewPricingController(logger *zap.Logger, pricingService PricingService) *PricingController {
	return &PricingController{
		Log:            logger,
		PricingService: pricingService,
	}
}

func (ctrl *PricingController) GetConsultationPricing(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PricingService.GetConsultationPricing(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PricingGetSuccess, result)
}

func (ctrl *PricingController) UpdateConsultationPricing(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateConsultationPricing)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.PricingService.UpdateConsultationPricing(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PricingUpdatedSuccess, nil)
}
