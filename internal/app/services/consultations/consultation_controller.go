package consultations

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

type ConsultationController struct {
	Log                 *zap.Logger
	ConsultationUsecase ConsultationUsecase
}

func NewConsultationController(logger *zap.Logger, consultationUsecase ConsultationUsecase) *ConsultationController {
	return &ConsultationController{
		Log:                 logger,
		ConsultationUsecase: consultationUsecase,
	}
}

func (ctrl *ConsultationController) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateConsultation)
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

	userID, _ := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.ConsultationUsecase.CreateConsultation(ctx, userID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ConsultationCreatedSuccess, result)
}

func (ctrl *ConsultationController) UpdateConsultation(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateConsultation)
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

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	err = ctrl.ConsultationUsecase.UpdateConsultation(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationUpdatedSuccess, nil)
}
