package travels

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"petfirst-service/internal/pkg/constvars"
	"petfirst-service/internal/pkg/dto/requests"
	"petfirst-service/internal/pkg/exceptions"
	"petfirst-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TravelController struct {
	Log           *zap.Logger
	TravelUsecase TravelUsecase
}

func NewTravelController(logger *zap.Logger, travelUsecase TravelUsecase) *TravelController {
	return &TravelController{
		Log:           logger,
		TravelUsecase: travelUsecase,
	}
}

func (ctrl *TravelController) CreateTravel(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateTravel)
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

	data, err := base64.StdEncoding.DecodeString(request.VaccinationRecord)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	request.VaccinationRecordData = data

	userID, _ := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 40*time.Second)
	defer cancel()

	result, err := ctrl.TravelUsecase.CreateTravel(ctx, userID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.TravelCreatedSuccess, result)
}
