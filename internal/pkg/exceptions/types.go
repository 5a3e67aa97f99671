package exceptions

import (
	"fmt"

	"petfirst-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotReadRequestBody = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotReadRequestBody)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSendHTTPRequest)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, "authorization token missing")
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, "authorization token invalid or expired")
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocument)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}
	ErrMongoDBCreateIndex = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToCreateIndex)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToGet)
	}
	ErrRedisSet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToSet)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queue string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queue))
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}

	// Payment gateway
	ErrPaymentGatewayCreateOrder = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPaymentGatewayCreateOrder)
	}

	// Webhook
	ErrWebhookSignatureMismatch = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientInvalidWebhookSignature, constvars.ErrDevWebhookSignatureMismatch)
	}

	// Booking / consultation / travel business rules.
	//
	// Booking-time rejection deliberately answers 404: existing mobile and web
	// clients key on that status, so it is preserved even though 400 would be
	// the cleaner choice.
	ErrBookingTimeInvalid = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientBookingTimeInvalid, constvars.ErrDevBookingWindowRejected)
	}
	ErrConsultationTimeInvalid = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientBookingTimeInvalid, constvars.ErrDevConsultationWindowRejected)
	}
	ErrServiceDataNotFound = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientServiceDataNotFound, "service lookup returned no document")
	}
	ErrServiceItemDataNotFound = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientServiceItemDataNotFound, "service item lookup returned no document")
	}
	ErrBranchNotFound = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientBranchNotFound, "branch lookup returned no document")
	}
	ErrTravelServiceNotFound = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientTravelServiceNotFound, "travel catalog service missing")
	}
	ErrConsultationNotFound = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientConsultationNotFound, "consultation lookup returned no document")
	}
	ErrActiveConsultationExists = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientActiveConsultationExists, constvars.ErrDevActiveConsultationExists)
	}
	ErrSlotAlreadyBooked = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientSlotAlreadyBooked, constvars.ErrDevConsultationSlotTaken)
	}
	ErrConsultationAlreadyPaid = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientConsultationAlreadyPaid, constvars.ErrDevConsultationAlreadyPaid)
	}
	ErrConsultationRescheduleCutoff = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientConsultationUpdateCutoff, constvars.ErrDevConsultationRescheduleCutoff)
	}
	ErrMicrochipNumberRequired = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientMicrochipNumberRequired, constvars.ErrDevMicrochipNumberRequired)
	}
	ErrVaccinationRecordRequired = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientVaccinationRecordRequired, "travel submission carries no vaccination record document")
	}
)
