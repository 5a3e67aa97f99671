package constvars

// Client-facing messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your request"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please login first"

	ErrClientBookingTimeInvalid        = "Booking time invalid."
	ErrClientServiceDataNotFound       = "Service data not found."
	ErrClientServiceItemDataNotFound   = "Service item data not found."
	ErrClientBranchNotFound            = "Branch not found."
	ErrClientTravelServiceNotFound     = "Travel service not found."
	ErrClientConsultationNotFound      = "Consultation not found."
	ErrClientActiveConsultationExists  = "You already have an active consultation."
	ErrClientSlotAlreadyBooked         = "Slot already booked."
	ErrClientConsultationAlreadyPaid   = `Cannot update a consultation with status "Success".`
	ErrClientConsultationUpdateCutoff  = "Consultation cannot be updated less than 2 hours before start time."
	ErrClientMicrochipNumberRequired   = "Microchip number is required for international travel."
	ErrClientVaccinationRecordRequired = "Vaccination record document is required."
	ErrClientInvalidWebhookSignature   = "Invalid signature"
)

// Developer-facing messages
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON          = "failed to marshal data to JSON"
	ErrDevCannotReadRequestBody      = "failed to read request body"
	ErrDevURLParamIDValidationFailed = "failed to validate url param '%s'"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded processing request"

	ErrDevDBFailedToFindDocument    = "failed to find document in database"
	ErrDevDBFailedToInsertDocument  = "failed to insert document to database"
	ErrDevDBFailedToUpdateDocument  = "failed to update document in database"
	ErrDevDBFailedToDeleteDocument  = "failed to delete document in database"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents from database"
	ErrDevDBStringNotObjectID       = "provided string is not a valid object id"
	ErrDevDBFailedToCreateIndex     = "failed to create index on collection"

	ErrDevRedisFailedToGet = "failed to get value from redis"
	ErrDevRedisFailedToSet = "failed to set value to redis"

	ErrDevRabbitMQPublishMessage = "failed to publish message to queue '%s'"

	ErrDevMinioFailedToCreateObject = "failed to create object in bucket '%s'"

	ErrDevPaymentGatewayCreateOrder = "payment gateway failed to create order"
	ErrDevWebhookSignatureMismatch  = "webhook signature does not match computed HMAC"

	ErrDevBookingWindowRejected        = "requested booking window rejected by slot validation"
	ErrDevConsultationWindowRejected   = "requested consultation window rejected by online slot validation"
	ErrDevActiveConsultationExists     = "user already holds an active consultation of this category"
	ErrDevConsultationSlotTaken        = "another consultation already occupies the truncated window"
	ErrDevConsultationAlreadyPaid      = "consultation status is terminal, window can no longer change"
	ErrDevConsultationRescheduleCutoff = "reschedule attempted within 120 minutes of existing start time"
	ErrDevMicrochipNumberRequired      = "international travel requires a microchip number"
)
