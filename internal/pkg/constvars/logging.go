package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingUserIDKey       = "user_id"
	LoggingRequestKey      = "request"
	LoggingResponseKey     = "response"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingQueueNameKey    = "queue_name"
	LoggingOrderIDKey      = "provider_order_id"
	LoggingEventKey        = "event"
	LoggingBookingIDKey    = "booking_id"
	LoggingConsultationKey = "consultation_id"
	LoggingTravelIDKey     = "travel_id"
)
