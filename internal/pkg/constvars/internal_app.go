package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "PETFIRST_SVC_"
)

const (
	ResourceBookings      = "bookings"
	ResourceConsultations = "consultations"
	ResourceTravels       = "travels"
	ResourceServices      = "services"
	ResourceBranches      = "branches"
	ResourcePricing       = "pricing"
	ResourceWebhooks      = "webhooks"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

// Catalog slug of the travel assistance service, which is priced and booked
// through its own flow rather than the generic booking coordinator.
const ServiceSlugTravel = "travel"
