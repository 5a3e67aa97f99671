package constvars

const (
	ResponseUnknown = "unknown"

	BookingCreatedSuccess      = "Booking created successfully"
	ConsultationCreatedSuccess = "Consultation created successfully"
	ConsultationUpdatedSuccess = "Consultation updated successfully"
	TravelCreatedSuccess       = "Travel created successfully"
	PricingUpdatedSuccess      = "Consultation pricing updated successfully"
	PricingGetSuccess          = "Consultation pricing get successfully"
	PaymentVerifiedSuccess     = "Payment Verified"
)
