package models

// BookingStatus tracks the lifecycle of a booked appointment.
type BookingStatus string

const (
	BookingStatusUpcoming BookingStatus = "Upcoming"
	BookingStatusOngoing  BookingStatus = "Ongoing"
	BookingStatusFinished BookingStatus = "Finished"
	BookingStatusCanceled BookingStatus = "Canceled"
	BookingStatusDelayed  BookingStatus = "Delayed"
)

// PaymentStatus tracks the payment leg of a booking, consultation or travel
// request. Pending transitions exactly once to a terminal status via the
// provider webhook.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusSuccess  PaymentStatus = "Success"
	PaymentStatusFailed   PaymentStatus = "Failed"
	PaymentStatusCanceled PaymentStatus = "Canceled"
)

type ConsultationStatus string

const (
	ConsultationStatusPending     ConsultationStatus = "Pending"
	ConsultationStatusSuccess     ConsultationStatus = "Success"
	ConsultationStatusRescheduled ConsultationStatus = "Rescheduled"
	ConsultationStatusCanceled    ConsultationStatus = "Canceled"
)

type ConsultationType string

const (
	ConsultationTypeNormal     ConsultationType = "Normal"
	ConsultationTypeEuthanasia ConsultationType = "Euthanasia"
)

type EuthanasiaType string

const (
	EuthanasiaTypeOnline EuthanasiaType = "Online"
	EuthanasiaTypeHome   EuthanasiaType = "Home"
)

type TravelType string

const (
	TravelTypeDomestic      TravelType = "Domestic"
	TravelTypeInternational TravelType = "International"
)

// ServiceType is the delivery-mode tag on a catalog service. Home and Health
// services are physically dispatched and therefore bound to operating hours.
type ServiceType string

const (
	ServiceTypeHome   ServiceType = "Home"
	ServiceTypeHealth ServiceType = "Health"
	ServiceTypeOnline ServiceType = "Online"
	ServiceTypeBook   ServiceType = "Book"
)

// RequiresOperatingWindow reports whether bookings of this service type must
// fall inside branch operating hours.
func (s ServiceType) RequiresOperatingWindow() bool {
	return s == ServiceTypeHome || s == ServiceTypeHealth
}

// OrderTag identifies which request flow created a payment order. Exactly one
// tag is carried in the order notes.
type OrderTag string

const (
	OrderTagNone         OrderTag = ""
	OrderTagBooking      OrderTag = "isBooking"
	OrderTagConsultation OrderTag = "isConsultationBooking"
	OrderTagTravel       OrderTag = "isTravelBooking"
)
