package requests

import "time"

type CreateBooking struct {
	ServiceID         string    `json:"serviceId" validate:"required_without=ServiceItemID,omitempty,mongodb"`
	ServiceItemID     string    `json:"serviceItemId" validate:"omitempty,mongodb"`
	PetID             string    `json:"petId" validate:"required,mongodb"`
	BranchID          string    `json:"branchId" validate:"omitempty,mongodb"`
	StartDateTime     time.Time `json:"startDateTime" validate:"required"`
	EndDateTime       time.Time `json:"endDateTime" validate:"required,gtfield=StartDateTime"`
	AppointmentReason string    `json:"appointmentReason"`
	TimeSlotLabel     string    `json:"timeSlotLabel"`
}
