package requests

import "time"

type CreateConsultation struct {
	PetID             string    `json:"petId" validate:"required,mongodb"`
	StartDateTime     time.Time `json:"startDateTime" validate:"required"`
	EndDateTime       time.Time `json:"endDateTime" validate:"required,gtfield=StartDateTime"`
	AppointmentReason string    `json:"appointmentReason"`
	ConsultationType  string    `json:"consultationType" validate:"omitempty,oneof=Normal Euthanasia"`
	EuthanasiaType    string    `json:"euthanasiaType" validate:"omitempty,oneof=Online Home"`
}

type UpdateConsultation struct {
	ID            string    `json:"_id" validate:"required,mongodb"`
	StartDateTime time.Time `json:"startDateTime" validate:"required"`
	EndDateTime   time.Time `json:"endDateTime" validate:"required,gtfield=StartDateTime"`
}
