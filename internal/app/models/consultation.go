package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Consultation is an online video consultation slot reservation.
//
// SlotKey is the minute-truncated start time formatted as RFC3339 in UTC,
// combined with a unique index on (consultationType, slotKey) so concurrent
// writers cannot reserve the same slot twice.
type Consultation struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID              primitive.ObjectID `bson:"userId" json:"userId"`
	PetID               primitive.ObjectID `bson:"petId" json:"petId"`
	StartDateTime       time.Time          `bson:"startDateTime" json:"startDateTime"`
	EndDateTime         time.Time          `bson:"endDateTime" json:"endDateTime"`
	SlotKey             string             `bson:"slotKey" json:"-"`
	AppointmentReason   string             `bson:"appointmentReason,omitempty" json:"appointmentReason,omitempty"`
	ConsultationType    ConsultationType   `bson:"consultationType" json:"consultationType"`
	EuthanasiaType      EuthanasiaType     `bson:"euthanasiaType,omitempty" json:"euthanasiaType,omitempty"`
	Status              ConsultationStatus `bson:"status" json:"status"`
	PaymentStatus       PaymentStatus      `bson:"paymentStatus" json:"paymentStatus"`
	Amount              int64              `bson:"amount" json:"amount"`
	ProviderOrderID     string             `bson:"providerOrderId,omitempty" json:"providerOrderId,omitempty"`
	ProviderOrderStatus string             `bson:"providerOrderStatus,omitempty" json:"providerOrderStatus,omitempty"`
	ProviderData        map[string]any     `bson:"providerData,omitempty" json:"providerData,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}
