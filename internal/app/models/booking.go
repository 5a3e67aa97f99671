package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a paid appointment for a catalog service or service item.
// ServiceID is always set; item bookings additionally carry ServiceItemID,
// with ServiceID pointing at the item's parent service.
type Booking struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID               primitive.ObjectID `bson:"userId" json:"userId"`
	PetID                primitive.ObjectID `bson:"petId" json:"petId"`
	ServiceID            primitive.ObjectID `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	ServiceItemID        primitive.ObjectID `bson:"serviceItemId,omitempty" json:"serviceItemId,omitempty"`
	BranchID             primitive.ObjectID `bson:"branchId,omitempty" json:"branchId,omitempty"`
	ServiceRecordID      primitive.ObjectID `bson:"serviceRecordId,omitempty" json:"serviceRecordId,omitempty"`
	StartDateTime        time.Time          `bson:"startDateTime" json:"startDateTime"`
	EndDateTime          time.Time          `bson:"endDateTime" json:"endDateTime"`
	TimeSlotLabel        string             `bson:"timeSlotLabel,omitempty" json:"timeSlotLabel,omitempty"`
	AppointmentReason    string             `bson:"appointmentReason,omitempty" json:"appointmentReason,omitempty"`
	Amount               int64              `bson:"amount" json:"amount"`
	BookingStatus        BookingStatus      `bson:"bookingStatus" json:"bookingStatus"`
	BookingPaymentStatus PaymentStatus      `bson:"bookingPaymentStatus" json:"bookingPaymentStatus"`
	ProviderOrderID      string             `bson:"providerOrderId,omitempty" json:"providerOrderId,omitempty"`
	ProviderOrderStatus  string             `bson:"providerOrderStatus,omitempty" json:"providerOrderStatus,omitempty"`
	ProviderData         map[string]any     `bson:"providerData,omitempty" json:"providerData,omitempty"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}
