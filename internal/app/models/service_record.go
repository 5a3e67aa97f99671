package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceRecord is the operational record opened alongside a booking. It is
// what branch staff work against once the appointment starts, and it carries
// the pet/service/item references that make per-pet service history (last
// performed, next due) computable without joining bookings.
type ServiceRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BookingID     primitive.ObjectID `bson:"bookingId" json:"bookingId"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	PetID         primitive.ObjectID `bson:"petId" json:"petId"`
	ServiceID     primitive.ObjectID `bson:"serviceId" json:"serviceId"`
	ServiceItemID primitive.ObjectID `bson:"serviceItemId,omitempty" json:"serviceItemId,omitempty"`
	BranchID      primitive.ObjectID `bson:"branchId,omitempty" json:"branchId,omitempty"`
	Name          string             `bson:"name" json:"name"`
	StartDateTime time.Time          `bson:"startDateTime" json:"startDateTime"`
	EndDateTime   time.Time          `bson:"endDateTime" json:"endDateTime"`
	Status        BookingStatus      `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
