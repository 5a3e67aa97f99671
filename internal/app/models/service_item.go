package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceItem is a concrete variant under a Service, e.g. a specific
// grooming package size. Items carry their own pricing.
type ServiceItem struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ServiceID        primitive.ObjectID `bson:"serviceId" json:"serviceId"`
	Name             string             `bson:"name" json:"name"`
	Slug             string             `bson:"slug" json:"slug"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	Amount           int64              `bson:"amount" json:"amount"`
	DiscountedAmount int64              `bson:"discountedAmount,omitempty" json:"discountedAmount,omitempty"`
	MetaData         map[string]any     `bson:"metaData,omitempty" json:"metaData,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (s *ServiceItem) EffectiveAmount() int64 {
	if s.DiscountedAmount > 0 {
		return s.DiscountedAmount
	}
	return s.Amount
}
