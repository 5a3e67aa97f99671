package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a top-level catalog entry, e.g. home grooming or a health
// package. Pricing on the service applies when it has no items.
type Service struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name             string             `bson:"name" json:"name"`
	ServiceType      ServiceType        `bson:"serviceType" json:"serviceType"`
	Slug             string             `bson:"slug" json:"slug"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	MobileImage      string             `bson:"mobileImage,omitempty" json:"mobileImage,omitempty"`
	Amount           int64              `bson:"amount" json:"amount"`
	DiscountedAmount int64              `bson:"discountedAmount,omitempty" json:"discountedAmount,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EffectiveAmount returns the discounted price when one is set.
func (s *Service) EffectiveAmount() int64 {
	if s.DiscountedAmount > 0 {
		return s.DiscountedAmount
	}
	return s.Amount
}
