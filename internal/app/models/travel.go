package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Travel is a pet travel assistance request with its uploaded vaccination
// record and certificate checklist.
type Travel struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID               primitive.ObjectID `bson:"userId" json:"userId"`
	PetID                primitive.ObjectID `bson:"petId" json:"petId"`
	TravelType           TravelType         `bson:"travelType" json:"travelType"`
	TravelDate           time.Time          `bson:"travelDate" json:"travelDate"`
	MicrochipNumber      string             `bson:"microchipNumber,omitempty" json:"microchipNumber,omitempty"`
	IsFitToTravelCert    bool               `bson:"isFitToTravelCertificate" json:"isFitToTravelCertificate"`
	IsHealthCertificate  bool               `bson:"isHealthCertificate" json:"isHealthCertificate"`
	IsBloodTiterTest     bool               `bson:"isBloodTiterTest" json:"isBloodTiterTest"`
	IsNoObjectionCert    bool               `bson:"isNoObjectionCertificate" json:"isNoObjectionCertificate"`
	RequiredCertificates string             `bson:"requiredCertificates,omitempty" json:"requiredCertificates,omitempty"`
	VaccinationRecordURL string             `bson:"vaccinationRecordUrl" json:"vaccinationRecordUrl"`
	Amount               int64              `bson:"amount" json:"amount"`
	PaymentStatus        PaymentStatus      `bson:"paymentStatus" json:"paymentStatus"`
	ProviderOrderID      string             `bson:"providerOrderId,omitempty" json:"providerOrderId,omitempty"`
	ProviderOrderStatus  string             `bson:"providerOrderStatus,omitempty" json:"providerOrderStatus,omitempty"`
	ProviderData         map[string]any     `bson:"providerData,omitempty" json:"providerData,omitempty"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}
