package requests

import "time"

type CreateTravel struct {
	PetID                 string    `json:"petId" validate:"required,mongodb"`
	TravelType            string    `json:"travelType" validate:"required,oneof=Domestic International"`
	TravelDate            time.Time `json:"travelDate" validate:"required"`
	MicrochipNumber       string    `json:"microchipNumber"`
	IsFitToTravelCert     bool      `json:"isFitToTravelCertificate"`
	IsHealthCertificate   bool      `json:"isHealthCertificate"`
	IsBloodTiterTest      bool      `json:"isBloodTiterTest"`
	IsNoObjectionCert     bool      `json:"isNoObjectionCertificate"`
	RequiredCertificates  string    `json:"requiredCertificates"`
	VaccinationRecord     string    `json:"vaccinationRecord" validate:"required,base64"`
	VaccinationRecordName string    `json:"vaccinationRecordName"`

	// Populated by the controller after decoding VaccinationRecord.
	VaccinationRecordData []byte `json:"-"`
}
